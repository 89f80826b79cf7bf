// FILE: internal/pkg/serverutils/response.go
package serverutils

// Envelope is the uniform JSON response body for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) Envelope {
	return Envelope{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) Envelope {
	return Envelope{
		Success: false,
		Code:    code,
		Message: message,
	}
}
