package service

import "errors"

// Caller contract violations surfaced by the session services. The DTO
// validation layer rejects most of these earlier; the sentinels cover
// callers that bypass it.
var (
	ErrUnknownSignal    = errors.New("unknown behavior signal")
	ErrUnknownUserType  = errors.New("unknown user type")
	ErrProductNotFound  = errors.New("product not found in catalog")
	ErrCartIndexInvalid = errors.New("cart index out of range")
)
