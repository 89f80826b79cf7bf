// FILE: internal/controller/session_controller.go
// Controller for session state, behavior signals, recommendations, cart
// and the shopping assistant.
package controller

import (
	"errors"
	"strconv"

	"freshcart-be/internal/dto"
	"freshcart-be/internal/entity"
	"freshcart-be/internal/pkg/serverutils"
	"freshcart-be/internal/service"
	"freshcart-be/pkg/preference"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(api fiber.Router)
}

type sessionController struct {
	sessionService service.ISessionService
	chatService    service.IChatService
}

func NewSessionController(sessionService service.ISessionService, chatService service.IChatService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
		chatService:    chatService,
	}
}

func (c *sessionController) RegisterRoutes(api fiber.Router) {
	sessions := api.Group("/sessions")

	sessions.Post("/", c.CreateSession)
	sessions.Get("/:id", c.GetSession)
	sessions.Put("/:id/user-type", c.SetUserType)
	sessions.Post("/:id/signals", c.RecordSignal)
	sessions.Post("/:id/behavior/reset", c.ResetBehavior)
	sessions.Get("/:id/recommendations", c.GetRecommendations)
	sessions.Get("/:id/cart", c.GetCart)
	sessions.Post("/:id/cart", c.AddToCart)
	sessions.Delete("/:id/cart/:index", c.RemoveFromCart)
	sessions.Get("/:id/chat", c.GetChatHistory)
	sessions.Post("/:id/chat", c.SendChat)
}

// CreateSession mints a new session id with the default state.
func (c *sessionController) CreateSession(ctx *fiber.Ctx) error {
	id, state, err := c.sessionService.Create(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session created", toSessionResponse(id, state)))
}

// GetSession returns the full session view. An unknown or expired id
// yields a fresh default session rather than an error.
func (c *sessionController) GetSession(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	state, err := c.sessionService.Get(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Session retrieved", toSessionResponse(id, state)))
}

// SetUserType switches the explicit preference override.
func (c *sessionController) SetUserType(ctx *fiber.Ctx) error {
	var req dto.SetUserTypeRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	id := ctx.Params("id")
	state, err := c.sessionService.SetUserType(ctx.Context(), id, req.UserType)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("User type updated", toSessionResponse(id, state)))
}

// RecordSignal records one implicit browsing signal and returns the
// refreshed detection so the panel can update in a single round trip.
func (c *sessionController) RecordSignal(ctx *fiber.Ctx) error {
	var req dto.RecordSignalRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	id := ctx.Params("id")
	state, err := c.sessionService.RecordSignal(ctx.Context(), id, req.Signal)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Signal recorded", toDetectionResponse(state)))
}

// ResetBehavior zeroes the behavior counters; user type, cart and chat
// survive.
func (c *sessionController) ResetBehavior(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	state, err := c.sessionService.ResetBehavior(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Behavior reset", toDetectionResponse(state)))
}

// GetRecommendations returns the ranked product list, at most four items.
func (c *sessionController) GetRecommendations(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	products, err := c.sessionService.Recommendations(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Recommendations retrieved", dto.RecommendationsResponse{Products: products}))
}

func (c *sessionController) GetCart(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	state, err := c.sessionService.Get(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Cart retrieved", dto.CartResponse{
		Items: state.Cart,
		Total: state.CartTotal(),
	}))
}

func (c *sessionController) AddToCart(ctx *fiber.Ctx) error {
	var req dto.AddToCartRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	id := ctx.Params("id")
	state, err := c.sessionService.AddToCart(ctx.Context(), id, req.ProductName)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Added to cart", dto.CartResponse{
		Items: state.Cart,
		Total: state.CartTotal(),
	}))
}

func (c *sessionController) RemoveFromCart(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid cart index"))
	}

	state, err := c.sessionService.RemoveFromCart(ctx.Context(), id, index)
	if err != nil {
		return c.mapServiceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Removed from cart", dto.CartResponse{
		Items: state.Cart,
		Total: state.CartTotal(),
	}))
}

func (c *sessionController) GetChatHistory(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	history, err := c.chatService.History(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat history retrieved", history))
}

func (c *sessionController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	id := ctx.Params("id")
	resp, err := c.chatService.Send(ctx.Context(), id, req.Message)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Message sent", resp))
}

func (c *sessionController) mapServiceError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownSignal),
		errors.Is(err, service.ErrUnknownUserType),
		errors.Is(err, service.ErrCartIndexInvalid):
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	case errors.Is(err, service.ErrProductNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
}

func toSessionResponse(id string, state *entity.SessionState) dto.SessionResponse {
	return dto.SessionResponse{
		SessionID:    id,
		UserType:     state.UserType,
		BehaviorData: state.BehaviorData,
		Cart:         state.Cart,
		CartTotal:    state.CartTotal(),
		ChatHistory:  state.ChatHistory,
	}
}

func toDetectionResponse(state *entity.SessionState) dto.DetectionResponse {
	// Message only appears when there is no data yet; recompute is pure.
	det := preference.Detect(state.BehaviorData.Behavior)
	return dto.DetectionResponse{
		BehaviorData: state.BehaviorData,
		Message:      det.Message,
	}
}
