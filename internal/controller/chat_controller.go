package controller

import (
	"thinkora-be/internal/dto"
	"thinkora-be/internal/pkg/serverutils"
	"thinkora-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	// Auth is optional here: anonymous visitors chat under a shared demo
	// identity.
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Post("/", c.Send)
	h.Get("/history", c.History)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if req.Message == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "message is required",
		})
	}

	rawUserID, _ := ctx.Locals("user_id").(string)
	user, err := c.service.ResolveIdentity(ctx.Context(), rawUserID)
	if err != nil {
		return err
	}

	res, err := c.service.Send(ctx.Context(), user, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	rawUserID, _ := ctx.Locals("user_id").(string)
	user, err := c.service.ResolveIdentity(ctx.Context(), rawUserID)
	if err != nil {
		return err
	}

	res, err := c.service.History(ctx.Context(), user, ctx.Query("conversation_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
