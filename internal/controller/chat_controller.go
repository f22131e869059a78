package controller

import (
	"freedbot-be/internal/dto"
	"freedbot-be/internal/pkg/serverutils"
	"freedbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Process(ctx *fiber.Ctx) error
	ProcessImage(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	authGuard   fiber.Handler
	rateLimiter fiber.Handler
}

func NewChatController(chatService service.IChatService, authGuard fiber.Handler, rateLimiter fiber.Handler) IChatController {
	return &chatController{
		chatService: chatService,
		authGuard:   authGuard,
		rateLimiter: rateLimiter,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(c.authGuard)
	h.Use(c.rateLimiter)
	h.Post("process", c.Process)
	h.Post("process-image", c.ProcessImage)
}

func (c *chatController) Process(ctx *fiber.Ctx) error {
	var req dto.ProcessMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Process(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) ProcessImage(ctx *fiber.Ctx) error {
	var req dto.ProcessImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.ProcessImage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
