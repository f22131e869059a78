package controller

import (
	"freedbot-be/internal/dto"
	"freedbot-be/internal/pkg/serverutils"
	"freedbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IManualController interface {
	RegisterRoutes(r fiber.Router)
	IngestChunk(ctx *fiber.Ctx) error
	IngestIssue(ctx *fiber.Ctx) error
}

type manualController struct {
	manualService service.IManualService
	authGuard     fiber.Handler
}

func NewManualController(manualService service.IManualService, authGuard fiber.Handler) IManualController {
	return &manualController{
		manualService: manualService,
		authGuard:     authGuard,
	}
}

func (c *manualController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/manual/v1")
	h.Use(c.authGuard)
	h.Post("chunks", c.IngestChunk)
	h.Post("issues", c.IngestIssue)
}

func (c *manualController) IngestChunk(ctx *fiber.Ctx) error {
	var req dto.IngestManualChunkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.manualService.IngestManualChunk(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Success ingest manual chunk", res))
}

func (c *manualController) IngestIssue(ctx *fiber.Ctx) error {
	var req dto.IngestCommonIssueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.manualService.IngestCommonIssue(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Success ingest common issue", res))
}
