package controller

import (
	"freedbot-be/internal/dto"
	"freedbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListStages(ctx *fiber.Ctx) error
	ListParts(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("stages", c.ListStages)
	h.Get("parts", c.ListParts)
}

func (c *catalogController) ListStages(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListStages(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *catalogController) ListParts(ctx *fiber.Ctx) error {
	var req dto.ListPartsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.catalogService.ListParts(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
