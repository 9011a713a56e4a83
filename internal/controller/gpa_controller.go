package controller

import (
	"errors"

	"thinkora-be/internal/dto"
	"thinkora-be/internal/service"
	"thinkora-be/pkg/gpa"

	"github.com/gofiber/fiber/v2"
)

type IGpaController interface {
	RegisterRoutes(r fiber.Router)
	Calculate(ctx *fiber.Ctx) error
}

type gpaController struct {
	service service.IGpaService
}

func NewGpaController(service service.IGpaService) IGpaController {
	return &gpaController{service: service}
}

func (c *gpaController) RegisterRoutes(r fiber.Router) {
	// Public endpoint, no auth
	r.Post("/calculate-gpa", c.Calculate)
}

func (c *gpaController) Calculate(ctx *fiber.Ctx) error {
	var req dto.CalculateGpaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	res, err := c.service.Calculate(&req)
	if err != nil {
		var verr *gpa.ValidationError
		if errors.As(err, &verr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   verr.Message,
			})
		}
		return err
	}

	return ctx.JSON(res)
}
