package handlers

import (
	"github.com/BrickByte/lms_service/internal/apperr"
	"github.com/BrickByte/lms_service/internal/dto"
	"github.com/BrickByte/lms_service/internal/helper/utils"
	"github.com/BrickByte/lms_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LeadHandler struct {
	svc services.LeadService
}

func NewLeadHandler(svc services.LeadService) *LeadHandler {
	return &LeadHandler{svc: svc}
}

func (h *LeadHandler) SetupRoutes(app *fiber.App) {
	lead := app.Group("/api/v1/lead")

	lead.Post("/", h.Generate)
}

func (h *LeadHandler) Generate(ctx *fiber.Ctx) error {
	var requestBody dto.LeadRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return apperr.Validation("Please fill in all fields")
	}

	lead, err := h.svc.Capture(requestBody)
	if err != nil {
		return err
	}

	return utils.ResponseSuccessData(ctx, fiber.StatusCreated, "Successfully Submitted", fiber.Map{
		"lead": lead,
	})
}
