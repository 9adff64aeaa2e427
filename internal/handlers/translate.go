package handlers

import (
	"errors"

	"github.com/braianorozco10/portfolio-server/internal/models"
	"github.com/braianorozco10/portfolio-server/internal/services"
	"github.com/braianorozco10/portfolio-server/utils"
	"github.com/gofiber/fiber/v2"
)

type TranslateHandler struct {
	gateway *services.Gateway
}

func NewTranslateHandler(gw *services.Gateway) *TranslateHandler {
	return &TranslateHandler{gateway: gw}
}

// Translate proxies one request through the gateway. Validation failures
// are 400s; anything the upstream provider breaks is a 500 with the
// provider's status and body preview in the message.
func (h *TranslateHandler) Translate(c *fiber.Ctx) error {
	var req models.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	resp, err := h.gateway.Translate(c.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing text/targets")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(resp)
}
