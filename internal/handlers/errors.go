package handlers

import (
	"errors"

	"github.com/braianorozco10/portfolio-server/utils"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-level fallback for errors no handler mapped
// itself. Everything leaves as the {"error": ...} envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return utils.ErrorResponse(c, code, err.Error())
}
