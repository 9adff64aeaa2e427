package handlers

import (
	"errors"

	"github.com/braianorozco10/portfolio-server/internal/models"
	"github.com/braianorozco10/portfolio-server/internal/timesheet"
	"github.com/braianorozco10/portfolio-server/utils"
	"github.com/gofiber/fiber/v2"
)

// TimesheetHandler exposes the time converter: parsing happens server
// side, toggles are plain row-state transitions the page applies itself,
// and export renders the report the browser downloads.
type TimesheetHandler struct{}

func NewTimesheetHandler() *TimesheetHandler {
	return &TimesheetHandler{}
}

func (h *TimesheetHandler) Convert(c *fiber.Ctx) error {
	var req models.ConvertRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	rows, skipped := timesheet.Parse(req.Input)
	return c.JSON(models.ConvertResponse{Rows: rows, Skipped: skipped})
}

func (h *TimesheetHandler) Export(c *fiber.Ctx) error {
	var req models.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(req.Rows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to export")
	}

	report, err := timesheet.ExportCSV(req.Rows)
	if err != nil {
		if errors.Is(err, timesheet.ErrNoRows) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to export")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Export failed")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+timesheet.ExportFilename+`"`)
	return c.Send(report)
}
