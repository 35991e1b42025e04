package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"inventori/internal/services"
)

type ExportHandler struct {
	service services.ExportService
}

func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

func (h *ExportHandler) ExportBox(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	payload, err := h.service.ExportBox(OwnerID(c), uint(id))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "box not found"})
	}

	return c.JSON(map[string]interface{}{"payload": payload})
}
