package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"inventori/internal/services"
)

// ImageHandler serves stored images back to the client. Only relevant with
// the local storage backend; S3 objects are fetched straight from the bucket
// URL recorded on the entity.
type ImageHandler struct {
	service services.ImageService
}

func NewImageHandler(service services.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

func (h *ImageHandler) GetImage(c *fiber.Ctx) error {
	key := strings.TrimLeft(c.Params("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid image path"})
	}

	reader, err := h.service.Open(c.Context(), key)
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "image not found"})
	}

	return c.SendStream(reader)
}
