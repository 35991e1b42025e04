package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"inventori/internal/mapper"
	"inventori/internal/models"
	"inventori/internal/services"
)

type BoxHandler struct {
	service      services.BoxService
	imageService services.ImageService
}

func NewBoxHandler(service services.BoxService, imageService services.ImageService) *BoxHandler {
	return &BoxHandler{service: service, imageService: imageService}
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}

	box, err := h.service.CreateBox(OwnerID(c), req.Name, req.Category, req.Description, req.ImageURL)
	if err != nil {
		if errors.Is(err, services.ErrBoxNameTaken) {
			return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(box)
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	box, err := h.service.GetBoxWithItems(OwnerID(c), uint(id))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "box not found"})
	}

	return c.JSON(box)
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	var req struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	box, err := h.service.UpdateBox(OwnerID(c), uint(id), req.Name, req.Category, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrBoxNameTaken) {
			return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": err.Error()})
		}
		if errors.Is(err, services.ErrNotBoxOwner) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "box not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not update box"})
	}

	return c.JSON(box)
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	if err := h.service.DeleteBox(OwnerID(c), uint(id)); err != nil {
		if errors.Is(err, services.ErrNotBoxOwner) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "box not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not delete box"})
	}

	return c.SendStatus(http.StatusNoContent)
}

// ListBoxes supports the browse screen's search and category filter through
// query parameters; view=true returns display-ready records instead of the
// raw models.
func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	ownerID := OwnerID(c)
	var (
		boxes []models.Box
		err   error
	)
	switch {
	case c.Query("search") != "":
		boxes, err = h.service.SearchBoxes(ownerID, c.Query("search"))
	case c.Query("category") != "":
		boxes, err = h.service.GetBoxesByCategory(ownerID, c.Query("category"))
	default:
		boxes, err = h.service.GetBoxes(ownerID)
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list boxes"})
	}
	if c.Query("view") == "true" {
		return c.JSON(mapper.ToBoxViewDTOs(boxes))
	}
	return c.JSON(boxes)
}

func (h *BoxHandler) UploadBoxImage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	box, err := h.service.GetBoxByID(OwnerID(c), uint(id))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "box not found"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid file"})
	}

	url, err := h.imageService.SaveBoxImage(c.Context(), box.ID, fileHeader)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}

	box.ImageURL = url
	if err := h.service.Touch(box); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not save box image"})
	}
	return c.JSON(box)
}
