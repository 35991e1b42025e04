package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"inventori/internal/services"
)

type ItemHandler struct {
	service      services.ItemService
	imageService services.ImageService
}

func NewItemHandler(service services.ItemService, imageService services.ImageService) *ItemHandler {
	return &ItemHandler{service: service, imageService: imageService}
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	boxID, err := boxIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Quantity    string `json:"quantity"`
		ImageURL    string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	item, err := h.service.CreateItem(OwnerID(c), boxID, req.Title, req.Description, req.Quantity, req.ImageURL)
	if err != nil {
		if errors.Is(err, services.ErrItemTitleTaken) {
			return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": err.Error()})
		}
		if errors.Is(err, services.ErrNotBoxOwner) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "box not found"})
		}
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(item)
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	boxID, err := boxIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	item, err := h.service.GetItemByID(OwnerID(c), boxID, uint(id))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "item not found"})
	}

	return c.JSON(item)
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	boxID, err := boxIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	items, err := h.service.GetItems(OwnerID(c), boxID)
	if err != nil {
		if errors.Is(err, services.ErrNotBoxOwner) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "box not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list items"})
	}
	return c.JSON(items)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	boxID, err := boxIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Quantity    string `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	item, err := h.service.UpdateItem(OwnerID(c), boxID, uint(id), req.Title, req.Description, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrItemTitleTaken) {
			return c.Status(http.StatusConflict).JSON(map[string]interface{}{"error": err.Error()})
		}
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.JSON(item)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	boxID, err := boxIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	if err := h.service.DeleteItem(OwnerID(c), boxID, uint(id)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.SendStatus(http.StatusNoContent)
}

func (h *ItemHandler) UploadItemImage(c *fiber.Ctx) error {
	boxID, err := boxIDParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	item, err := h.service.GetItemByID(OwnerID(c), boxID, uint(id))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "item not found"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid file"})
	}

	url, err := h.imageService.SaveBoxImage(c.Context(), boxID, fileHeader)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}

	updated, err := h.service.UpdateItemImage(OwnerID(c), boxID, item.ID, url)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not save item image"})
	}
	return c.JSON(updated)
}

func boxIDParam(c *fiber.Ctx) (uint, error) {
	boxID, err := strconv.ParseUint(c.Params("boxId"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(boxID), nil
}
