package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"inventori/internal/services"
)

type UserHandler struct {
	service      services.UserService
	imageService services.ImageService
}

func NewUserHandler(service services.UserService, imageService services.ImageService) *UserHandler {
	return &UserHandler{service: service, imageService: imageService}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(OwnerID(c))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "user not found"})
	}
	return c.JSON(user)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		FullName string `json:"full_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	user, err := h.service.UpdateProfile(OwnerID(c), req.FullName)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not update profile"})
	}
	return c.JSON(user)
}

func (h *UserHandler) UploadProfilePicture(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid file"})
	}

	ownerID := OwnerID(c)
	url, err := h.imageService.SaveProfileImage(c.Context(), ownerID, fileHeader)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}

	user, err := h.service.SetProfilePicture(ownerID, url)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not update profile picture"})
	}
	return c.JSON(user)
}
