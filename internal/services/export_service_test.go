package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventori/internal/models"
)

func TestBuildBoxManifest(t *testing.T) {
	box := &models.Box{
		Name:        "Garage Shelf",
		Category:    models.CategoryDevices,
		Description: "cables and chargers",
	}
	items := []models.Item{
		{Title: "USB-C Charger", Description: "65W", Quantity: 2, ImageURL: "http://localhost:8080/images/boxes/1/a.jpg"},
		{Title: "Mouse", Quantity: 1},
	}

	payload := BuildBoxManifest(box, items)

	expected := "==============================\n" +
		"Garage Shelf\n" +
		"\nCategory: 💻 Devices\n" +
		"Description: cables and chargers\n" +
		"==============================\n" +
		"\nItems:" +
		"\n1. USB-C Charger" +
		"\n   Description: 65W" +
		"\n   Quantity: 2" +
		"\n Image: http://localhost:8080/images/boxes/1/a.jpg" +
		"\n2. Mouse" +
		"\n   Quantity: 1"
	assert.Equal(t, expected, payload)
}

func TestBuildBoxManifest_EmptyBox(t *testing.T) {
	box := &models.Box{Name: "Empty One", Category: models.CategoryOthers}

	payload := BuildBoxManifest(box, nil)

	assert.Contains(t, payload, "Empty One")
	assert.Contains(t, payload, "Description: No description")
	assert.Contains(t, payload, "(No items in this box)")
}

func TestBuildBoxManifest_Fallbacks(t *testing.T) {
	payload := BuildBoxManifest(&models.Box{}, []models.Item{{Quantity: 1}})

	assert.Contains(t, payload, "Unnamed")
	assert.Contains(t, payload, "Category: 📦 N/A")
	assert.Contains(t, payload, "1. Untitled Item")
}

func TestExportService_ExportBox(t *testing.T) {
	mockBoxRepo := new(MockBoxRepository)
	mockItemRepo := new(MockItemRepository)
	boxService := NewBoxService(mockBoxRepo, mockItemRepo)
	service := NewExportService(boxService)

	box := &models.Box{
		BaseModel: models.BaseModel{ID: 1},
		UserID:    1,
		Name:      "Garage Shelf",
		Category:  models.CategoryDevices,
		Items:     []models.Item{{Title: "Mouse", Quantity: 1}},
	}
	mockBoxRepo.On("FindByIDWithItems", uint(1)).Return(box, nil)

	payload, err := service.ExportBox(1, 1)

	assert.NoError(t, err)
	assert.Contains(t, payload, "Garage Shelf")
	assert.Contains(t, payload, "1. Mouse")
}

func TestExportService_ExportBox_WrongOwner(t *testing.T) {
	mockBoxRepo := new(MockBoxRepository)
	mockItemRepo := new(MockItemRepository)
	service := NewExportService(NewBoxService(mockBoxRepo, mockItemRepo))

	box := &models.Box{BaseModel: models.BaseModel{ID: 1}, UserID: 2, Name: "Not Yours"}
	mockBoxRepo.On("FindByIDWithItems", uint(1)).Return(box, nil)

	payload, err := service.ExportBox(1, 1)

	assert.Empty(t, payload)
	assert.ErrorIs(t, err, ErrNotBoxOwner)
}
