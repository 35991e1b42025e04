package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inventori/internal/models"
)

func TestParseQuantity(t *testing.T) {
	qty, err := ParseQuantity("3")
	assert.NoError(t, err)
	assert.Equal(t, 3, qty)

	qty, err = ParseQuantity("  7 ")
	assert.NoError(t, err)
	assert.Equal(t, 7, qty)

	qty, err = ParseQuantity("")
	assert.NoError(t, err)
	assert.Equal(t, 1, qty)

	_, err = ParseQuantity("-2")
	assert.Error(t, err)

	_, err = ParseQuantity("many")
	assert.Error(t, err)

	_, err = ParseQuantity("2.5")
	assert.Error(t, err)
}

func itemServiceWithBox(box *models.Box) (ItemService, *MockBoxRepository, *MockItemRepository) {
	mockBoxRepo := new(MockBoxRepository)
	mockItemRepo := new(MockItemRepository)
	boxService := NewBoxService(mockBoxRepo, mockItemRepo)
	service := NewItemService(mockItemRepo, mockBoxRepo, boxService)
	mockBoxRepo.On("FindByID", box.ID).Return(box, nil)
	return service, mockBoxRepo, mockItemRepo
}

func TestItemService_CreateItem_TouchesBox(t *testing.T) {
	box := &models.Box{BaseModel: models.BaseModel{ID: 1}, UserID: 1, Name: "Desk Drawer"}
	service, mockBoxRepo, mockItemRepo := itemServiceWithBox(box)

	mockItemRepo.On("FindByTitleAndBox", "Charger", uint(1)).Return(nil, nil)
	mockItemRepo.On("Create", mock.AnythingOfType("*models.Item")).Return(nil)
	mockBoxRepo.On("Update", box).Return(nil)

	item, err := service.CreateItem(1, 1, "Charger", "usb-c", "2", "")

	assert.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.NotNil(t, box.LastModifiedAt)
	mockItemRepo.AssertExpectations(t)
	mockBoxRepo.AssertExpectations(t)
}

func TestItemService_CreateItem_DuplicateTitle(t *testing.T) {
	box := &models.Box{BaseModel: models.BaseModel{ID: 1}, UserID: 1, Name: "Desk Drawer"}
	service, _, mockItemRepo := itemServiceWithBox(box)

	existing := &models.Item{BaseModel: models.BaseModel{ID: 8}, BoxID: 1, Title: "Charger"}
	mockItemRepo.On("FindByTitleAndBox", "Charger", uint(1)).Return(existing, nil)

	item, err := service.CreateItem(1, 1, "Charger", "", "1", "")

	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrItemTitleTaken)
}

func TestItemService_CreateItem_BadQuantity(t *testing.T) {
	box := &models.Box{BaseModel: models.BaseModel{ID: 1}, UserID: 1, Name: "Desk Drawer"}
	service, _, _ := itemServiceWithBox(box)

	item, err := service.CreateItem(1, 1, "Charger", "", "minus one", "")

	assert.Nil(t, item)
	assert.Error(t, err)
}

func TestItemService_CreateItem_WrongOwner(t *testing.T) {
	box := &models.Box{BaseModel: models.BaseModel{ID: 1}, UserID: 2, Name: "Not Yours"}
	service, _, _ := itemServiceWithBox(box)

	item, err := service.CreateItem(1, 1, "Charger", "", "1", "")

	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrNotBoxOwner)
}

func TestItemService_DeleteItem_TouchesBox(t *testing.T) {
	box := &models.Box{BaseModel: models.BaseModel{ID: 1}, UserID: 1, Name: "Desk Drawer"}
	service, mockBoxRepo, mockItemRepo := itemServiceWithBox(box)

	item := &models.Item{BaseModel: models.BaseModel{ID: 5}, BoxID: 1, Title: "Charger"}
	mockItemRepo.On("FindByID", uint(5)).Return(item, nil)
	mockItemRepo.On("Delete", uint(5)).Return(nil)
	mockBoxRepo.On("Update", box).Return(nil)

	err := service.DeleteItem(1, 1, 5)

	assert.NoError(t, err)
	assert.NotNil(t, box.LastModifiedAt)
	mockItemRepo.AssertExpectations(t)
	mockBoxRepo.AssertExpectations(t)
}

func TestItemService_GetItemByID_WrongBox(t *testing.T) {
	box := &models.Box{BaseModel: models.BaseModel{ID: 1}, UserID: 1, Name: "Desk Drawer"}
	service, _, mockItemRepo := itemServiceWithBox(box)

	item := &models.Item{BaseModel: models.BaseModel{ID: 5}, BoxID: 2, Title: "Stray"}
	mockItemRepo.On("FindByID", uint(5)).Return(item, nil)

	found, err := service.GetItemByID(1, 1, 5)

	assert.Nil(t, found)
	assert.Error(t, err)
}
