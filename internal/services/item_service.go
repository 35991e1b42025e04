package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"inventori/internal/models"
	"inventori/internal/repository"
)

var ErrItemTitleTaken = errors.New("an item with this title already exists in the box")

type ItemService interface {
	CreateItem(ownerID, boxID uint, title, description, quantity, imageURL string) (*models.Item, error)
	GetItemByID(ownerID, boxID, id uint) (*models.Item, error)
	GetItems(ownerID, boxID uint) ([]models.Item, error)
	UpdateItem(ownerID, boxID, id uint, title, description, quantity string) (*models.Item, error)
	UpdateItemImage(ownerID, boxID, id uint, imageURL string) (*models.Item, error)
	DeleteItem(ownerID, boxID, id uint) error
}

type itemServiceImpl struct {
	itemRepo   repository.ItemRepository
	boxRepo    repository.BoxRepository
	boxService BoxService
}

func NewItemService(itemRepo repository.ItemRepository, boxRepo repository.BoxRepository, boxService BoxService) ItemService {
	return &itemServiceImpl{itemRepo: itemRepo, boxRepo: boxRepo, boxService: boxService}
}

// ParseQuantity coerces free-text quantity input to a non-negative integer.
// Empty input defaults to 1, the form's initial value.
func ParseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("quantity must be a whole number")
	}
	if n < 0 {
		return 0, errors.New("quantity cannot be negative")
	}
	return n, nil
}

func (s *itemServiceImpl) CreateItem(ownerID, boxID uint, title, description, quantity, imageURL string) (*models.Item, error) {
	box, err := s.boxService.GetBoxByID(ownerID, boxID)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("item title is required")
	}
	qty, err := ParseQuantity(quantity)
	if err != nil {
		return nil, err
	}
	existing, err := s.itemRepo.FindByTitleAndBox(title, box.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrItemTitleTaken
	}
	item := &models.Item{
		BoxID:       box.ID,
		Title:       title,
		Description: description,
		Quantity:    qty,
		ImageURL:    imageURL,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	if err := s.boxService.Touch(box); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) GetItemByID(ownerID, boxID, id uint) (*models.Item, error) {
	if _, err := s.boxService.GetBoxByID(ownerID, boxID); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item.BoxID != boxID {
		return nil, errors.New("item does not belong to this box")
	}
	return item, nil
}

func (s *itemServiceImpl) GetItems(ownerID, boxID uint) ([]models.Item, error) {
	if _, err := s.boxService.GetBoxByID(ownerID, boxID); err != nil {
		return nil, err
	}
	return s.itemRepo.FindByBox(boxID)
}

func (s *itemServiceImpl) UpdateItem(ownerID, boxID, id uint, title, description, quantity string) (*models.Item, error) {
	item, err := s.GetItemByID(ownerID, boxID, id)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title != "" && title != item.Title {
		existing, err := s.itemRepo.FindByTitleAndBox(title, boxID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != item.ID {
			return nil, ErrItemTitleTaken
		}
		item.Title = title
	}
	if quantity != "" {
		qty, err := ParseQuantity(quantity)
		if err != nil {
			return nil, err
		}
		item.Quantity = qty
	}
	item.Description = description
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	if err := s.touchBox(boxID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) UpdateItemImage(ownerID, boxID, id uint, imageURL string) (*models.Item, error) {
	item, err := s.GetItemByID(ownerID, boxID, id)
	if err != nil {
		return nil, err
	}
	item.ImageURL = imageURL
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	if err := s.touchBox(boxID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) DeleteItem(ownerID, boxID, id uint) error {
	if _, err := s.GetItemByID(ownerID, boxID, id); err != nil {
		return err
	}
	if err := s.itemRepo.Delete(id); err != nil {
		return err
	}
	return s.touchBox(boxID)
}

func (s *itemServiceImpl) touchBox(boxID uint) error {
	box, err := s.boxRepo.FindByID(boxID)
	if err != nil {
		return err
	}
	now := time.Now()
	box.LastModifiedAt = &now
	return s.boxRepo.Update(box)
}
