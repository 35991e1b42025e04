package services

import (
	"errors"
	"strings"
	"time"

	"inventori/internal/models"
	"inventori/internal/repository"
)

var ErrBoxNameTaken = errors.New("a box with this name already exists")
var ErrNotBoxOwner = errors.New("box does not belong to this user")

type BoxService interface {
	CreateBox(ownerID uint, name, category, description, imageURL string) (*models.Box, error)
	GetBoxByID(ownerID, id uint) (*models.Box, error)
	GetBoxWithItems(ownerID, id uint) (*models.Box, error)
	UpdateBox(ownerID, id uint, name, category, description string) (*models.Box, error)
	DeleteBox(ownerID, id uint) error
	GetBoxes(ownerID uint) ([]models.Box, error)
	GetBoxesByCategory(ownerID uint, category string) ([]models.Box, error)
	SearchBoxes(ownerID uint, name string) ([]models.Box, error)
	Touch(box *models.Box) error
}

type boxServiceImpl struct {
	boxRepo  repository.BoxRepository
	itemRepo repository.ItemRepository
}

func NewBoxService(boxRepo repository.BoxRepository, itemRepo repository.ItemRepository) BoxService {
	return &boxServiceImpl{boxRepo: boxRepo, itemRepo: itemRepo}
}

func (s *boxServiceImpl) CreateBox(ownerID uint, name, category, description, imageURL string) (*models.Box, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("box name is required")
	}
	// The probe is table-wide, matching the unique constraint on name.
	existing, err := s.boxRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBoxNameTaken
	}
	box := &models.Box{
		UserID:      ownerID,
		Name:        name,
		Category:    models.NormalizeCategory(category),
		Description: description,
		ImageURL:    imageURL,
	}
	if err := s.boxRepo.Create(box); err != nil {
		return nil, err
	}
	return box, nil
}

func (s *boxServiceImpl) GetBoxByID(ownerID, id uint) (*models.Box, error) {
	box, err := s.boxRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if box.UserID != ownerID {
		return nil, ErrNotBoxOwner
	}
	return box, nil
}

func (s *boxServiceImpl) GetBoxWithItems(ownerID, id uint) (*models.Box, error) {
	box, err := s.boxRepo.FindByIDWithItems(id)
	if err != nil {
		return nil, err
	}
	if box.UserID != ownerID {
		return nil, ErrNotBoxOwner
	}
	return box, nil
}

func (s *boxServiceImpl) UpdateBox(ownerID, id uint, name, category, description string) (*models.Box, error) {
	box, err := s.GetBoxByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name != "" && name != box.Name {
		existing, err := s.boxRepo.FindByName(name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != box.ID {
			return nil, ErrBoxNameTaken
		}
		box.Name = name
	}
	if category != "" {
		box.Category = models.NormalizeCategory(category)
	}
	box.Description = description
	now := time.Now()
	box.LastModifiedAt = &now
	if err := s.boxRepo.Update(box); err != nil {
		return nil, err
	}
	return box, nil
}

// DeleteBox soft-deletes the box and its nested items in one go. Item
// cleanup is deliberate here, not left to chance.
func (s *boxServiceImpl) DeleteBox(ownerID, id uint) error {
	box, err := s.GetBoxByID(ownerID, id)
	if err != nil {
		return err
	}
	if err := s.itemRepo.DeleteByBox(box.ID); err != nil {
		return err
	}
	return s.boxRepo.Delete(box.ID)
}

func (s *boxServiceImpl) GetBoxes(ownerID uint) ([]models.Box, error) {
	return s.boxRepo.FindByOwner(ownerID)
}

func (s *boxServiceImpl) GetBoxesByCategory(ownerID uint, category string) ([]models.Box, error) {
	return s.boxRepo.FindByOwnerAndCategory(ownerID, models.NormalizeCategory(category))
}

func (s *boxServiceImpl) SearchBoxes(ownerID uint, name string) ([]models.Box, error) {
	return s.boxRepo.SearchByOwner(ownerID, name)
}

// Touch stamps the box as just-modified. Item mutations call this so the
// dashboard's recency ranking tracks item activity, not just box edits.
func (s *boxServiceImpl) Touch(box *models.Box) error {
	now := time.Now()
	box.LastModifiedAt = &now
	return s.boxRepo.Update(box)
}
