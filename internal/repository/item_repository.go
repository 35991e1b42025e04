package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"inventori/internal/models"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	FindByBox(boxID uint) ([]models.Item, error)
	FindByTitleAndBox(title string, boxID uint) (*models.Item, error)
	DeleteByBox(boxID uint) error
	FindDeletedBefore(cutoff time.Time) ([]models.Item, error)
	HardDelete(item *models.Item) error
}

type ItemRepositoryImpl struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl) FindByBox(boxID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("box_id = ?", boxID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl) FindByTitleAndBox(title string, boxID uint) (*models.Item, error) {
	var item models.Item
	err := r.db.Where("title = ? AND box_id = ?", title, boxID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// DeleteByBox soft-deletes every item in a box. Used by the box delete
// cascade; the janitor purges the rows later.
func (r *ItemRepositoryImpl) DeleteByBox(boxID uint) error {
	return r.db.Where("box_id = ?", boxID).Delete(&models.Item{}).Error
}

func (r *ItemRepositoryImpl) FindDeletedBefore(cutoff time.Time) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl) HardDelete(item *models.Item) error {
	return r.db.Unscoped().Delete(item).Error
}
