package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"inventori/internal/models"
)

type BoxRepository interface {
	GenericRepository[models.Box]
	FindByOwner(ownerID uint) ([]models.Box, error)
	FindRecentByOwner(ownerID uint, limit int) ([]models.Box, error)
	FindByOwnerAndCategory(ownerID uint, category models.Category) ([]models.Box, error)
	SearchByOwner(ownerID uint, name string) ([]models.Box, error)
	FindByName(name string) (*models.Box, error)
	FindByIDWithItems(id uint) (*models.Box, error)
	FindDeletedBefore(cutoff time.Time) ([]models.Box, error)
	HardDelete(box *models.Box) error
}

type BoxRepositoryImpl struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

func (r *BoxRepositoryImpl) FindByOwner(ownerID uint) ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Where("user_id = ?", ownerID).Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

// FindRecentByOwner orders by last-modified with creation time as fallback,
// newest first, and caps the result. The ordering is done by the database,
// not recomputed in memory.
func (r *BoxRepositoryImpl) FindRecentByOwner(ownerID uint, limit int) ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Where("user_id = ?", ownerID).
		Order("COALESCE(last_modified_at, created_at) DESC").
		Limit(limit).
		Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *BoxRepositoryImpl) FindByOwnerAndCategory(ownerID uint, category models.Category) ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Where("user_id = ? AND category = ?", ownerID, category).Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *BoxRepositoryImpl) SearchByOwner(ownerID uint, name string) ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Where("user_id = ? AND name LIKE ?", ownerID, "%"+name+"%").Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

// FindByName probes the whole table, not one owner's boxes. The name
// constraint is table-wide (see models.Box).
func (r *BoxRepositoryImpl) FindByName(name string) (*models.Box, error) {
	var box models.Box
	err := r.db.Where("name = ?", name).First(&box).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

func (r *BoxRepositoryImpl) FindByIDWithItems(id uint) (*models.Box, error) {
	var box models.Box
	err := r.db.Preload("Items").First(&box, id).Error
	if err != nil {
		return nil, err
	}
	return &box, nil
}

func (r *BoxRepositoryImpl) FindDeletedBefore(cutoff time.Time) ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *BoxRepositoryImpl) HardDelete(box *models.Box) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("box_id = ?", box.ID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(box).Error
	})
}
