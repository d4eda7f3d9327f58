package repository

import (
	"context"
	"errors"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	domainRepo "github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Get(ctx context.Context) (*entity.InventoryRegister, error) {
	var register entity.InventoryRegister
	err := r.db.WithContext(ctx).First(&register, "id = ?", entity.InventoryRegisterKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &register, nil
}

// Upsert writes the register under its well-known key. Concurrent first
// writes collapse onto the same row instead of creating a second register.
func (r *inventoryRepository) Upsert(ctx context.Context, register *entity.InventoryRegister) error {
	register.ID = entity.InventoryRegisterKey
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total", "sizes", "updated_at"}),
	}).Create(register).Error
}
