package repository

import (
	"context"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
)

// InventoryRepository stores the inventory register singleton
type InventoryRepository interface {
	// Get returns nil, nil when no register has been saved
	Get(ctx context.Context) (*entity.InventoryRegister, error)
	// Upsert overwrites the register wholesale
	Upsert(ctx context.Context, register *entity.InventoryRegister) error
}
