package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves an idempotency key by its key string and operator
	GetByKey(ctx context.Context, key string, operatorID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// DeleteExpired removes expired keys
	DeleteExpired(ctx context.Context) (int64, error)
}
