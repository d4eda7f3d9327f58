package repository

import (
	"context"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUserID(ctx context.Context, userID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]entity.User, error)
	// Search matches userId or name case-insensitively
	Search(ctx context.Context, query string, limit int) ([]entity.User, error)
	// DeleteWithReceipts removes the user and every receipt it owns in one
	// transaction. It returns false if no such user exists.
	DeleteWithReceipts(ctx context.Context, userID string) (bool, int64, error)
}
