package repository

import (
	"context"
	"time"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
)

// ReturnReceiptRepository defines the interface for return receipt data operations
type ReturnReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.ReturnReceipt) error
	GetByReceiptNumber(ctx context.Context, receiptNumber string) (*entity.ReturnReceipt, error)
	// Update saves the receipt's scalar fields and, when replaceSizes is
	// set, replaces its size lines
	Update(ctx context.Context, receipt *entity.ReturnReceipt, replaceSizes bool) error
	// Delete returns false if nothing matched
	Delete(ctx context.Context, receiptNumber string) (bool, error)
	List(ctx context.Context, params *ReturnReceiptFilterParams) ([]entity.ReturnReceipt, error)
}

// ReturnReceiptFilterParams contains filtering parameters for receipt queries
type ReturnReceiptFilterParams struct {
	StartDate *time.Time
	EndDate   *time.Time
	UserID    string
	SortBy    string // column name, validated by the repository
	SortOrder string // ASC or DESC
	Limit     int
}
