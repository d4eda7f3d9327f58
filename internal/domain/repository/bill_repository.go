package repository

import (
	"context"
	"time"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/domain/enum"
	"github.com/nilkanthplet/BP-1.0/pkg/pagination"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	// Create stores the bill together with any opening payments
	Create(ctx context.Context, bill *entity.Bill) error
	GetByBillNumber(ctx context.Context, billNumber string) (*entity.Bill, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	// ApplyPayment appends the payment and increments the stored amounts
	// atomically. decide receives the bill as it stands after the
	// increment and returns the status to persist; an error from decide
	// rolls the whole payment back. Returns nil, nil if the bill is absent.
	ApplyPayment(ctx context.Context, payment *entity.Payment, decide func(before enum.BillStatus, after *entity.Bill) (enum.BillStatus, error)) (*entity.Bill, error)
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination *pagination.PaginationParams
	UserID     string
	StartDate  *time.Time
	EndDate    *time.Time
}
