package repository

import (
	"context"
	"errors"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/domain/enum"
	domainRepo "github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"gorm.io/gorm"
)

// errBillMissing aborts a payment transaction when no bill matched
var errBillMissing = errors.New("bill missing")

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func paymentsInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("payment_date ASC")
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetByBillNumber(ctx context.Context, billNumber string) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Payments", paymentsInOrder).
		First(&bill, "bill_number = ?", billNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})

	if params.UserID != "" {
		query = query.Where("user_id = ?", params.UserID)
	}

	if params.StartDate != nil {
		query = query.Where("metadata_created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("metadata_created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Payments", paymentsInOrder).
		Order("metadata_created_at DESC").
		Order("bill_number DESC").
		Find(&bills).Error

	return bills, total, err
}

// ApplyPayment increments the amounts in SQL rather than writing back a
// value computed in memory, so concurrent payments against the same bill
// cannot overwrite each other. The UPDATE holds the row lock until commit,
// which keeps the status read-decide-write below consistent too.
func (r *billRepository) ApplyPayment(
	ctx context.Context,
	payment *entity.Payment,
	decide func(before enum.BillStatus, after *entity.Bill) (enum.BillStatus, error),
) (*entity.Bill, error) {
	var bill entity.Bill

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Bill{}).
			Where("bill_number = ?", payment.BillNumber).
			Updates(map[string]interface{}{
				"completed_payment":     gorm.Expr("completed_payment + ?", payment.Amount),
				"due_payment":           gorm.Expr("total_amount - (completed_payment + ?)", payment.Amount),
				"metadata_last_updated": payment.PaymentDate,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errBillMissing
		}

		if err := tx.First(&bill, "bill_number = ?", payment.BillNumber).Error; err != nil {
			return err
		}

		payment.BillID = bill.ID
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		status, err := decide(bill.Status, &bill)
		if err != nil {
			return err
		}
		if status != bill.Status {
			if err := tx.Model(&entity.Bill{}).Where("id = ?", bill.ID).Update("status", status).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Payments", paymentsInOrder).First(&bill, "id = ?", bill.ID).Error
	})

	if errors.Is(err, errBillMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}
