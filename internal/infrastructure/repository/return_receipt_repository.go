package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	domainRepo "github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type returnReceiptRepository struct {
	db *gorm.DB
}

// NewReturnReceiptRepository creates a new return receipt repository
func NewReturnReceiptRepository(db *gorm.DB) domainRepo.ReturnReceiptRepository {
	return &returnReceiptRepository{db: db}
}

func orderedSizes(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *returnReceiptRepository) Create(ctx context.Context, receipt *entity.ReturnReceipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *returnReceiptRepository) GetByReceiptNumber(ctx context.Context, receiptNumber string) (*entity.ReturnReceipt, error) {
	var receipt entity.ReturnReceipt
	err := r.db.WithContext(ctx).
		Preload("Sizes", orderedSizes).
		First(&receipt, "receipt_number = ?", receiptNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *returnReceiptRepository) Update(ctx context.Context, receipt *entity.ReturnReceipt, replaceSizes bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(receipt).Error; err != nil {
			return err
		}
		if !replaceSizes {
			return nil
		}

		if err := tx.Where("receipt_id = ?", receipt.ID).Delete(&entity.ReturnReceiptSize{}).Error; err != nil {
			return err
		}
		if len(receipt.Sizes) == 0 {
			return nil
		}
		for i := range receipt.Sizes {
			receipt.Sizes[i].ID = uuid.Nil
			receipt.Sizes[i].ReceiptID = receipt.ID
		}
		return tx.Create(&receipt.Sizes).Error
	})
}

func (r *returnReceiptRepository) Delete(ctx context.Context, receiptNumber string) (bool, error) {
	found := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var receipt entity.ReturnReceipt
		err := tx.Select("id").First(&receipt, "receipt_number = ?", receiptNumber).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		if err := tx.Where("receipt_id = ?", receipt.ID).Delete(&entity.ReturnReceiptSize{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.ReturnReceipt{}, "id = ?", receipt.ID).Error
	})

	return found, err
}

func (r *returnReceiptRepository) List(ctx context.Context, params *domainRepo.ReturnReceiptFilterParams) ([]entity.ReturnReceipt, error) {
	var receipts []entity.ReturnReceipt

	query := r.db.WithContext(ctx).Model(&entity.ReturnReceipt{})

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if params.UserID != "" {
		query = query.Where("user_id = ?", params.UserID)
	}

	sortBy := ValidateSortField(params.SortBy, ReturnReceiptSortFields, "created_at")
	sortOrder := ValidateSortOrder(params.SortOrder)

	limit := params.Limit
	if limit < 1 || limit > 100 {
		limit = 100
	}

	err := query.
		Preload("Sizes", orderedSizes).
		Order(clause.OrderByColumn{Column: clause.Column{Name: sortBy}, Desc: sortOrder == "DESC"}).
		Order("id ASC").
		Limit(limit).
		Find(&receipts).Error

	return receipts, err
}
