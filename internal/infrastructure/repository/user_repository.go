package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	domainRepo "github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByUserID(ctx context.Context, userID string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) Search(ctx context.Context, query string, limit int) ([]entity.User, error) {
	var users []entity.User
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(user_id) LIKE ? OR LOWER(name) LIKE ?", pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *userRepository) DeleteWithReceipts(ctx context.Context, userID string) (bool, int64, error) {
	found := false
	var receipts int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ?", userID).Delete(&entity.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		found = true

		owned := tx.Model(&entity.ReturnReceipt{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("receipt_id IN (?)", owned).Delete(&entity.ReturnReceiptSize{}).Error; err != nil {
			return err
		}

		result = tx.Where("user_id = ?", userID).Delete(&entity.ReturnReceipt{})
		if result.Error != nil {
			return result.Error
		}
		receipts = result.RowsAffected
		return nil
	})

	return found, receipts, err
}
