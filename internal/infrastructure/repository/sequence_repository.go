package repository

import (
	"context"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	domainRepo "github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next increments the counter with a single UPDATE so concurrent callers
// serialize on the row lock and never observe the same value.
func (r *sequenceRepository) Next(ctx context.Context, name string, seedModel interface{}) (int64, error) {
	var value int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		incremented, err := increment(tx, name)
		if err != nil {
			return err
		}

		if !incremented {
			var existing int64
			if seedModel != nil {
				if err := tx.Model(seedModel).Count(&existing).Error; err != nil {
					return err
				}
			}

			seeded := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&entity.Sequence{Name: name, Value: existing + 1})
			if seeded.Error != nil {
				return seeded.Error
			}

			// Another caller seeded the row first
			if seeded.RowsAffected == 0 {
				if _, err := increment(tx, name); err != nil {
					return err
				}
			}
		}

		return tx.Model(&entity.Sequence{}).
			Where("name = ?", name).
			Pluck("value", &value).Error
	})

	return value, err
}

func increment(tx *gorm.DB, name string) (bool, error) {
	result := tx.Model(&entity.Sequence{}).
		Where("name = ?", name).
		Update("value", gorm.Expr("value + 1"))
	return result.RowsAffected > 0, result.Error
}
