package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/nilkanthplet/BP-1.0/internal/config"
	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
	"go.uber.org/zap"
)

// InventoryService handles the per-size stock register
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	defaults      config.InventoryConfig
	log           *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository, defaults config.InventoryConfig, log *zap.Logger) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		defaults:      defaults,
		log:           log,
	}
}

// GetInventory returns the saved register, or the configured default
// counts if none has been saved yet
func (s *InventoryService) GetInventory(ctx context.Context) (*entity.InventoryRegister, error) {
	register, err := s.inventoryRepo.Get(ctx)
	if err != nil {
		return nil, classify(err, "Failed to fetch inventory")
	}
	if register != nil {
		return register, nil
	}
	return s.defaultRegister(), nil
}

func (s *InventoryService) defaultRegister() *entity.InventoryRegister {
	sizes := make(map[string]int64, len(s.defaults.Sizes))
	for _, label := range s.defaults.Sizes {
		sizes[label] = s.defaults.DefaultSizeCount
	}
	return &entity.InventoryRegister{
		ID:    entity.InventoryRegisterKey,
		Total: s.defaults.DefaultTotal,
		Sizes: sizes,
	}
}

// UpdateInventoryInput is the complete register to store
type UpdateInventoryInput struct {
	Total int64
	Sizes map[string]int64
}

// UpdateInventory overwrites the register. Sizes missing from the input
// are dropped, not kept from the previous register.
func (s *InventoryService) UpdateInventory(ctx context.Context, input *UpdateInventoryInput) (*entity.InventoryRegister, error) {
	sizes := input.Sizes
	if sizes == nil {
		sizes = map[string]int64{}
	}
	register := &entity.InventoryRegister{Total: input.Total, Sizes: sizes}

	if errs := validateInventory(register); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	if err := s.inventoryRepo.Upsert(ctx, register); err != nil {
		return nil, classify(err, "Failed to update inventory")
	}

	s.log.Info("inventory updated", zap.Int64("total", register.Total), zap.Int("sizes", len(register.Sizes)))

	saved, err := s.inventoryRepo.Get(ctx)
	if err != nil {
		return nil, classify(err, "Failed to fetch inventory")
	}
	if saved == nil {
		return register, nil
	}
	return saved, nil
}

func validateInventory(r *entity.InventoryRegister) []apperror.FieldError {
	var errs []apperror.FieldError

	if r.Total < 0 {
		errs = append(errs, apperror.FieldError{Field: "total", Message: "Total cannot be negative"})
	}

	labels := make([]string, 0, len(r.Sizes))
	for label := range r.Sizes {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if label == "" {
			errs = append(errs, apperror.FieldError{Field: "sizes", Message: "Size label cannot be empty"})
			continue
		}
		if r.Sizes[label] < 0 {
			errs = append(errs, apperror.FieldError{
				Field:   "sizes." + label,
				Message: "Count cannot be negative",
			})
		}
	}

	if sum := r.SizesTotal(); sum != r.Total {
		errs = append(errs, apperror.FieldError{
			Field:   "total",
			Message: fmt.Sprintf("Total %d does not match the sum of sizes %d", r.Total, sum),
		})
	}

	return errs
}
