package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
	"go.uber.org/zap"
)

// ReturnReceiptService handles the ledger of return receipts
type ReturnReceiptService struct {
	receiptRepo repository.ReturnReceiptRepository
	ids         *IdentifierGenerator
	log         *zap.Logger
	now         func() time.Time
}

// NewReturnReceiptService creates a new return receipt service
func NewReturnReceiptService(
	receiptRepo repository.ReturnReceiptRepository,
	ids *IdentifierGenerator,
	log *zap.Logger,
) *ReturnReceiptService {
	return &ReturnReceiptService{
		receiptRepo: receiptRepo,
		ids:         ids,
		log:         log,
		now:         time.Now,
	}
}

// ReturnReceiptView is a receipt together with its per-size projection
type ReturnReceiptView struct {
	*entity.ReturnReceipt
	DetailedSizes map[string]entity.SizeDetail `json:"detailedSizes"`
}

// NewReturnReceiptView wraps a receipt with its detailed sizes
func NewReturnReceiptView(r *entity.ReturnReceipt) *ReturnReceiptView {
	return &ReturnReceiptView{ReturnReceipt: r, DetailedSizes: r.DetailedSizes()}
}

// SizeLineInput is one size line as submitted. Numbers are already coerced.
type SizeLineInput struct {
	Size        string
	Pieces      int64
	MarkedValue int64
	Total       int64
}

// CreateReturnReceiptInput represents the create receipt input.
// An empty ReceiptNumber is generated.
type CreateReturnReceiptInput struct {
	ReceiptNumber      string
	Date               *time.Time
	UserID             string
	Name               string
	Site               string
	Phone              string
	Sizes              []SizeLineInput
	Total              int64
	GrandTotal         int64
	Notes              string
	SelectedMarkOption string
	FullReceiptDetails string
}

// CreateReturnReceipt records a new receipt. An existing receipt with the
// same number is left untouched and a duplicate error returned.
func (s *ReturnReceiptService) CreateReturnReceipt(ctx context.Context, input *CreateReturnReceiptInput) (*ReturnReceiptView, error) {
	receipt := &entity.ReturnReceipt{
		ReceiptNumber:      strings.TrimSpace(input.ReceiptNumber),
		UserID:             strings.TrimSpace(input.UserID),
		Name:               strings.TrimSpace(input.Name),
		Site:               input.Site,
		Phone:              input.Phone,
		Sizes:              buildSizeLines(input.Sizes),
		Total:              input.Total,
		GrandTotal:         input.GrandTotal,
		Notes:              input.Notes,
		SelectedMarkOption: input.SelectedMarkOption,
	}
	if input.Date != nil {
		receipt.Date = *input.Date
	}

	if errs := validateReceipt(receipt, input.Date != nil); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	if receipt.ReceiptNumber == "" {
		number, err := s.ids.Next(ctx, IdentifierReceipt)
		if err != nil {
			return nil, err
		}
		receipt.ReceiptNumber = number
	}

	receipt.Metadata = entity.ReceiptMetadata{
		CreatedAt:          s.now(),
		FullReceiptDetails: input.FullReceiptDetails,
	}

	s.warnOnMismatch(receipt)

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, classifyCreate(err, "Receipt number already exists", "Failed to create return receipt")
	}

	return NewReturnReceiptView(receipt), nil
}

// GetReturnReceipt retrieves a receipt by its number
func (s *ReturnReceiptService) GetReturnReceipt(ctx context.Context, receiptNumber string) (*ReturnReceiptView, error) {
	receipt, err := s.receiptRepo.GetByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		return nil, classify(err, "Failed to fetch return receipt")
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return NewReturnReceiptView(receipt), nil
}

// QueryReturnReceiptsInput represents receipt query filters. Both date
// bounds are inclusive and may be given independently.
type QueryReturnReceiptsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	UserID    string
	SortBy    string
	SortOrder string
}

// QueryReturnReceipts lists at most 100 receipts matching the filter
func (s *ReturnReceiptService) QueryReturnReceipts(ctx context.Context, input *QueryReturnReceiptsInput) ([]*ReturnReceiptView, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, apperror.NewInvalidInputError("endDate", "End date must not be before start date")
	}

	receipts, err := s.receiptRepo.List(ctx, &repository.ReturnReceiptFilterParams{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		UserID:    strings.TrimSpace(input.UserID),
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Limit:     100,
	})
	if err != nil {
		return nil, classify(err, "Failed to fetch return receipts")
	}

	views := make([]*ReturnReceiptView, len(receipts))
	for i := range receipts {
		views[i] = NewReturnReceiptView(&receipts[i])
	}
	return views, nil
}

// UpdateReturnReceiptInput is a partial update. Nil fields are kept;
// a non-nil Sizes replaces every size line.
type UpdateReturnReceiptInput struct {
	ReceiptNumber      string
	Date               *time.Time
	UserID             *string
	Name               *string
	Site               *string
	Phone              *string
	Sizes              *[]SizeLineInput
	Total              *int64
	GrandTotal         *int64
	Notes              *string
	SelectedMarkOption *string
	FullReceiptDetails *string
}

// UpdateReturnReceipt applies a partial update to a receipt. The receipt
// number itself cannot change.
func (s *ReturnReceiptService) UpdateReturnReceipt(ctx context.Context, input *UpdateReturnReceiptInput) (*ReturnReceiptView, error) {
	receipt, err := s.receiptRepo.GetByReceiptNumber(ctx, input.ReceiptNumber)
	if err != nil {
		return nil, classify(err, "Failed to fetch return receipt")
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	if input.Date != nil {
		receipt.Date = *input.Date
	}
	if input.UserID != nil {
		receipt.UserID = strings.TrimSpace(*input.UserID)
	}
	if input.Name != nil {
		receipt.Name = strings.TrimSpace(*input.Name)
	}
	if input.Site != nil {
		receipt.Site = *input.Site
	}
	if input.Phone != nil {
		receipt.Phone = *input.Phone
	}
	if input.Sizes != nil {
		receipt.Sizes = buildSizeLines(*input.Sizes)
	}
	if input.Total != nil {
		receipt.Total = *input.Total
	}
	if input.GrandTotal != nil {
		receipt.GrandTotal = *input.GrandTotal
	}
	if input.Notes != nil {
		receipt.Notes = *input.Notes
	}
	if input.SelectedMarkOption != nil {
		receipt.SelectedMarkOption = *input.SelectedMarkOption
	}
	if input.FullReceiptDetails != nil {
		receipt.Metadata.FullReceiptDetails = *input.FullReceiptDetails
	}

	if errs := validateReceipt(receipt, true); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	s.warnOnMismatch(receipt)

	if err := s.receiptRepo.Update(ctx, receipt, input.Sizes != nil); err != nil {
		return nil, classify(err, "Failed to update return receipt")
	}

	return NewReturnReceiptView(receipt), nil
}

// DeleteReturnReceipt removes a receipt
func (s *ReturnReceiptService) DeleteReturnReceipt(ctx context.Context, receiptNumber string) error {
	found, err := s.receiptRepo.Delete(ctx, receiptNumber)
	if err != nil {
		return classify(err, "Failed to delete return receipt")
	}
	if !found {
		return apperror.NewNotFoundError("Receipt")
	}
	return nil
}

func buildSizeLines(in []SizeLineInput) []entity.ReturnReceiptSize {
	sizes := make([]entity.ReturnReceiptSize, len(in))
	for i, line := range in {
		sizes[i] = entity.ReturnReceiptSize{
			Position:    i,
			Size:        strings.TrimSpace(line.Size),
			Pieces:      line.Pieces,
			MarkedValue: line.MarkedValue,
			Total:       line.Total,
		}
	}
	return sizes
}

func validateReceipt(r *entity.ReturnReceipt, hasDate bool) []apperror.FieldError {
	var errs []apperror.FieldError
	if !hasDate || r.Date.IsZero() {
		errs = append(errs, apperror.FieldError{Field: "date", Message: "Date is required"})
	}
	if r.UserID == "" {
		errs = append(errs, apperror.FieldError{Field: "userId", Message: "User ID is required"})
	}
	if r.Name == "" {
		errs = append(errs, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	for i, size := range r.Sizes {
		if size.Size == "" {
			errs = append(errs, apperror.FieldError{
				Field:   fmt.Sprintf("sizes[%d].size", i),
				Message: "Size is required",
			})
		}
	}
	return errs
}

// warnOnMismatch logs receipts whose totals disagree with their lines.
// Such receipts are still stored as submitted.
func (s *ReturnReceiptService) warnOnMismatch(r *entity.ReturnReceipt) {
	if len(r.Sizes) == 0 {
		return
	}
	if sum := r.SizesTotal(); sum != r.Total {
		s.log.Warn("receipt total differs from size lines",
			zap.String("receipt_number", r.ReceiptNumber),
			zap.Int64("total", r.Total),
			zap.Int64("sizes_total", sum),
		)
	}
}
