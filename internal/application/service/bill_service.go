package service

import (
	"context"
	"strings"
	"time"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/domain/enum"
	"github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
	"github.com/nilkanthplet/BP-1.0/pkg/pagination"
	"go.uber.org/zap"
)

// BillService handles the billing ledger and the payments applied to it
type BillService struct {
	billRepo repository.BillRepository
	ids      *IdentifierGenerator
	log      *zap.Logger
	now      func() time.Time
}

// NewBillService creates a new bill service
func NewBillService(billRepo repository.BillRepository, ids *IdentifierGenerator, log *zap.Logger) *BillService {
	return &BillService{
		billRepo: billRepo,
		ids:      ids,
		log:      log,
		now:      time.Now,
	}
}

// CreateBillInput represents the create bill input.
// DuePayment defaults to TotalAmount. Anything less is treated as already
// received and recorded as an opening payment made with PaymentMethod.
type CreateBillInput struct {
	UserID        string
	UserName      string
	TotalAmount   int64
	DuePayment    *int64
	StartDate     time.Time
	EndDate       time.Time
	PaymentMethod string
}

// CreateBill issues a new bill with a generated bill number
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	due := input.TotalAmount
	if input.DuePayment != nil {
		due = *input.DuePayment
	}

	method := enum.PaymentMethodCash
	if strings.TrimSpace(input.PaymentMethod) != "" {
		parsed, err := enum.ParsePaymentMethod(input.PaymentMethod)
		if err != nil {
			return nil, apperror.NewInvalidInputError("paymentMethod", "Payment method must be cash or online")
		}
		method = parsed
	}

	userID := strings.TrimSpace(input.UserID)
	userName := strings.TrimSpace(input.UserName)

	var errs []apperror.FieldError
	if userID == "" {
		errs = append(errs, apperror.FieldError{Field: "userId", Message: "User ID is required"})
	}
	if userName == "" {
		errs = append(errs, apperror.FieldError{Field: "userName", Message: "User name is required"})
	}
	if input.TotalAmount < 0 {
		errs = append(errs, apperror.FieldError{Field: "totalAmount", Message: "Total amount cannot be negative"})
	}
	if due < 0 || due > input.TotalAmount {
		errs = append(errs, apperror.FieldError{Field: "duePayment", Message: "Due payment must be between 0 and the total amount"})
	}
	if input.StartDate.IsZero() {
		errs = append(errs, apperror.FieldError{Field: "startDate", Message: "Start date is required"})
	}
	if input.EndDate.IsZero() {
		errs = append(errs, apperror.FieldError{Field: "endDate", Message: "End date is required"})
	} else if input.EndDate.Before(input.StartDate) {
		errs = append(errs, apperror.FieldError{Field: "endDate", Message: "End date must not be before start date"})
	}
	if len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	billNumber, err := s.ids.Next(ctx, IdentifierBill)
	if err != nil {
		return nil, err
	}

	now := s.now()
	paid := input.TotalAmount - due

	bill := &entity.Bill{
		BillNumber:       billNumber,
		UserID:           userID,
		UserName:         userName,
		TotalAmount:      input.TotalAmount,
		CompletedPayment: paid,
		DuePayment:       due,
		Payments:         []entity.Payment{},
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Metadata: entity.BillMetadata{
			CreatedAt:   now,
			LastUpdated: now,
		},
	}

	if paid > 0 {
		bill.Payments = append(bill.Payments, entity.Payment{
			BillNumber:    billNumber,
			Amount:        paid,
			PaymentMethod: method,
			PaymentDate:   now,
		})
	}

	bill.Status, err = nextBillStatus(enum.BillStatusPending, bill.CompletedPayment, bill.TotalAmount)
	if err != nil {
		return nil, apperror.NewStorageError("Failed to create bill", err)
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, classifyCreate(err, "Bill number already exists", "Failed to create bill")
	}

	s.log.Info("bill created",
		zap.String("bill_number", bill.BillNumber),
		zap.String("user_id", bill.UserID),
		zap.Int64("total_amount", bill.TotalAmount),
		zap.String("status", bill.Status.String()),
	)

	return bill, nil
}

// GetBill retrieves a bill with its payments
func (s *BillService) GetBill(ctx context.Context, billNumber string) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByBillNumber(ctx, billNumber)
	if err != nil {
		return nil, classify(err, "Failed to fetch bill")
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBillsInput represents bill list filters. The date range applies to
// the bill's creation time and both bounds are inclusive.
type ListBillsInput struct {
	UserID     string
	StartDate  *time.Time
	EndDate    *time.Time
	Pagination *pagination.PaginationParams
}

// ListBills lists bills newest first
func (s *BillService) ListBills(ctx context.Context, input *ListBillsInput) (*pagination.PaginatedResult[entity.Bill], error) {
	params := input.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	bills, total, err := s.billRepo.List(ctx, &repository.BillFilterParams{
		Pagination: params,
		UserID:     strings.TrimSpace(input.UserID),
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	})
	if err != nil {
		return nil, classify(err, "Failed to fetch bills")
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// AddPayment applies a payment to a bill. The amounts are incremented in
// the store so concurrent payments on one bill are all counted.
func (s *BillService) AddPayment(ctx context.Context, billNumber string, amount int64, paymentMethod string) (*entity.Bill, error) {
	if amount <= 0 {
		return nil, apperror.NewInvalidInputError("amount", "Amount must be greater than zero")
	}
	method, err := enum.ParsePaymentMethod(paymentMethod)
	if err != nil {
		return nil, apperror.NewInvalidInputError("paymentMethod", "Payment method must be cash or online")
	}

	payment := &entity.Payment{
		BillNumber:    billNumber,
		Amount:        amount,
		PaymentMethod: method,
		PaymentDate:   s.now(),
	}

	bill, err := s.billRepo.ApplyPayment(ctx, payment, func(before enum.BillStatus, after *entity.Bill) (enum.BillStatus, error) {
		if before == enum.BillStatusPaid {
			return before, apperror.NewBadRequestError("Bill is already paid")
		}
		if after.DuePayment < 0 {
			s.log.Warn("bill overpaid",
				zap.String("bill_number", after.BillNumber),
				zap.Int64("due_payment", after.DuePayment),
			)
		}
		next, err := nextBillStatus(before, after.CompletedPayment, after.TotalAmount)
		if err != nil {
			return before, apperror.NewBadRequestError(err.Error())
		}
		return next, nil
	})
	if err != nil {
		return nil, classify(err, "Failed to add payment")
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	s.log.Info("payment applied",
		zap.String("bill_number", bill.BillNumber),
		zap.Int64("amount", amount),
		zap.String("method", method.String()),
		zap.String("status", bill.Status.String()),
	)

	return bill, nil
}
