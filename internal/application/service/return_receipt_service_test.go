package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiptInput(number string, day int) *CreateReturnReceiptInput {
	date := time.Date(2026, 10, day, 0, 0, 0, 0, time.UTC)
	return &CreateReturnReceiptInput{
		ReceiptNumber: number,
		Date:          &date,
		UserID:        "U1",
		Name:          "Asha",
		Site:          "North yard",
		Sizes: []SizeLineInput{
			{Size: "2 X 3", Pieces: 10, MarkedValue: 5, Total: 50},
			{Size: "2 X 2", Pieces: 4, MarkedValue: 5, Total: 20},
		},
		Total:      70,
		GrandTotal: 70,
	}
}

func TestReturnReceiptService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the receipt with detailed sizes", func(t *testing.T) {
		s := newTestServices(t)

		view, err := s.receipts.CreateReturnReceipt(ctx, receiptInput("RR-1", 3))
		require.NoError(t, err)

		assert.Equal(t, "RR-1", view.ReceiptNumber)
		assert.Equal(t, entity.SizeDetail{Pieces: 10, MarkedValue: 5, Total: 50}, view.DetailedSizes["2 X 3"])
		assert.Equal(t, fixedNow, view.Metadata.CreatedAt)

		got, err := s.receipts.GetReturnReceipt(ctx, "RR-1")
		require.NoError(t, err)
		require.Len(t, got.Sizes, 2)
		assert.Equal(t, "2 X 3", got.Sizes[0].Size)
		assert.Equal(t, "2 X 2", got.Sizes[1].Size)
		assert.Equal(t, int64(70), got.Total)
		assert.Equal(t, 0, s.logs.FilterMessage("receipt total differs from size lines").Len())
	})

	t.Run("generates a number when none is given", func(t *testing.T) {
		s := newTestServices(t)

		first, err := s.receipts.CreateReturnReceipt(ctx, receiptInput("", 3))
		require.NoError(t, err)
		second, err := s.receipts.CreateReturnReceipt(ctx, receiptInput("  ", 4))
		require.NoError(t, err)

		assert.Equal(t, "R-20261015-0001", first.ReceiptNumber)
		assert.Equal(t, "R-20261015-0002", second.ReceiptNumber)
	})

	t.Run("duplicate number leaves the existing receipt alone", func(t *testing.T) {
		s := newTestServices(t)
		_, err := s.receipts.CreateReturnReceipt(ctx, receiptInput("RR-1", 3))
		require.NoError(t, err)

		dup := receiptInput("RR-1", 9)
		dup.Name = "Someone else"
		_, err = s.receipts.CreateReturnReceipt(ctx, dup)
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
		assert.Equal(t, "Receipt number already exists", apperror.GetAppError(err).Message)

		got, err := s.receipts.GetReturnReceipt(ctx, "RR-1")
		require.NoError(t, err)
		assert.Equal(t, "Asha", got.Name)
		assert.Equal(t, 3, got.Date.Day())
		assert.Len(t, got.Sizes, 2)
	})

	t.Run("requires date, user, name and size labels", func(t *testing.T) {
		s := newTestServices(t)
		in := &CreateReturnReceiptInput{
			ReceiptNumber: "RR-2",
			Sizes:         []SizeLineInput{{Size: " ", Pieces: 1}},
		}

		_, err := s.receipts.CreateReturnReceipt(ctx, in)
		require.True(t, apperror.HasCode(err, http.StatusUnprocessableEntity))

		var fields []string
		for _, fe := range apperror.GetAppError(err).Errors {
			fields = append(fields, fe.Field)
		}
		assert.ElementsMatch(t, []string{"date", "userId", "name", "sizes[0].size"}, fields)

		_, err = s.receipts.GetReturnReceipt(ctx, "RR-2")
		assert.True(t, apperror.HasCode(err, http.StatusNotFound))
	})

	t.Run("mismatched totals are stored and logged", func(t *testing.T) {
		s := newTestServices(t)
		in := receiptInput("RR-3", 3)
		in.Total = 999

		view, err := s.receipts.CreateReturnReceipt(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(999), view.Total)
		assert.Equal(t, 1, s.logs.FilterMessage("receipt total differs from size lines").Len())
	})
}

func TestReturnReceiptService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("patches only the given fields", func(t *testing.T) {
		s := newTestServices(t)
		_, err := s.receipts.CreateReturnReceipt(ctx, receiptInput("RR-1", 3))
		require.NoError(t, err)

		view, err := s.receipts.UpdateReturnReceipt(ctx, &UpdateReturnReceiptInput{
			ReceiptNumber: "RR-1",
			Notes:         ptr("collected late"),
		})
		require.NoError(t, err)
		assert.Equal(t, "collected late", view.Notes)

		got, err := s.receipts.GetReturnReceipt(ctx, "RR-1")
		require.NoError(t, err)
		assert.Equal(t, "collected late", got.Notes)
		assert.Equal(t, "North yard", got.Site)
		assert.Len(t, got.Sizes, 2)
	})

	t.Run("replaces size lines wholesale", func(t *testing.T) {
		s := newTestServices(t)
		_, err := s.receipts.CreateReturnReceipt(ctx, receiptInput("RR-1", 3))
		require.NoError(t, err)

		sizes := []SizeLineInput{{Size: "1 X 3", Pieces: 2, MarkedValue: 3, Total: 6}}
		_, err = s.receipts.UpdateReturnReceipt(ctx, &UpdateReturnReceiptInput{
			ReceiptNumber: "RR-1",
			Sizes:         &sizes,
			Total:         ptr(int64(6)),
		})
		require.NoError(t, err)

		got, err := s.receipts.GetReturnReceipt(ctx, "RR-1")
		require.NoError(t, err)
		require.Len(t, got.Sizes, 1)
		assert.Equal(t, "1 X 3", got.Sizes[0].Size)
		assert.Equal(t, map[string]entity.SizeDetail{"1 X 3": {Pieces: 2, MarkedValue: 3, Total: 6}}, got.DetailedSizes)
	})

	t.Run("rejects clearing required fields", func(t *testing.T) {
		s := newTestServices(t)
		_, err := s.receipts.CreateReturnReceipt(ctx, receiptInput("RR-1", 3))
		require.NoError(t, err)

		_, err = s.receipts.UpdateReturnReceipt(ctx, &UpdateReturnReceiptInput{
			ReceiptNumber: "RR-1",
			Name:          ptr(""),
		})
		assert.True(t, apperror.HasCode(err, http.StatusUnprocessableEntity))

		got, err := s.receipts.GetReturnReceipt(ctx, "RR-1")
		require.NoError(t, err)
		assert.Equal(t, "Asha", got.Name)
	})

	t.Run("unknown receipt", func(t *testing.T) {
		s := newTestServices(t)

		_, err := s.receipts.UpdateReturnReceipt(ctx, &UpdateReturnReceiptInput{ReceiptNumber: "missing"})
		assert.True(t, apperror.HasCode(err, http.StatusNotFound))
	})
}

func TestReturnReceiptService_DeleteAndQuery(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	for i, number := range []string{"RR-1", "RR-2", "RR-3"} {
		_, err := s.receipts.CreateReturnReceipt(ctx, receiptInput(number, i+1))
		require.NoError(t, err)
	}

	start := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	views, err := s.receipts.QueryReturnReceipts(ctx, &QueryReturnReceiptsInput{StartDate: &start})
	require.NoError(t, err)
	assert.Len(t, views, 2)
	for _, v := range views {
		assert.NotEmpty(t, v.DetailedSizes)
	}

	end := time.Date(2026, 10, 1, 23, 59, 59, 0, time.UTC)
	_, err = s.receipts.QueryReturnReceipts(ctx, &QueryReturnReceiptsInput{StartDate: &start, EndDate: &end})
	assert.True(t, apperror.HasCode(err, http.StatusBadRequest))

	require.NoError(t, s.receipts.DeleteReturnReceipt(ctx, "RR-2"))
	err = s.receipts.DeleteReturnReceipt(ctx, "RR-2")
	assert.True(t, apperror.HasCode(err, http.StatusNotFound))

	views, err = s.receipts.QueryReturnReceipts(ctx, &QueryReturnReceiptsInput{})
	require.NoError(t, err)
	assert.Len(t, views, 2)
}
