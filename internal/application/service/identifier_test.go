package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierGenerator_Next(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	bill, err := s.ids.Next(ctx, IdentifierBill)
	require.NoError(t, err)
	assert.Equal(t, "B-20261015-0001", bill)

	receipt, err := s.ids.Next(ctx, IdentifierReceipt)
	require.NoError(t, err)
	assert.Equal(t, "R-20261015-0001", receipt, "each class has its own counter")

	s.ids.now = func() time.Time { return fixedNow.AddDate(0, 0, 1) }
	bill, err = s.ids.Next(ctx, IdentifierBill)
	require.NoError(t, err)
	assert.Equal(t, "B-20261016-0002", bill, "the counter does not reset by day")

	_, err = s.ids.Next(ctx, IdentifierClass("order"))
	assert.Error(t, err)
}

func TestIdentifierGenerator_SeedsFromExistingRows(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	for _, number := range []string{"RR-1", "RR-2"} {
		_, err := s.receipts.CreateReturnReceipt(ctx, receiptInput(number, 3))
		require.NoError(t, err)
	}

	next, err := s.ids.Next(ctx, IdentifierReceipt)
	require.NoError(t, err)
	assert.Equal(t, "R-20261015-0003", next)
}
