package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewIdempotencyRepository(testutil.NewTestDB(t))
	operator := uuid.New()

	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{
		Key:          "k1",
		OperatorID:   operator,
		Endpoint:     "POST /api/v1/bills",
		ResponseCode: 201,
		ResponseBody: `{"success":true}`,
		ExpiresAt:    time.Now().Add(-time.Minute),
	}))

	got, err := repo.GetByKey(ctx, "k1", operator)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsExpired())

	other, err := repo.GetByKey(ctx, "k1", uuid.New())
	require.NoError(t, err)
	assert.Nil(t, other)

	// Storing the same key again replaces the expired entry
	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{
		Key:          "k1",
		OperatorID:   operator,
		Endpoint:     "POST /api/v1/bills",
		ResponseCode: 400,
		ExpiresAt:    time.Now().Add(time.Hour),
	}))
	got, err = repo.GetByKey(ctx, "k1", operator)
	require.NoError(t, err)
	assert.Equal(t, 400, got.ResponseCode)
	assert.False(t, got.IsExpired())

	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{
		Key:        "k2",
		OperatorID: operator,
		Endpoint:   "POST /api/v1/bills",
		ExpiresAt:  time.Now().Add(-time.Hour),
	}))
	n, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
