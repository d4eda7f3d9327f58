package repository

import (
	"context"
	"testing"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := NewInventoryRepository(db)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Upsert(ctx, &entity.InventoryRegister{
		Total: 15,
		Sizes: map[string]int64{"2x3": 10, "1x1": 5},
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.InventoryRegister{
		Total: 7,
		Sizes: map[string]int64{"0.5x1": 7},
	}))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.Total)
	assert.Equal(t, map[string]int64{"0.5x1": 7}, got.Sizes)

	var rows int64
	require.NoError(t, db.Model(&entity.InventoryRegister{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}
