package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/nilkanthplet/BP-1.0/internal/config"
	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_GetInventory_Default(t *testing.T) {
	s := newTestServices(t)

	register, err := s.inventory.GetInventory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(20000), register.Total)
	assert.Len(t, register.Sizes, len(config.DefaultSizes))
	for _, label := range config.DefaultSizes {
		assert.Equal(t, int64(1000), register.Sizes[label], label)
	}
}

func TestInventoryService_UpdateInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites the whole register", func(t *testing.T) {
		s := newTestServices(t)

		_, err := s.inventory.UpdateInventory(ctx, &UpdateInventoryInput{
			Total: 30,
			Sizes: map[string]int64{"2x3": 10, "2x2": 20},
		})
		require.NoError(t, err)

		register, err := s.inventory.UpdateInventory(ctx, &UpdateInventoryInput{
			Total: 5,
			Sizes: map[string]int64{"1x1": 5},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"1x1": 5}, register.Sizes)

		got, err := s.inventory.GetInventory(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.Total)
		assert.Equal(t, map[string]int64{"1x1": 5}, got.Sizes)
	})

	t.Run("rejects inconsistent registers", func(t *testing.T) {
		s := newTestServices(t)

		tests := []struct {
			name  string
			input UpdateInventoryInput
		}{
			{"total differs from sizes", UpdateInventoryInput{Total: 10, Sizes: map[string]int64{"2x3": 9}}},
			{"negative count", UpdateInventoryInput{Total: 0, Sizes: map[string]int64{"2x3": 5, "2x2": -5}}},
			{"negative total", UpdateInventoryInput{Total: -1, Sizes: map[string]int64{}}},
			{"empty label", UpdateInventoryInput{Total: 1, Sizes: map[string]int64{"": 1}}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := s.inventory.UpdateInventory(ctx, &tt.input)
				assert.True(t, apperror.HasCode(err, http.StatusUnprocessableEntity))
			})
		}

		got, err := s.inventory.GetInventory(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(20000), got.Total, "nothing was stored")
	})
}
