package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceRepository_Next(t *testing.T) {
	t.Run("starts after existing rows", func(t *testing.T) {
		db := testutil.NewTestDB(t)
		repo := NewSequenceRepository(db)
		ctx := context.Background()

		for i := 0; i < 2; i++ {
			require.NoError(t, db.Create(&entity.Bill{
				BillNumber: fmt.Sprintf("OLD-%d", i),
				UserID:     "U1",
				UserName:   "Asha",
				StartDate:  time.Now().UTC(),
				EndDate:    time.Now().UTC(),
			}).Error)
		}

		n, err := repo.Next(ctx, "bill", &entity.Bill{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		n, err = repo.Next(ctx, "bill", &entity.Bill{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("counters are independent", func(t *testing.T) {
		db := testutil.NewTestDB(t)
		repo := NewSequenceRepository(db)
		ctx := context.Background()

		b, err := repo.Next(ctx, "bill", &entity.Bill{})
		require.NoError(t, err)
		r, err := repo.Next(ctx, "receipt", &entity.ReturnReceipt{})
		require.NoError(t, err)

		assert.Equal(t, int64(1), b)
		assert.Equal(t, int64(1), r)
	})

	t.Run("concurrent callers get distinct values", func(t *testing.T) {
		db := testutil.NewTestDB(t)
		repo := NewSequenceRepository(db)

		const callers = 20
		values := make(chan int64, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				n, err := repo.Next(context.Background(), "bill", &entity.Bill{})
				assert.NoError(t, err)
				values <- n
			}()
		}
		wg.Wait()
		close(values)

		seen := map[int64]bool{}
		for n := range values {
			assert.False(t, seen[n], "duplicate value %d", n)
			seen[n] = true
		}
		assert.Len(t, seen, callers)
		for i := int64(1); i <= callers; i++ {
			assert.True(t, seen[i], "missing value %d", i)
		}
	})
}
