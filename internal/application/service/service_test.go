package service

import (
	"testing"
	"time"

	"github.com/nilkanthplet/BP-1.0/internal/config"
	infraRepo "github.com/nilkanthplet/BP-1.0/internal/infrastructure/repository"
	"github.com/nilkanthplet/BP-1.0/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

// fixedNow is the clock used by services under test
var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

type testServices struct {
	db        *gorm.DB
	logs      *observer.ObservedLogs
	ids       *IdentifierGenerator
	users     *UserService
	receipts  *ReturnReceiptService
	inventory *InventoryService
	bills     *BillService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := testutil.NewTestDB(t)
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	ids := NewIdentifierGenerator(infraRepo.NewSequenceRepository(db))
	ids.now = func() time.Time { return fixedNow }

	receipts := NewReturnReceiptService(infraRepo.NewReturnReceiptRepository(db), ids, log)
	receipts.now = func() time.Time { return fixedNow }

	bills := NewBillService(infraRepo.NewBillRepository(db), ids, log)
	bills.now = func() time.Time { return fixedNow }

	return &testServices{
		db:       db,
		logs:     logs,
		ids:      ids,
		users:    NewUserService(infraRepo.NewUserRepository(db), log),
		receipts: receipts,
		inventory: NewInventoryService(infraRepo.NewInventoryRepository(db), config.InventoryConfig{
			Sizes:            config.DefaultSizes,
			DefaultTotal:     20000,
			DefaultSizeCount: 1000,
		}, log),
		bills: bills,
	}
}

func ptr[T any](v T) *T {
	return &v
}
