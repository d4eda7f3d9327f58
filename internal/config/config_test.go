package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "bp-ledger", cfg.App.Name)
	assert.Equal(t, int64(20000), cfg.Inventory.DefaultTotal)
	assert.Equal(t, int64(1000), cfg.Inventory.DefaultSizeCount)
	assert.Equal(t, DefaultSizes, cfg.Inventory.Sizes)
	assert.Equal(t, "none", cfg.Printer.Type)
}

func TestLoad_InventorySizesFromEnv(t *testing.T) {
	t.Setenv("INVENTORY_SIZES", " 2x3, 2x2 ,,1x1")

	cfg := Load()

	assert.Equal(t, []string{"2x3", "2x2", "1x1"}, cfg.Inventory.Sizes)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db", Port: "5432", Name: "bp", User: "u", Password: "p",
		SSLMode: "disable", Timezone: "UTC",
	}

	assert.Equal(t, "host=db user=u password=p dbname=bp port=5432 sslmode=disable TimeZone=UTC", c.DSN())
}
