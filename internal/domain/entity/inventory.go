package entity

import "time"

// InventoryRegisterKey is the primary key of the one inventory row
const InventoryRegisterKey = "default"

// InventoryRegister holds the current stock count per size label
type InventoryRegister struct {
	ID        string           `gorm:"size:32;primaryKey" json:"-"`
	Total     int64            `gorm:"not null" json:"total"`
	Sizes     map[string]int64 `gorm:"type:text;serializer:json;not null" json:"sizes"`
	CreatedAt time.Time        `json:"createdAt,omitempty"`
	UpdatedAt time.Time        `json:"updatedAt,omitempty"`
}

// SizesTotal sums the per-size counts
func (i *InventoryRegister) SizesTotal() int64 {
	var sum int64
	for _, n := range i.Sizes {
		sum += n
	}
	return sum
}

// TableName returns the table name for the InventoryRegister model
func (InventoryRegister) TableName() string {
	return "inventory_registers"
}
