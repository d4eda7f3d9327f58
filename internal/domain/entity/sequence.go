package entity

import "time"

// Sequence is a named counter used to number bills and receipts
type Sequence struct {
	Name      string `gorm:"size:50;primaryKey"`
	Value     int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName returns the table name for the Sequence model
func (Sequence) TableName() string {
	return "sequences"
}
