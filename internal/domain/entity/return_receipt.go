package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReturnReceipt records items returned by a user, itemized by size
type ReturnReceipt struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNumber      string              `gorm:"size:100;uniqueIndex;not null" json:"receiptNumber"`
	Date               time.Time           `gorm:"not null;index" json:"date"`
	UserID             string              `gorm:"size:100;not null;index" json:"userId"`
	Name               string              `gorm:"size:255;not null" json:"name"`
	Site               string              `gorm:"size:255;default:''" json:"site"`
	Phone              string              `gorm:"size:50;default:''" json:"phone"`
	Sizes              []ReturnReceiptSize `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"sizes"`
	Total              int64               `gorm:"not null;default:0" json:"total"`
	GrandTotal         int64               `gorm:"not null;default:0" json:"grandTotal"`
	Notes              string              `gorm:"type:text;default:''" json:"notes"`
	SelectedMarkOption string              `gorm:"size:100;default:''" json:"selectedMarkOption"`
	Metadata           ReceiptMetadata     `gorm:"embedded;embeddedPrefix:metadata_" json:"metadata"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// ReceiptMetadata is bookkeeping captured when the receipt was written
type ReceiptMetadata struct {
	CreatedAt          time.Time `json:"createdAt"`
	FullReceiptDetails string    `gorm:"type:text;default:''" json:"fullReceiptDetails"`
}

// ReturnReceiptSize is one size line on a receipt.
// Total is expected to be Pieces * MarkedValue but is stored as given.
type ReturnReceiptSize struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	ReceiptID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Position    int       `gorm:"not null;default:0" json:"-"`
	Size        string    `gorm:"size:50;not null" json:"size"`
	Pieces      int64     `gorm:"not null;default:0" json:"pieces"`
	MarkedValue int64     `gorm:"not null;default:0" json:"markedValue"`
	Total       int64     `gorm:"not null;default:0" json:"total"`
}

// SizeDetail is the per-size view keyed by size label
type SizeDetail struct {
	Pieces      int64 `json:"pieces"`
	MarkedValue int64 `json:"markedValue"`
	Total       int64 `json:"total"`
}

// DetailedSizes projects the itemized sizes into a map keyed by size label.
// Later lines win when a label repeats.
func (r *ReturnReceipt) DetailedSizes() map[string]SizeDetail {
	out := make(map[string]SizeDetail, len(r.Sizes))
	for _, s := range r.Sizes {
		out[s.Size] = SizeDetail{Pieces: s.Pieces, MarkedValue: s.MarkedValue, Total: s.Total}
	}
	return out
}

// SizesTotal sums the per-size totals
func (r *ReturnReceipt) SizesTotal() int64 {
	var sum int64
	for _, s := range r.Sizes {
		sum += s.Total
	}
	return sum
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *ReturnReceipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReturnReceipt model
func (ReturnReceipt) TableName() string {
	return "return_receipts"
}

// BeforeCreate generates a UUID before creating a new size line
func (s *ReturnReceiptSize) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReturnReceiptSize model
func (ReturnReceiptSize) TableName() string {
	return "return_receipt_sizes"
}
