package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nilkanthplet/BP-1.0/internal/domain/enum"
	"gorm.io/gorm"
)

// Bill is one billing cycle for one user.
// CompletedPayment always equals the sum of Payments and DuePayment is
// TotalAmount minus CompletedPayment; both are maintained by the store.
type Bill struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BillNumber       string          `gorm:"size:50;uniqueIndex;not null" json:"billNumber"`
	UserID           string          `gorm:"size:100;not null;index" json:"userId"`
	UserName         string          `gorm:"size:255;not null" json:"userName"`
	TotalAmount      int64           `gorm:"not null" json:"totalAmount"`
	CompletedPayment int64           `gorm:"not null;default:0" json:"completedPayment"`
	DuePayment       int64           `gorm:"not null" json:"duePayment"`
	Payments         []Payment       `gorm:"foreignKey:BillID" json:"payments"`
	StartDate        time.Time       `gorm:"not null" json:"startDate"`
	EndDate          time.Time       `gorm:"not null" json:"endDate"`
	Status           enum.BillStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Metadata         BillMetadata    `gorm:"embedded;embeddedPrefix:metadata_" json:"metadata"`
}

// BillMetadata tracks when the bill was issued and last changed
type BillMetadata struct {
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Payment is one amount received against a bill
type Payment struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"-"`
	BillID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"-"`
	BillNumber    string             `gorm:"size:50;not null" json:"billNumber"`
	Amount        int64              `gorm:"not null" json:"amount"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"paymentMethod"`
	PaymentDate   time.Time          `gorm:"not null" json:"paymentDate"`
}

// PaymentsTotal sums the recorded payments
func (b *Bill) PaymentsTotal() int64 {
	var sum int64
	for _, p := range b.Payments {
		sum += p.Amount
	}
	return sum
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "bill_payments"
}
