package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a customer who returns items and is billed.
// UserID is the business identifier chosen at registration.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"size:100;uniqueIndex;not null" json:"userId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Site      string    `gorm:"size:255;default:''" json:"site"`
	Phone     string    `gorm:"size:50;default:''" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeSave assigns an ID and trims the identifying fields
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.UserID = strings.TrimSpace(u.UserID)
	u.Name = strings.TrimSpace(u.Name)
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
