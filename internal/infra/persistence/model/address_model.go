package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel maps the addresses table. The partial unique index lets
// the database reject a second primary address for the same user.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_addresses_one_primary,where:is_primary"`
	Label       string    `gorm:"type:varchar(100);not null"`
	FullAddress string    `gorm:"type:text;not null"`
	City        string    `gorm:"type:varchar(100)"`
	PostalCode  string    `gorm:"type:varchar(20)"`
	Phone       string    `gorm:"type:varchar(30)"`
	IsPrimary   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (AddressModel) TableName() string {
	return "addresses"
}
