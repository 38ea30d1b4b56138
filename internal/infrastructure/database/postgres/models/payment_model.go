package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel represents the database model for payments
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShipmentID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Method        string          `gorm:"type:varchar(20);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending'"`
	TransactionID *string         `gorm:"type:varchar(100)"`
	PaidAt        *time.Time      `gorm:"type:timestamptz"`
	CreatedAt     time.Time       `gorm:"not null"`

	Shipment *ShipmentModel `gorm:"foreignKey:ShipmentID"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
