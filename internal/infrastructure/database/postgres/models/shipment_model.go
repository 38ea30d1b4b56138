package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentModel represents the database model for shipments
type ShipmentModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TrackingID         string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	SenderID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	AssignedCourierID  *uuid.UUID      `gorm:"type:uuid;index"`
	ReceiverName       string          `gorm:"type:varchar(100);not null"`
	ReceiverPhone      string          `gorm:"type:varchar(20);not null"`
	ReceiverAddress    string          `gorm:"type:text;not null"`
	PackageDescription string          `gorm:"type:text;not null"`
	WeightKg           float64         `gorm:"type:decimal(8,2);not null"`
	Dimensions         *string         `gorm:"type:varchar(100)"`
	PickupAddress      string          `gorm:"type:text;not null"`
	DeliveryAddress    string          `gorm:"type:text;not null"`
	EstimatedCost      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod      string          `gorm:"type:varchar(20);not null"`
	Status             string          `gorm:"type:varchar(20);not null;default:'booked';index"`
	CreatedAt          time.Time       `gorm:"not null;index"`
	UpdatedAt          time.Time       `gorm:"not null"`

	// Relations
	Sender          *UserModel           `gorm:"foreignKey:SenderID"`
	AssignedCourier *UserModel           `gorm:"foreignKey:AssignedCourierID"`
	History         []TrackingEventModel `gorm:"foreignKey:ShipmentID"`
}

func (ShipmentModel) TableName() string {
	return "shipments"
}

// TrackingEventModel represents one immutable row of a shipment's
// tracking history; rows are only ever inserted.
type TrackingEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"type:varchar(100);not null"`
	Location    string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Latitude    *float64  `gorm:"type:decimal(9,6)"`
	Longitude   *float64  `gorm:"type:decimal(9,6)"`
	Timestamp   time.Time `gorm:"not null;index"`
}

func (TrackingEventModel) TableName() string {
	return "tracking_events"
}
