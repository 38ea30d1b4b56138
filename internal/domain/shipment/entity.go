package shipment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentStatus represents the lifecycle state of a shipment
type ShipmentStatus string

const (
	StatusBooked         ShipmentStatus = "booked"
	StatusPickedUp       ShipmentStatus = "picked_up"
	StatusInTransit      ShipmentStatus = "in_transit"
	StatusOutForDelivery ShipmentStatus = "out_for_delivery"
	StatusDelivered      ShipmentStatus = "delivered" // terminal
)

const (
	PaymentMethodCOD    = "cod"
	PaymentMethodCard   = "card"
	PaymentMethodUPI    = "upi"
	PaymentMethodWallet = "wallet"
)

// Rate applied per kilogram when estimating cost at booking time.
// The estimate is computed once and never revised.
var CostPerKg = decimal.NewFromInt(10)

// MinWeightKg is the smallest bookable package weight.
const MinWeightKg = 0.1

// Shipment represents a parcel booking entity in the domain
type Shipment struct {
	ID         uuid.UUID
	TrackingID string

	// Parties involved
	SenderID          uuid.UUID
	SenderUsername    string
	AssignedCourierID *uuid.UUID

	// Receiver information
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string

	// Package information
	PackageDescription string
	WeightKg           float64
	Dimensions         *string

	// Addresses
	PickupAddress   string
	DeliveryAddress string

	// Cost and payment
	EstimatedCost decimal.Decimal
	PaymentMethod string

	// Status
	Status ShipmentStatus

	// History, oldest event first; always holds at least the booking event.
	History []TrackingEvent

	// Metadata
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrackingEvent is an immutable record in a shipment's history
type TrackingEvent struct {
	ID          uuid.UUID
	ShipmentID  uuid.UUID
	Status      string
	Location    string
	Description string
	Latitude    *float64
	Longitude   *float64
	Timestamp   time.Time
}

// EstimateCost computes the booking-time cost estimate for a weight,
// rounded to two decimal places.
func EstimateCost(weightKg float64) decimal.Decimal {
	return decimal.NewFromFloat(weightKg).Mul(CostPerKg).Round(2)
}
