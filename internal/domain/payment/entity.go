package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the state of a payment
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusCompleted PaymentStatus = "completed"
	StatusFailed    PaymentStatus = "failed"
	StatusRefunded  PaymentStatus = "refunded"
)

// Payment represents a payment record for a shipment. At most one
// payment exists per shipment; its amount is the shipment's estimated
// cost at booking time.
type Payment struct {
	ID            uuid.UUID
	ShipmentID    uuid.UUID
	Amount        decimal.Decimal
	Method        string
	Status        PaymentStatus
	TransactionID *string
	PaidAt        *time.Time
	CreatedAt     time.Time
}
