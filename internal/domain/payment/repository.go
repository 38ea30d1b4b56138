package payment

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for payment repository operations
type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByShipmentID(ctx context.Context, shipmentID uuid.UUID) (*Payment, error)
}
