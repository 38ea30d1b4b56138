package shipment

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for shipment repository operations.
//
// AdvanceStatus must execute read-validate-write-append as one
// serializable unit per shipment: the status update is guarded by the
// expected current status, so of two concurrent advances on the same
// shipment exactly one succeeds and the other reports
// ErrInvalidStatusTransition.
type Repository interface {
	Create(ctx context.Context, shipment *Shipment) error
	GetByID(ctx context.Context, shipmentID uuid.UUID) (*Shipment, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*Shipment, error)
	ListBySender(ctx context.Context, senderID uuid.UUID) ([]*Shipment, error)
	ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*Shipment, error)
	ListAll(ctx context.Context) ([]*Shipment, error)
	AssignCourier(ctx context.Context, shipmentID, courierID uuid.UUID) error

	// AdvanceStatus atomically moves the shipment from `from` to `to`
	// and appends the tracking event.
	AdvanceStatus(ctx context.Context, shipmentID uuid.UUID, from, to ShipmentStatus, event *TrackingEvent) error

	// AppendEvent appends a non-status history event (location scans).
	AppendEvent(ctx context.Context, event *TrackingEvent) error
}
