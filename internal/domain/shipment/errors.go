package shipment

import "errors"

var (
	ErrShipmentNotFound        = errors.New("shipment not found")
	ErrTrackingIDTaken         = errors.New("tracking id already in use")
	ErrInvalidStatus           = errors.New("invalid shipment status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrCourierRequired         = errors.New("courier is required")
	ErrShipmentDelivered       = errors.New("shipment is already delivered")
)
