package shipment

import (
	"fmt"

	domainShipment "courier-track/internal/domain/shipment"
	appErrors "courier-track/pkg/errors"
)

// State machine for shipment status transitions. The chain is strictly
// linear: every state has exactly one legal successor and delivered is
// terminal. Skipping ahead or moving backwards is rejected regardless
// of what the caller requests.
var validTransitions = map[domainShipment.ShipmentStatus][]domainShipment.ShipmentStatus{
	domainShipment.StatusBooked: {
		domainShipment.StatusPickedUp,
	},
	domainShipment.StatusPickedUp: {
		domainShipment.StatusInTransit,
	},
	domainShipment.StatusInTransit: {
		domainShipment.StatusOutForDelivery,
	},
	domainShipment.StatusOutForDelivery: {
		domainShipment.StatusDelivered,
	},
	domainShipment.StatusDelivered: {
		// Terminal state - no transitions
	},
}

// Human-readable labels recorded in tracking history.
var statusLabels = map[domainShipment.ShipmentStatus]string{
	domainShipment.StatusBooked:         "Package Booked",
	domainShipment.StatusPickedUp:       "Picked Up",
	domainShipment.StatusInTransit:      "In Transit",
	domainShipment.StatusOutForDelivery: "Out for Delivery",
	domainShipment.StatusDelivered:      "Delivered",
}

// ValidateStatusTransition checks if status transition is allowed
func ValidateStatusTransition(currentStatus, newStatus domainShipment.ShipmentStatus) error {
	allowedStatuses, exists := validTransitions[currentStatus]
	if !exists {
		return appErrors.NewAppError(
			"INVALID_STATUS",
			fmt.Sprintf("Unknown current status: %s", currentStatus),
			domainShipment.ErrInvalidStatus,
		)
	}

	for _, allowed := range allowedStatuses {
		if newStatus == allowed {
			return nil
		}
	}

	return appErrors.NewAppError(
		"INVALID_TRANSITION",
		fmt.Sprintf("Cannot transition from %s to %s", currentStatus, newStatus),
		domainShipment.ErrInvalidStatusTransition,
	)
}

// GetAllowedTransitions returns allowed next statuses
func GetAllowedTransitions(currentStatus domainShipment.ShipmentStatus) []domainShipment.ShipmentStatus {
	return validTransitions[currentStatus]
}

// IsValidStatus reports whether s names a known lifecycle state.
func IsValidStatus(s domainShipment.ShipmentStatus) bool {
	_, ok := validTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions exist from s.
func IsTerminal(s domainShipment.ShipmentStatus) bool {
	return len(validTransitions[s]) == 0 && IsValidStatus(s)
}

// StatusLabel returns the display label recorded in tracking history.
func StatusLabel(s domainShipment.ShipmentStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}
