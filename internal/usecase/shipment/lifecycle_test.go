package shipment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	domainShipment "courier-track/internal/domain/shipment"
	appErrors "courier-track/pkg/errors"
)

func TestValidateStatusTransition_LinearChain(t *testing.T) {
	chain := []domainShipment.ShipmentStatus{
		domainShipment.StatusBooked,
		domainShipment.StatusPickedUp,
		domainShipment.StatusInTransit,
		domainShipment.StatusOutForDelivery,
		domainShipment.StatusDelivered,
	}

	for i := 0; i < len(chain)-1; i++ {
		err := ValidateStatusTransition(chain[i], chain[i+1])
		assert.NoError(t, err, "expected %s -> %s to be allowed", chain[i], chain[i+1])
	}
}

func TestValidateStatusTransition_RejectsSkips(t *testing.T) {
	cases := []struct {
		name string
		from domainShipment.ShipmentStatus
		to   domainShipment.ShipmentStatus
	}{
		{"skip to in_transit", domainShipment.StatusBooked, domainShipment.StatusInTransit},
		{"skip to delivered", domainShipment.StatusBooked, domainShipment.StatusDelivered},
		{"skip from picked_up", domainShipment.StatusPickedUp, domainShipment.StatusOutForDelivery},
		{"backwards", domainShipment.StatusInTransit, domainShipment.StatusPickedUp},
		{"self transition", domainShipment.StatusInTransit, domainShipment.StatusInTransit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStatusTransition(tc.from, tc.to)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, domainShipment.ErrInvalidStatusTransition))

			var appErr *appErrors.AppError
			assert.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_TRANSITION", appErr.Code)
		})
	}
}

func TestValidateStatusTransition_DeliveredIsTerminal(t *testing.T) {
	for _, next := range []domainShipment.ShipmentStatus{
		domainShipment.StatusBooked,
		domainShipment.StatusPickedUp,
		domainShipment.StatusInTransit,
		domainShipment.StatusOutForDelivery,
		domainShipment.StatusDelivered,
	} {
		err := ValidateStatusTransition(domainShipment.StatusDelivered, next)
		assert.Error(t, err, "delivered must not transition to %s", next)
	}
}

func TestValidateStatusTransition_UnknownStatus(t *testing.T) {
	err := ValidateStatusTransition("cancelled", domainShipment.StatusDelivered)
	assert.Error(t, err)

	var appErr *appErrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_STATUS", appErr.Code)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(domainShipment.StatusDelivered))
	assert.False(t, IsTerminal(domainShipment.StatusBooked))
	assert.False(t, IsTerminal(domainShipment.StatusOutForDelivery))
	assert.False(t, IsTerminal("cancelled"))
}

func TestGetAllowedTransitions(t *testing.T) {
	next := GetAllowedTransitions(domainShipment.StatusBooked)
	assert.Equal(t, []domainShipment.ShipmentStatus{domainShipment.StatusPickedUp}, next)

	assert.Empty(t, GetAllowedTransitions(domainShipment.StatusDelivered))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Package Booked", StatusLabel(domainShipment.StatusBooked))
	assert.Equal(t, "Out for Delivery", StatusLabel(domainShipment.StatusOutForDelivery))
	assert.Equal(t, "Delivered", StatusLabel(domainShipment.StatusDelivered))
	// Unknown statuses fall back to the raw value
	assert.Equal(t, "mystery", StatusLabel("mystery"))
}
