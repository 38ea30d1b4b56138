package shipment

import (
	domainShipment "courier-track/internal/domain/shipment"
	appErrors "courier-track/pkg/errors"
	"courier-track/pkg/utils"
)

// validateCreateRequest rejects bookings with missing or invalid fields,
// naming the offending field in the error.
func validateCreateRequest(req *CreateShipmentRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		if field, rule, ok := utils.FirstInvalidField(err); ok {
			return appErrors.NewValidationError(field, rule)
		}
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if req.WeightKg < domainShipment.MinWeightKg {
		return appErrors.NewValidationError("weight_kg", "must be at least 0.1")
	}

	return nil
}
