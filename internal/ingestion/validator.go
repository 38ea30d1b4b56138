package ingestion

import (
	"fmt"
	"regexp"
)

var trackingIDPattern = regexp.MustCompile(`^TRK\d{8}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Message)
}

// ValidateLocationScan validates a location scan message
func ValidateLocationScan(msg *LocationScanMessage) error {
	if msg.TrackingID == "" {
		return &ValidationError{Field: "tracking_id", Message: "tracking_id is required"}
	}
	if !trackingIDPattern.MatchString(msg.TrackingID) {
		return &ValidationError{Field: "tracking_id", Message: "tracking_id must match TRK followed by 8 digits"}
	}

	if msg.Location == "" {
		return &ValidationError{Field: "location", Message: "location is required"}
	}
	if len(msg.Location) > 200 {
		return &ValidationError{Field: "location", Message: "location must not exceed 200 characters"}
	}

	if len(msg.Description) > 500 {
		return &ValidationError{Field: "description", Message: "description must not exceed 500 characters"}
	}

	if msg.Latitude != nil {
		if *msg.Latitude < -90 || *msg.Latitude > 90 {
			return &ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"}
		}
	}
	if msg.Longitude != nil {
		if *msg.Longitude < -180 || *msg.Longitude > 180 {
			return &ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"}
		}
	}

	// A fix needs both coordinates or neither
	if (msg.Latitude == nil) != (msg.Longitude == nil) {
		return &ValidationError{Field: "latitude", Message: "latitude and longitude must be provided together"}
	}

	if msg.Timestamp.IsZero() {
		return &ValidationError{Field: "timestamp", Message: "timestamp is required"}
	}

	return nil
}
