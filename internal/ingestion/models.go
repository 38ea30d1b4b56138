package ingestion

import (
	"encoding/json"
	"time"
)

// LocationScanMessage represents a checkpoint scan published by a hub
// scanner or a courier device. It attaches a location fix to an
// existing shipment without changing its status.
type LocationScanMessage struct {
	TrackingID  string    `json:"tracking_id"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Timestamp   time.Time `json:"timestamp"`
}

// ParseLocationScan parses a JSON payload to LocationScanMessage
func ParseLocationScan(payload []byte) (*LocationScanMessage, error) {
	var msg LocationScanMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, err
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return &msg, nil
}
