package ingestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScan() *LocationScanMessage {
	lat := 40.7128
	lng := -74.006
	return &LocationScanMessage{
		TrackingID: "TRK12345678",
		Location:   "Central Hub",
		Latitude:   &lat,
		Longitude:  &lng,
		Timestamp:  time.Now(),
	}
}

func TestValidateLocationScan(t *testing.T) {
	assert.NoError(t, ValidateLocationScan(validScan()))
}

func TestValidateLocationScan_CoordinatesOptionalTogether(t *testing.T) {
	scan := validScan()
	scan.Latitude = nil
	scan.Longitude = nil
	assert.NoError(t, ValidateLocationScan(scan))

	scan = validScan()
	scan.Longitude = nil
	err := ValidateLocationScan(scan)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "latitude", vErr.Field)
}

func TestValidateLocationScan_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*LocationScanMessage)
		field  string
	}{
		{"missing tracking id", func(m *LocationScanMessage) { m.TrackingID = "" }, "tracking_id"},
		{"malformed tracking id", func(m *LocationScanMessage) { m.TrackingID = "TRK123" }, "tracking_id"},
		{"lowercase prefix", func(m *LocationScanMessage) { m.TrackingID = "trk12345678" }, "tracking_id"},
		{"missing location", func(m *LocationScanMessage) { m.Location = "" }, "location"},
		{"latitude out of range", func(m *LocationScanMessage) { v := 91.0; m.Latitude = &v }, "latitude"},
		{"longitude out of range", func(m *LocationScanMessage) { v := -181.0; m.Longitude = &v }, "longitude"},
		{"zero timestamp", func(m *LocationScanMessage) { m.Timestamp = time.Time{} }, "timestamp"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scan := validScan()
			tc.mutate(scan)

			err := ValidateLocationScan(scan)
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestParseLocationScan(t *testing.T) {
	payload := []byte(`{"tracking_id":"TRK12345678","location":"Central Hub","latitude":40.7,"longitude":-74.0}`)

	msg, err := ParseLocationScan(payload)
	require.NoError(t, err)
	assert.Equal(t, "TRK12345678", msg.TrackingID)
	assert.Equal(t, "Central Hub", msg.Location)
	require.NotNil(t, msg.Latitude)
	assert.InDelta(t, 40.7, *msg.Latitude, 0.001)
	// Missing timestamp defaults to receipt time
	assert.False(t, msg.Timestamp.IsZero())
}

func TestParseLocationScan_BadJSON(t *testing.T) {
	_, err := ParseLocationScan([]byte(`{"tracking_id": `))
	assert.Error(t, err)
}
