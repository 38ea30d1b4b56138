package ingestion

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainShipment "courier-track/internal/domain/shipment"
)

// fakeShipmentRepo records appended events for a single known shipment.
type fakeShipmentRepo struct {
	mu       sync.Mutex
	shipment *domainShipment.Shipment
	events   []*domainShipment.TrackingEvent
}

func (f *fakeShipmentRepo) Create(ctx context.Context, sh *domainShipment.Shipment) error {
	return nil
}

func (f *fakeShipmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domainShipment.Shipment, error) {
	return nil, domainShipment.ErrShipmentNotFound
}

func (f *fakeShipmentRepo) GetByTrackingID(ctx context.Context, trackingID string) (*domainShipment.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shipment != nil && f.shipment.TrackingID == trackingID {
		return f.shipment, nil
	}
	return nil, domainShipment.ErrShipmentNotFound
}

func (f *fakeShipmentRepo) ListBySender(ctx context.Context, id uuid.UUID) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (f *fakeShipmentRepo) ListByCourier(ctx context.Context, id uuid.UUID) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (f *fakeShipmentRepo) ListAll(ctx context.Context) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (f *fakeShipmentRepo) AssignCourier(ctx context.Context, shipmentID, courierID uuid.UUID) error {
	return nil
}

func (f *fakeShipmentRepo) AdvanceStatus(ctx context.Context, shipmentID uuid.UUID, from, to domainShipment.ShipmentStatus, event *domainShipment.TrackingEvent) error {
	return nil
}

func (f *fakeShipmentRepo) AppendEvent(ctx context.Context, event *domainShipment.TrackingEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeShipmentRepo) appendedEvents() []*domainShipment.TrackingEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domainShipment.TrackingEvent, len(f.events))
	copy(out, f.events)
	return out
}

func TestProcessorAppendsScanEvent(t *testing.T) {
	repo := &fakeShipmentRepo{
		shipment: &domainShipment.Shipment{
			ID:         uuid.New(),
			TrackingID: "TRK12345678",
			Status:     domainShipment.StatusInTransit,
		},
	}

	processor := NewProcessor(repo, 2, 16)
	processor.Start()

	lat, lng := 40.7128, -74.006
	processor.ProcessScan(&LocationScanMessage{
		TrackingID: "TRK12345678",
		Location:   "Central Hub",
		Latitude:   &lat,
		Longitude:  &lng,
		Timestamp:  time.Now(),
	})

	processor.Stop()

	events := repo.appendedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, repo.shipment.ID, events[0].ShipmentID)
	assert.Equal(t, "In Transit", events[0].Status)
	assert.Equal(t, "Central Hub", events[0].Location)
	require.NotNil(t, events[0].Latitude)
	assert.InDelta(t, 40.7128, *events[0].Latitude, 0.0001)
}

func TestProcessorDropsInvalidScan(t *testing.T) {
	repo := &fakeShipmentRepo{}

	processor := NewProcessor(repo, 1, 4)
	processor.Start()

	processor.ProcessScan(&LocationScanMessage{
		TrackingID: "bogus",
		Location:   "Central Hub",
		Timestamp:  time.Now(),
	})

	processor.Stop()

	assert.Empty(t, repo.appendedEvents())
}

func TestProcessorIgnoresUnknownShipment(t *testing.T) {
	repo := &fakeShipmentRepo{}

	processor := NewProcessor(repo, 1, 4)
	processor.Start()

	processor.ProcessScan(&LocationScanMessage{
		TrackingID: "TRK00000000",
		Location:   "Central Hub",
		Timestamp:  time.Now(),
	})

	processor.Stop()

	assert.Empty(t, repo.appendedEvents())
}
