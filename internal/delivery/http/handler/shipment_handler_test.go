package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainShipment "courier-track/internal/domain/shipment"
	shipmentUsecase "courier-track/internal/usecase/shipment"
	"courier-track/pkg/utils"
)

// trackingOnlyRepo serves a single shipment by tracking ID.
type trackingOnlyRepo struct {
	shipment *domainShipment.Shipment
}

func (r *trackingOnlyRepo) Create(ctx context.Context, sh *domainShipment.Shipment) error {
	return nil
}

func (r *trackingOnlyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domainShipment.Shipment, error) {
	return nil, domainShipment.ErrShipmentNotFound
}

func (r *trackingOnlyRepo) GetByTrackingID(ctx context.Context, trackingID string) (*domainShipment.Shipment, error) {
	if r.shipment != nil && r.shipment.TrackingID == trackingID {
		return r.shipment, nil
	}
	return nil, domainShipment.ErrShipmentNotFound
}

func (r *trackingOnlyRepo) ListBySender(ctx context.Context, id uuid.UUID) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (r *trackingOnlyRepo) ListByCourier(ctx context.Context, id uuid.UUID) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (r *trackingOnlyRepo) ListAll(ctx context.Context) ([]*domainShipment.Shipment, error) {
	return nil, nil
}

func (r *trackingOnlyRepo) AssignCourier(ctx context.Context, shipmentID, courierID uuid.UUID) error {
	return nil
}

func (r *trackingOnlyRepo) AdvanceStatus(ctx context.Context, shipmentID uuid.UUID, from, to domainShipment.ShipmentStatus, event *domainShipment.TrackingEvent) error {
	return nil
}

func (r *trackingOnlyRepo) AppendEvent(ctx context.Context, event *domainShipment.TrackingEvent) error {
	return nil
}

func trackingRouter(repo *trackingOnlyRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := shipmentUsecase.NewService(repo, nil)
	h := NewShipmentHandler(service)

	router := gin.New()
	v1 := router.Group("/api/v1")
	h.RegisterPublicRoutes(v1)
	return router
}

func TestTrackEndpoint(t *testing.T) {
	repo := &trackingOnlyRepo{
		shipment: &domainShipment.Shipment{
			ID:              uuid.New(),
			TrackingID:      "TRK12345678",
			ReceiverName:    "Jordan Smith",
			PickupAddress:   "7 Mill Road",
			DeliveryAddress: "42 Harbor Lane",
			WeightKg:        2.5,
			Status:          domainShipment.StatusInTransit,
			History: []domainShipment.TrackingEvent{
				{Status: "Package Booked", Location: "Origin Hub", Timestamp: time.Now()},
			},
		},
	}
	router := trackingRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tracking/TRK12345678", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)

	data, err := json.Marshal(body.Data)
	require.NoError(t, err)

	var tracking shipmentUsecase.TrackingResponse
	require.NoError(t, json.Unmarshal(data, &tracking))
	assert.Equal(t, "TRK12345678", tracking.TrackingID)
	assert.Equal(t, "in_transit", tracking.Status)
	require.Len(t, tracking.TrackingHistory, 1)
	assert.Equal(t, "Package Booked", tracking.TrackingHistory[0].Status)
}

func TestTrackEndpoint_NotFound(t *testing.T) {
	router := trackingRouter(&trackingOnlyRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tracking/TRK00000000", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "shipment not found", body.Error)
}
