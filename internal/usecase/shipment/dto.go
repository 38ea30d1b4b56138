package shipment

import (
	"time"

	"github.com/google/uuid"

	domainShipment "courier-track/internal/domain/shipment"
)

// Request DTOs
type CreateShipmentRequest struct {
	ReceiverName       string  `json:"receiver_name" validate:"required,min=2,max=100"`
	ReceiverPhone      string  `json:"receiver_phone" validate:"required,phone"`
	ReceiverAddress    string  `json:"receiver_address" validate:"required,min=5"`
	PackageDescription string  `json:"package_description" validate:"required,min=3,max=1000"`
	WeightKg           float64 `json:"weight_kg" validate:"required,min=0.1"`
	Dimensions         *string `json:"dimensions" validate:"omitempty,max=100"`
	PickupAddress      string  `json:"pickup_address" validate:"required,min=5"`
	DeliveryAddress    string  `json:"delivery_address" validate:"required,min=5"`
	PaymentMethod      string  `json:"payment_method" validate:"required,payment_method"`
}

type AdvanceStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	Location    string `json:"location" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type AssignCourierRequest struct {
	CourierID uuid.UUID `json:"courier_id" validate:"required"`
}

// Response DTOs
type TrackingEventResponse struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type ShipmentResponse struct {
	ID                 uuid.UUID               `json:"id"`
	TrackingID         string                  `json:"tracking_id"`
	SenderUsername     string                  `json:"sender_username"`
	AssignedCourierID  *uuid.UUID              `json:"assigned_courier_id,omitempty"`
	ReceiverName       string                  `json:"receiver_name"`
	ReceiverPhone      string                  `json:"receiver_phone"`
	ReceiverAddress    string                  `json:"receiver_address"`
	PackageDescription string                  `json:"package_description"`
	WeightKg           float64                 `json:"weight_kg"`
	Dimensions         *string                 `json:"dimensions,omitempty"`
	PickupAddress      string                  `json:"pickup_address"`
	DeliveryAddress    string                  `json:"delivery_address"`
	EstimatedCost      string                  `json:"estimated_cost"`
	PaymentMethod      string                  `json:"payment_method"`
	Status             string                  `json:"status"`
	TrackingHistory    []TrackingEventResponse `json:"tracking_history"`
	CreatedAt          time.Time               `json:"created_at"`
}

// TrackingResponse is the public view returned by the unauthenticated
// tracking lookup; it omits sender and payment details.
type TrackingResponse struct {
	TrackingID      string                  `json:"tracking_id"`
	Status          string                  `json:"status"`
	ReceiverName    string                  `json:"receiver_name"`
	PickupAddress   string                  `json:"pickup_address"`
	DeliveryAddress string                  `json:"delivery_address"`
	WeightKg        float64                 `json:"weight_kg"`
	TrackingHistory []TrackingEventResponse `json:"tracking_history"`
}

func toEventResponses(events []domainShipment.TrackingEvent) []TrackingEventResponse {
	out := make([]TrackingEventResponse, len(events))
	for i, e := range events {
		out[i] = TrackingEventResponse{
			Status:      e.Status,
			Location:    e.Location,
			Description: e.Description,
			Latitude:    e.Latitude,
			Longitude:   e.Longitude,
			Timestamp:   e.Timestamp,
		}
	}
	return out
}

func ToShipmentResponse(s *domainShipment.Shipment) *ShipmentResponse {
	if s == nil {
		return nil
	}
	return &ShipmentResponse{
		ID:                 s.ID,
		TrackingID:         s.TrackingID,
		SenderUsername:     s.SenderUsername,
		AssignedCourierID:  s.AssignedCourierID,
		ReceiverName:       s.ReceiverName,
		ReceiverPhone:      s.ReceiverPhone,
		ReceiverAddress:    s.ReceiverAddress,
		PackageDescription: s.PackageDescription,
		WeightKg:           s.WeightKg,
		Dimensions:         s.Dimensions,
		PickupAddress:      s.PickupAddress,
		DeliveryAddress:    s.DeliveryAddress,
		EstimatedCost:      s.EstimatedCost.StringFixed(2),
		PaymentMethod:      s.PaymentMethod,
		Status:             string(s.Status),
		TrackingHistory:    toEventResponses(s.History),
		CreatedAt:          s.CreatedAt,
	}
}

func ToTrackingResponse(s *domainShipment.Shipment) *TrackingResponse {
	if s == nil {
		return nil
	}
	return &TrackingResponse{
		TrackingID:      s.TrackingID,
		Status:          string(s.Status),
		ReceiverName:    s.ReceiverName,
		PickupAddress:   s.PickupAddress,
		DeliveryAddress: s.DeliveryAddress,
		WeightKg:        s.WeightKg,
		TrackingHistory: toEventResponses(s.History),
	}
}
