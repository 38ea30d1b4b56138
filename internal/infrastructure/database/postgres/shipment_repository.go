package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courier-track/internal/domain/shipment"
	"courier-track/internal/infrastructure/database/postgres/models"
)

// ShipmentRepository implements shipment.Repository
type ShipmentRepository struct {
	db *DB
}

// NewShipmentRepository creates a new shipment repository
func NewShipmentRepository(db *DB) shipment.Repository {
	return &ShipmentRepository{db: db}
}

// Create inserts the shipment together with its booking event in one
// transaction. A duplicate tracking ID surfaces as ErrTrackingIDTaken
// so the caller can retry with a fresh one.
func (r *ShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	if s.Status == "" {
		s.Status = shipment.StatusBooked
	}

	dbModel := toShipmentModel(s)
	for i := range dbModel.History {
		dbModel.History[i].ID = uuid.New()
		dbModel.History[i].ShipmentID = dbModel.ID
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "tracking_id") {
			return shipment.ErrTrackingIDTaken
		}
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	s.ID = dbModel.ID
	s.CreatedAt = dbModel.CreatedAt
	s.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *ShipmentRepository) GetByID(ctx context.Context, shipmentID uuid.UUID) (*shipment.Shipment, error) {
	return r.getOne(ctx, "id = ?", shipmentID)
}

func (r *ShipmentRepository) GetByTrackingID(ctx context.Context, trackingID string) (*shipment.Shipment, error) {
	return r.getOne(ctx, "tracking_id = ?", trackingID)
}

func (r *ShipmentRepository) getOne(ctx context.Context, query string, arg interface{}) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("Sender").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("tracking_events.timestamp ASC")
		}).
		Where(query, arg).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return toShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) ListBySender(ctx context.Context, senderID uuid.UUID) ([]*shipment.Shipment, error) {
	return r.list(ctx, "sender_id = ?", senderID)
}

func (r *ShipmentRepository) ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*shipment.Shipment, error) {
	return r.list(ctx, "assigned_courier_id = ?", courierID)
}

func (r *ShipmentRepository) ListAll(ctx context.Context) ([]*shipment.Shipment, error) {
	return r.list(ctx, "", nil)
}

func (r *ShipmentRepository) list(ctx context.Context, query string, arg interface{}) ([]*shipment.Shipment, error) {
	var dbModels []models.ShipmentModel

	db := r.db.DB.WithContext(ctx).
		Preload("Sender").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("tracking_events.timestamp ASC")
		}).
		Order("created_at ASC")

	if query != "" {
		db = db.Where(query, arg)
	}

	if err := db.Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}

	shipments := make([]*shipment.Shipment, len(dbModels))
	for i := range dbModels {
		shipments[i] = toShipmentEntity(&dbModels[i])
	}

	return shipments, nil
}

func (r *ShipmentRepository) AssignCourier(ctx context.Context, shipmentID, courierID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Model(&models.ShipmentModel{}).
		Where("id = ?", shipmentID).
		Updates(map[string]interface{}{
			"assigned_courier_id": courierID,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to assign courier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

// AdvanceStatus performs the status change and history append in one
// transaction. The update is guarded by the expected current status, a
// compare-and-swap: if a concurrent caller advanced the shipment first,
// zero rows match and the transition is rejected rather than applied
// twice.
func (r *ShipmentRepository) AdvanceStatus(ctx context.Context, shipmentID uuid.UUID, from, to shipment.ShipmentStatus, event *shipment.TrackingEvent) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ShipmentModel{}).
			Where("id = ? AND status = ?", shipmentID, string(from)).
			Updates(map[string]interface{}{
				"status":     string(to),
				"updated_at": time.Now(),
			})

		if result.Error != nil {
			return fmt.Errorf("failed to update shipment status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.ShipmentModel{}).
				Where("id = ?", shipmentID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check shipment existence: %w", err)
			}
			if count == 0 {
				return shipment.ErrShipmentNotFound
			}
			// Shipment exists but its status moved under us.
			return shipment.ErrInvalidStatusTransition
		}

		eventModel := toTrackingEventModel(event)
		eventModel.ID = uuid.New()
		eventModel.ShipmentID = shipmentID
		if err := tx.Create(eventModel).Error; err != nil {
			return fmt.Errorf("failed to append tracking event: %w", err)
		}

		event.ID = eventModel.ID
		event.ShipmentID = shipmentID
		return nil
	})
}

// AppendEvent inserts a non-status history event (location scans).
func (r *ShipmentRepository) AppendEvent(ctx context.Context, event *shipment.TrackingEvent) error {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&models.ShipmentModel{}).
		Where("id = ?", event.ShipmentID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check shipment existence: %w", err)
	}
	if count == 0 {
		return shipment.ErrShipmentNotFound
	}

	eventModel := toTrackingEventModel(event)
	eventModel.ID = uuid.New()
	if err := r.db.DB.WithContext(ctx).Create(eventModel).Error; err != nil {
		return fmt.Errorf("failed to append tracking event: %w", err)
	}

	event.ID = eventModel.ID
	return nil
}

func toShipmentModel(s *shipment.Shipment) *models.ShipmentModel {
	history := make([]models.TrackingEventModel, len(s.History))
	for i, e := range s.History {
		history[i] = *toTrackingEventModel(&e)
	}

	return &models.ShipmentModel{
		ID:                 s.ID,
		TrackingID:         s.TrackingID,
		SenderID:           s.SenderID,
		AssignedCourierID:  s.AssignedCourierID,
		ReceiverName:       s.ReceiverName,
		ReceiverPhone:      s.ReceiverPhone,
		ReceiverAddress:    s.ReceiverAddress,
		PackageDescription: s.PackageDescription,
		WeightKg:           s.WeightKg,
		Dimensions:         s.Dimensions,
		PickupAddress:      s.PickupAddress,
		DeliveryAddress:    s.DeliveryAddress,
		EstimatedCost:      s.EstimatedCost,
		PaymentMethod:      s.PaymentMethod,
		Status:             string(s.Status),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		History:            history,
	}
}

func toShipmentEntity(m *models.ShipmentModel) *shipment.Shipment {
	history := make([]shipment.TrackingEvent, len(m.History))
	for i, e := range m.History {
		history[i] = shipment.TrackingEvent{
			ID:          e.ID,
			ShipmentID:  e.ShipmentID,
			Status:      e.Status,
			Location:    e.Location,
			Description: e.Description,
			Latitude:    e.Latitude,
			Longitude:   e.Longitude,
			Timestamp:   e.Timestamp,
		}
	}

	s := &shipment.Shipment{
		ID:                 m.ID,
		TrackingID:         m.TrackingID,
		SenderID:           m.SenderID,
		AssignedCourierID:  m.AssignedCourierID,
		ReceiverName:       m.ReceiverName,
		ReceiverPhone:      m.ReceiverPhone,
		ReceiverAddress:    m.ReceiverAddress,
		PackageDescription: m.PackageDescription,
		WeightKg:           m.WeightKg,
		Dimensions:         m.Dimensions,
		PickupAddress:      m.PickupAddress,
		DeliveryAddress:    m.DeliveryAddress,
		EstimatedCost:      m.EstimatedCost,
		PaymentMethod:      m.PaymentMethod,
		Status:             shipment.ShipmentStatus(m.Status),
		History:            history,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.Sender != nil {
		s.SenderUsername = m.Sender.Username
	}
	return s
}

func toTrackingEventModel(e *shipment.TrackingEvent) *models.TrackingEventModel {
	return &models.TrackingEventModel{
		ID:          e.ID,
		ShipmentID:  e.ShipmentID,
		Status:      e.Status,
		Location:    e.Location,
		Description: e.Description,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		Timestamp:   e.Timestamp,
	}
}
