package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainShipment "courier-track/internal/domain/shipment"
	domainUser "courier-track/internal/domain/user"
	"courier-track/internal/logger"
	appErrors "courier-track/pkg/errors"
	"courier-track/pkg/utils"
)

const trackingIDAttempts = 5

const (
	bookingLocation    = "Origin Hub"
	bookingDescription = "Shipment has been booked"
)

// Service implements shipment use cases
type Service struct {
	shipmentRepo domainShipment.Repository
	userRepo     domainUser.Repository
}

// NewService creates a new shipment service
func NewService(shipmentRepo domainShipment.Repository, userRepo domainUser.Repository) *Service {
	return &Service{
		shipmentRepo: shipmentRepo,
		userRepo:     userRepo,
	}
}

// Create books a new shipment for the sender. The estimated cost is
// computed once here and never revised; the first history event is the
// booking event.
func (s *Service) Create(ctx context.Context, senderID uuid.UUID, req *CreateShipmentRequest) (*ShipmentResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	shipment := &domainShipment.Shipment{
		SenderID:           sender.ID,
		SenderUsername:     sender.Username,
		ReceiverName:       req.ReceiverName,
		ReceiverPhone:      req.ReceiverPhone,
		ReceiverAddress:    req.ReceiverAddress,
		PackageDescription: req.PackageDescription,
		WeightKg:           req.WeightKg,
		Dimensions:         req.Dimensions,
		PickupAddress:      req.PickupAddress,
		DeliveryAddress:    req.DeliveryAddress,
		EstimatedCost:      domainShipment.EstimateCost(req.WeightKg),
		PaymentMethod:      req.PaymentMethod,
		Status:             domainShipment.StatusBooked,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	created, err := s.createWithFreshTrackingID(ctx, shipment)
	if err != nil {
		return nil, err
	}

	logger.Info("Shipment booked",
		zap.String("shipment_id", created.ID.String()),
		zap.String("tracking_id", created.TrackingID),
		zap.String("sender", created.SenderUsername),
		zap.String("event", "shipment_booked"),
	)

	return ToShipmentResponse(created), nil
}

// createWithFreshTrackingID retries creation with a new random tracking
// ID when the unique index reports a collision.
func (s *Service) createWithFreshTrackingID(ctx context.Context, shipment *domainShipment.Shipment) (*domainShipment.Shipment, error) {
	for attempt := 0; attempt < trackingIDAttempts; attempt++ {
		trackingID, err := utils.GenerateTrackingID()
		if err != nil {
			return nil, err
		}
		shipment.TrackingID = trackingID

		shipment.History = []domainShipment.TrackingEvent{{
			Status:      StatusLabel(domainShipment.StatusBooked),
			Location:    bookingLocation,
			Description: bookingDescription,
			Timestamp:   time.Now(),
		}}

		err = s.shipmentRepo.Create(ctx, shipment)
		if err == nil {
			return s.shipmentRepo.GetByID(ctx, shipment.ID)
		}
		if !errors.Is(err, domainShipment.ErrTrackingIDTaken) {
			return nil, err
		}

		logger.Warn("Tracking ID collision, retrying",
			zap.String("tracking_id", trackingID),
			zap.Int("attempt", attempt+1),
		)
	}

	return nil, fmt.Errorf("failed to assign unique tracking id after %d attempts", trackingIDAttempts)
}

// GetByTrackingID serves the public tracking lookup.
func (s *Service) GetByTrackingID(ctx context.Context, trackingID string) (*TrackingResponse, error) {
	shipment, err := s.shipmentRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}

	return ToTrackingResponse(shipment), nil
}

// Get returns a shipment to its sender, assigned courier or an admin.
func (s *Service) Get(ctx context.Context, shipmentID, requesterID uuid.UUID, requesterRole string) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if !canAccess(shipment, requesterID, requesterRole) {
		return nil, appErrors.ErrInsufficientPermissions
	}

	return ToShipmentResponse(shipment), nil
}

// List returns shipments for the dashboard in creation order:
// customers see their own, couriers their assigned, admins all.
func (s *Service) List(ctx context.Context, requesterID uuid.UUID, requesterRole string) ([]*ShipmentResponse, error) {
	var (
		shipments []*domainShipment.Shipment
		err       error
	)

	switch requesterRole {
	case domainUser.RoleCustomer:
		shipments, err = s.shipmentRepo.ListBySender(ctx, requesterID)
	case domainUser.RoleCourier:
		shipments, err = s.shipmentRepo.ListByCourier(ctx, requesterID)
	case domainUser.RoleAdmin:
		shipments, err = s.shipmentRepo.ListAll(ctx)
	default:
		return nil, appErrors.ErrInvalidUserRole
	}
	if err != nil {
		return nil, err
	}

	out := make([]*ShipmentResponse, len(shipments))
	for i, sh := range shipments {
		out[i] = ToShipmentResponse(sh)
	}
	return out, nil
}

// AdvanceStatus moves a shipment to the requested status if it is the
// immediate successor of the current one, appending a history event.
// The repository executes the check-and-set atomically per shipment.
func (s *Service) AdvanceStatus(ctx context.Context, shipmentID, actorID uuid.UUID, actorRole string, req *AdvanceStatusRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		if field, rule, ok := utils.FirstInvalidField(err); ok {
			return nil, appErrors.NewValidationError(field, rule)
		}
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	requested := domainShipment.ShipmentStatus(req.Status)
	if !IsValidStatus(requested) {
		return nil, appErrors.NewAppError(
			"INVALID_STATUS",
			fmt.Sprintf("Unknown status: %s", req.Status),
			domainShipment.ErrInvalidStatus,
		)
	}

	shipment, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if !canAdvance(shipment, actorID, actorRole) {
		return nil, appErrors.ErrInsufficientPermissions
	}

	if err := ValidateStatusTransition(shipment.Status, requested); err != nil {
		return nil, err
	}

	event := &domainShipment.TrackingEvent{
		ShipmentID:  shipment.ID,
		Status:      StatusLabel(requested),
		Location:    req.Location,
		Description: req.Description,
		Timestamp:   time.Now(),
	}

	if err := s.shipmentRepo.AdvanceStatus(ctx, shipment.ID, shipment.Status, requested, event); err != nil {
		return nil, err
	}

	updated, err := s.shipmentRepo.GetByID(ctx, shipment.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("Shipment status advanced",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("tracking_id", shipment.TrackingID),
		zap.String("from", string(shipment.Status)),
		zap.String("to", string(requested)),
		zap.String("event", "shipment_status_advanced"),
	)

	return ToShipmentResponse(updated), nil
}

// AssignCourier attaches a courier account to a shipment. Admin only;
// the handler enforces the role, here we verify the target is a courier.
func (s *Service) AssignCourier(ctx context.Context, shipmentID uuid.UUID, req *AssignCourierRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		if field, rule, ok := utils.FirstInvalidField(err); ok {
			return nil, appErrors.NewValidationError(field, rule)
		}
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	courier, err := s.userRepo.GetByID(ctx, req.CourierID)
	if err != nil {
		return nil, err
	}
	if courier.Role != domainUser.RoleCourier {
		return nil, appErrors.NewAppError(
			"NOT_A_COURIER",
			fmt.Sprintf("User %s is not a courier", courier.Username),
			domainUser.ErrInvalidUserRole,
		)
	}

	if err := s.shipmentRepo.AssignCourier(ctx, shipmentID, courier.ID); err != nil {
		return nil, err
	}

	updated, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	logger.Info("Courier assigned",
		zap.String("shipment_id", shipmentID.String()),
		zap.String("courier_id", courier.ID.String()),
		zap.String("event", "courier_assigned"),
	)

	return ToShipmentResponse(updated), nil
}

func canAccess(sh *domainShipment.Shipment, requesterID uuid.UUID, role string) bool {
	switch role {
	case domainUser.RoleAdmin:
		return true
	case domainUser.RoleCourier:
		return sh.AssignedCourierID != nil && *sh.AssignedCourierID == requesterID
	default:
		return sh.SenderID == requesterID
	}
}

func canAdvance(sh *domainShipment.Shipment, actorID uuid.UUID, role string) bool {
	if role == domainUser.RoleAdmin {
		return true
	}
	if role != domainUser.RoleCourier {
		return false
	}
	return sh.AssignedCourierID != nil && *sh.AssignedCourierID == actorID
}
