package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainPayment "courier-track/internal/domain/payment"
	domainShipment "courier-track/internal/domain/shipment"
	"courier-track/internal/logger"
	appErrors "courier-track/pkg/errors"
	"courier-track/pkg/utils"
)

// Service implements payment use cases. Non-COD payments are simulated:
// they complete immediately with a generated transaction ID. COD stays
// pending until settled offline.
type Service struct {
	paymentRepo  domainPayment.Repository
	shipmentRepo domainShipment.Repository
}

// NewService creates a new payment service
func NewService(paymentRepo domainPayment.Repository, shipmentRepo domainShipment.Repository) *Service {
	return &Service{
		paymentRepo:  paymentRepo,
		shipmentRepo: shipmentRepo,
	}
}

// Process registers the payment for a shipment. The amount is always
// the shipment's booking-time estimated cost.
func (s *Service) Process(ctx context.Context, shipmentID, requesterID uuid.UUID, req *ProcessPaymentRequest) (*PaymentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		if field, rule, ok := utils.FirstInvalidField(err); ok {
			return nil, appErrors.NewValidationError(field, rule)
		}
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	shipment, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if shipment.SenderID != requesterID {
		return nil, appErrors.ErrInsufficientPermissions
	}

	payment := &domainPayment.Payment{
		ShipmentID: shipment.ID,
		Amount:     shipment.EstimatedCost,
		Method:     req.Method,
		Status:     domainPayment.StatusPending,
		CreatedAt:  time.Now(),
	}

	if req.Method != domainShipment.PaymentMethodCOD {
		txnID, err := utils.GenerateTransactionID()
		if err != nil {
			return nil, err
		}
		now := time.Now()
		payment.Status = domainPayment.StatusCompleted
		payment.TransactionID = &txnID
		payment.PaidAt = &now
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info("Payment processed",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("method", payment.Method),
		zap.String("status", string(payment.Status)),
		zap.String("event", "payment_processed"),
	)

	return ToPaymentResponse(payment), nil
}

// Status returns the payment record for a shipment.
func (s *Service) Status(ctx context.Context, shipmentID, requesterID uuid.UUID, requesterRole string) (*PaymentResponse, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if shipment.SenderID != requesterID && requesterRole != "admin" {
		return nil, appErrors.ErrInsufficientPermissions
	}

	payment, err := s.paymentRepo.GetByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	return ToPaymentResponse(payment), nil
}
