package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courier-track/internal/domain/payment"
	"courier-track/internal/infrastructure/database/postgres/models"
)

// PaymentRepository implements payment.Repository
type PaymentRepository struct {
	db *DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *DB) payment.Repository {
	return &PaymentRepository{db: db}
}

// Create inserts the payment. The unique index on shipment_id keeps
// payments one-per-shipment even under concurrent processing.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()

	dbModel := toPaymentModel(p)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "shipment_id") {
			return payment.ErrPaymentAlreadyExists
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}

	p.ID = dbModel.ID
	return nil
}

func (r *PaymentRepository) GetByShipmentID(ctx context.Context, shipmentID uuid.UUID) (*payment.Payment, error) {
	var dbModel models.PaymentModel
	err := r.db.DB.WithContext(ctx).Where("shipment_id = ?", shipmentID).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payment.ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return toPaymentEntity(&dbModel), nil
}

func toPaymentModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:            p.ID,
		ShipmentID:    p.ShipmentID,
		Amount:        p.Amount,
		Method:        p.Method,
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}

func toPaymentEntity(m *models.PaymentModel) *payment.Payment {
	return &payment.Payment{
		ID:            m.ID,
		ShipmentID:    m.ShipmentID,
		Amount:        m.Amount,
		Method:        m.Method,
		Status:        payment.PaymentStatus(m.Status),
		TransactionID: m.TransactionID,
		PaidAt:        m.PaidAt,
		CreatedAt:     m.CreatedAt,
	}
}
