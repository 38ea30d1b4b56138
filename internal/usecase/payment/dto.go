package payment

import (
	"time"

	"github.com/google/uuid"

	domainPayment "courier-track/internal/domain/payment"
)

type ProcessPaymentRequest struct {
	Method string `json:"method" validate:"required,payment_method"`
}

type PaymentResponse struct {
	ID            uuid.UUID  `json:"id"`
	ShipmentID    uuid.UUID  `json:"shipment_id"`
	Amount        string     `json:"amount"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToPaymentResponse(p *domainPayment.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:            p.ID,
		ShipmentID:    p.ShipmentID,
		Amount:        p.Amount.StringFixed(2),
		Method:        p.Method,
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}
