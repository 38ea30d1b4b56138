package support

import (
	"time"

	"github.com/google/uuid"

	domainSupport "courier-track/internal/domain/support"
)

type CreateTicketRequest struct {
	Subject     string `json:"subject" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,min=10,max=2000"`
	Priority    string `json:"priority" validate:"required,ticket_priority"`
}

type AddMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

type SubmitFeedbackRequest struct {
	ShipmentID uuid.UUID `json:"shipment_id" validate:"required"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Comment    *string   `json:"comment" validate:"omitempty,max=1000"`
}

type TicketMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketResponse struct {
	ID          uuid.UUID               `json:"id"`
	UserID      uuid.UUID               `json:"user_id"`
	Subject     string                  `json:"subject"`
	Description string                  `json:"description"`
	Priority    string                  `json:"priority"`
	Status      string                  `json:"status"`
	Messages    []TicketMessageResponse `json:"messages"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

type FeedbackResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	ShipmentID uuid.UUID `json:"shipment_id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToTicketResponse(t *domainSupport.Ticket) *TicketResponse {
	if t == nil {
		return nil
	}

	messages := make([]TicketMessageResponse, len(t.Messages))
	for i, m := range t.Messages {
		messages[i] = TicketMessageResponse{
			ID:        m.ID,
			SenderID:  m.SenderID,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		}
	}

	return &TicketResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Subject:     t.Subject,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      string(t.Status),
		Messages:    messages,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToFeedbackResponse(f *domainSupport.Feedback) *FeedbackResponse {
	if f == nil {
		return nil
	}
	return &FeedbackResponse{
		ID:         f.ID,
		UserID:     f.UserID,
		ShipmentID: f.ShipmentID,
		Rating:     f.Rating,
		Comment:    f.Comment,
		CreatedAt:  f.CreatedAt,
	}
}
