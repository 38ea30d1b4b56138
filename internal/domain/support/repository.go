package support

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for support repository operations
type Repository interface {
	CreateTicket(ctx context.Context, ticket *Ticket) error
	GetTicketByID(ctx context.Context, ticketID uuid.UUID) (*Ticket, error)
	ListTicketsByUser(ctx context.Context, userID uuid.UUID) ([]*Ticket, error)
	ListAllTickets(ctx context.Context) ([]*Ticket, error)
	UpdateTicketStatus(ctx context.Context, ticketID uuid.UUID, status TicketStatus) error
	AddMessage(ctx context.Context, message *TicketMessage) error

	CreateFeedback(ctx context.Context, feedback *Feedback) error
	ListFeedbackByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*Feedback, error)
}
