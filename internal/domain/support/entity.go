package support

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents the state of a support ticket
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// Ticket represents a support ticket entity
type Ticket struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Subject     string
	Description string
	Priority    string
	Status      TicketStatus
	Messages    []TicketMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TicketMessage is one message in a ticket thread
type TicketMessage struct {
	ID        uuid.UUID
	TicketID  uuid.UUID
	SenderID  uuid.UUID
	Message   string
	CreatedAt time.Time
}

// Feedback is a rating a user leaves for a shipment
type Feedback struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ShipmentID uuid.UUID
	Rating     int
	Comment    *string
	CreatedAt  time.Time
}
