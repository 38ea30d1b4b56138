package models

import (
	"time"

	"github.com/google/uuid"
)

// TicketModel represents the database model for support tickets
type TicketModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject     string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null"`
	Priority    string    `gorm:"type:varchar(20);not null;default:'medium'"`
	Status      string    `gorm:"type:varchar(20);not null;default:'open';index"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`

	User     *UserModel           `gorm:"foreignKey:UserID"`
	Messages []TicketMessageModel `gorm:"foreignKey:TicketID"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TicketMessageModel represents one message in a ticket thread
type TicketMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TicketID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}

// FeedbackModel represents the database model for shipment feedback
type FeedbackModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"type:integer;not null;check:rating >= 1 AND rating <= 5"`
	Comment    *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (FeedbackModel) TableName() string {
	return "feedback"
}
