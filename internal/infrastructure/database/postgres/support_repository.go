package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courier-track/internal/domain/support"
	"courier-track/internal/infrastructure/database/postgres/models"
)

// SupportRepository implements support.Repository
type SupportRepository struct {
	db *DB
}

// NewSupportRepository creates a new support repository
func NewSupportRepository(db *DB) support.Repository {
	return &SupportRepository{db: db}
}

func (r *SupportRepository) CreateTicket(ctx context.Context, t *support.Ticket) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()

	dbModel := toTicketModel(t)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	t.ID = dbModel.ID
	return nil
}

func (r *SupportRepository) GetTicketByID(ctx context.Context, ticketID uuid.UUID) (*support.Ticket, error) {
	var dbModel models.TicketModel
	err := r.db.DB.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("ticket_messages.created_at ASC")
		}).
		Where("id = ?", ticketID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, support.ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return toTicketEntity(&dbModel), nil
}

func (r *SupportRepository) ListTicketsByUser(ctx context.Context, userID uuid.UUID) ([]*support.Ticket, error) {
	return r.listTickets(ctx, "user_id = ?", userID)
}

func (r *SupportRepository) ListAllTickets(ctx context.Context) ([]*support.Ticket, error) {
	return r.listTickets(ctx, "", nil)
}

func (r *SupportRepository) listTickets(ctx context.Context, query string, arg interface{}) ([]*support.Ticket, error) {
	var dbModels []models.TicketModel

	db := r.db.DB.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("ticket_messages.created_at ASC")
		}).
		Order("created_at DESC")

	if query != "" {
		db = db.Where(query, arg)
	}

	if err := db.Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*support.Ticket, len(dbModels))
	for i := range dbModels {
		tickets[i] = toTicketEntity(&dbModels[i])
	}

	return tickets, nil
}

func (r *SupportRepository) UpdateTicketStatus(ctx context.Context, ticketID uuid.UUID, status support.TicketStatus) error {
	result := r.db.DB.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return support.ErrTicketNotFound
	}

	return nil
}

func (r *SupportRepository) AddMessage(ctx context.Context, m *support.TicketMessage) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now()

	dbModel := &models.TicketMessageModel{
		ID:        m.ID,
		TicketID:  m.TicketID,
		SenderID:  m.SenderID,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to add ticket message: %w", err)
	}

	return nil
}

func (r *SupportRepository) CreateFeedback(ctx context.Context, f *support.Feedback) error {
	f.ID = uuid.New()
	f.CreatedAt = time.Now()

	dbModel := &models.FeedbackModel{
		ID:         f.ID,
		UserID:     f.UserID,
		ShipmentID: f.ShipmentID,
		Rating:     f.Rating,
		Comment:    f.Comment,
		CreatedAt:  f.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

func (r *SupportRepository) ListFeedbackByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*support.Feedback, error) {
	var dbModels []models.FeedbackModel
	err := r.db.DB.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("created_at ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	out := make([]*support.Feedback, len(dbModels))
	for i := range dbModels {
		out[i] = &support.Feedback{
			ID:         dbModels[i].ID,
			UserID:     dbModels[i].UserID,
			ShipmentID: dbModels[i].ShipmentID,
			Rating:     dbModels[i].Rating,
			Comment:    dbModels[i].Comment,
			CreatedAt:  dbModels[i].CreatedAt,
		}
	}

	return out, nil
}

func toTicketModel(t *support.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID,
		UserID:      t.UserID,
		Subject:     t.Subject,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTicketEntity(m *models.TicketModel) *support.Ticket {
	messages := make([]support.TicketMessage, len(m.Messages))
	for i, msg := range m.Messages {
		messages[i] = support.TicketMessage{
			ID:        msg.ID,
			TicketID:  msg.TicketID,
			SenderID:  msg.SenderID,
			Message:   msg.Message,
			CreatedAt: msg.CreatedAt,
		}
	}

	return &support.Ticket{
		ID:          m.ID,
		UserID:      m.UserID,
		Subject:     m.Subject,
		Description: m.Description,
		Priority:    m.Priority,
		Status:      support.TicketStatus(m.Status),
		Messages:    messages,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
