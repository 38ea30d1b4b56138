package support

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainShipment "courier-track/internal/domain/shipment"
	domainSupport "courier-track/internal/domain/support"
	domainUser "courier-track/internal/domain/user"
	"courier-track/internal/logger"
	appErrors "courier-track/pkg/errors"
	"courier-track/pkg/utils"
)

// Service implements support ticket and feedback use cases
type Service struct {
	supportRepo  domainSupport.Repository
	shipmentRepo domainShipment.Repository
}

// NewService creates a new support service
func NewService(supportRepo domainSupport.Repository, shipmentRepo domainShipment.Repository) *Service {
	return &Service{
		supportRepo:  supportRepo,
		shipmentRepo: shipmentRepo,
	}
}

func (s *Service) CreateTicket(ctx context.Context, userID uuid.UUID, req *CreateTicketRequest) (*TicketResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		if field, rule, ok := utils.FirstInvalidField(err); ok {
			return nil, appErrors.NewValidationError(field, rule)
		}
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	ticket := &domainSupport.Ticket{
		UserID:      userID,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      domainSupport.TicketOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.supportRepo.CreateTicket(ctx, ticket); err != nil {
		return nil, err
	}

	logger.Info("Support ticket created",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("priority", ticket.Priority),
		zap.String("event", "ticket_created"),
	)

	return ToTicketResponse(ticket), nil
}

// ListTickets returns the requester's tickets; admins see all.
func (s *Service) ListTickets(ctx context.Context, userID uuid.UUID, role string) ([]*TicketResponse, error) {
	var (
		tickets []*domainSupport.Ticket
		err     error
	)

	if role == domainUser.RoleAdmin {
		tickets, err = s.supportRepo.ListAllTickets(ctx)
	} else {
		tickets, err = s.supportRepo.ListTicketsByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*TicketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = ToTicketResponse(t)
	}
	return out, nil
}

// AddMessage appends a message to a ticket thread. Only the ticket
// owner or an admin may post; closed tickets reject new messages.
func (s *Service) AddMessage(ctx context.Context, ticketID, senderID uuid.UUID, role string, req *AddMessageRequest) (*TicketResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		if field, rule, ok := utils.FirstInvalidField(err); ok {
			return nil, appErrors.NewValidationError(field, rule)
		}
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	ticket, err := s.supportRepo.GetTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != senderID && role != domainUser.RoleAdmin {
		return nil, appErrors.ErrInsufficientPermissions
	}
	if ticket.Status == domainSupport.TicketClosed {
		return nil, appErrors.NewAppError("TICKET_CLOSED", "Cannot reply to a closed ticket", domainSupport.ErrTicketClosed)
	}

	message := &domainSupport.TicketMessage{
		TicketID:  ticket.ID,
		SenderID:  senderID,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.supportRepo.AddMessage(ctx, message); err != nil {
		return nil, err
	}

	return s.getTicket(ctx, ticketID)
}

// UpdateTicketStatus moves a ticket to a new workflow status, admin only.
func (s *Service) UpdateTicketStatus(ctx context.Context, ticketID uuid.UUID, status domainSupport.TicketStatus) (*TicketResponse, error) {
	if err := s.supportRepo.UpdateTicketStatus(ctx, ticketID, status); err != nil {
		return nil, err
	}

	return s.getTicket(ctx, ticketID)
}

// SubmitFeedback records a delivery rating for a shipment the requester
// owns.
func (s *Service) SubmitFeedback(ctx context.Context, userID uuid.UUID, req *SubmitFeedbackRequest) (*FeedbackResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		if field, rule, ok := utils.FirstInvalidField(err); ok {
			return nil, appErrors.NewValidationError(field, rule)
		}
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	shipment, err := s.shipmentRepo.GetByID(ctx, req.ShipmentID)
	if err != nil {
		return nil, err
	}
	if shipment.SenderID != userID {
		return nil, appErrors.ErrInsufficientPermissions
	}

	feedback := &domainSupport.Feedback{
		UserID:     userID,
		ShipmentID: shipment.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now(),
	}

	if err := s.supportRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, err
	}

	logger.Info("Feedback submitted",
		zap.String("shipment_id", shipment.ID.String()),
		zap.Int("rating", feedback.Rating),
		zap.String("event", "feedback_submitted"),
	)

	return ToFeedbackResponse(feedback), nil
}

func (s *Service) getTicket(ctx context.Context, ticketID uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.supportRepo.GetTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return ToTicketResponse(ticket), nil
}
