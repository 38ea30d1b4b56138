package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainSupport "courier-track/internal/domain/support"
	"courier-track/internal/usecase/support"
	appErrors "courier-track/pkg/errors"
	"courier-track/pkg/utils"
)

type SupportHandler struct {
	service *support.Service
}

func NewSupportHandler(service *support.Service) *SupportHandler {
	return &SupportHandler{service: service}
}

func (h *SupportHandler) RegisterRoutes(router *gin.RouterGroup) {
	supportGroup := router.Group("/support")
	{
		supportGroup.POST("/tickets", h.CreateTicket)
		supportGroup.GET("/tickets", h.ListTickets)
		supportGroup.POST("/tickets/:ticket_id/messages", h.AddMessage)
		supportGroup.POST("/feedback", h.SubmitFeedback)
	}
}

func (h *SupportHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	supportGroup := router.Group("/support")
	{
		supportGroup.PATCH("/tickets/:ticket_id/status", h.UpdateTicketStatus)
	}
}

func (h *SupportHandler) CreateTicket(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req support.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Subject = utils.SanitizeString(req.Subject)
	req.Description = utils.SanitizeText(req.Description)

	response, err := h.service.CreateTicket(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Ticket created successfully", response)
}

func (h *SupportHandler) ListTickets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tickets, err := h.service.ListTickets(c.Request.Context(), userID, currentRole(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tickets retrieved successfully", tickets)
}

func (h *SupportHandler) AddMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ticketID, err := uuid.Parse(c.Param("ticket_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	var req support.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Message = utils.SanitizeText(req.Message)

	response, err := h.service.AddMessage(c.Request.Context(), ticketID, userID, currentRole(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Message added successfully", response)
}

func (h *SupportHandler) UpdateTicketStatus(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("ticket_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	var req support.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		if field, rule, ok := utils.FirstInvalidField(err); ok {
			respondWithError(c, appErrors.NewValidationError(field, rule))
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.service.UpdateTicketStatus(c.Request.Context(), ticketID, domainSupport.TicketStatus(req.Status))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", response)
}

func (h *SupportHandler) SubmitFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req support.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Comment != nil {
		sanitized := utils.SanitizeText(*req.Comment)
		req.Comment = &sanitized
	}

	response, err := h.service.SubmitFeedback(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Feedback submitted successfully", response)
}
