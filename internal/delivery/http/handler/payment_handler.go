package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"courier-track/internal/usecase/payment"
	"courier-track/pkg/utils"
)

type PaymentHandler struct {
	service *payment.Service
}

func NewPaymentHandler(service *payment.Service) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	payments := router.Group("/payments")
	{
		payments.POST("/:shipment_id", h.Process)
		payments.GET("/:shipment_id", h.Status)
	}
}

func (h *PaymentHandler) Process(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	shipmentID, err := uuid.Parse(c.Param("shipment_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	var req payment.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.service.Process(c.Request.Context(), shipmentID, userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Payment processed successfully", response)
}

func (h *PaymentHandler) Status(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	shipmentID, err := uuid.Parse(c.Param("shipment_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	response, err := h.service.Status(c.Request.Context(), shipmentID, userID, currentRole(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", response)
}
