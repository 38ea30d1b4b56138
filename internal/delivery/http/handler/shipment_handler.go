package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"courier-track/internal/usecase/shipment"
	"courier-track/pkg/utils"
)

type ShipmentHandler struct {
	service *shipment.Service
}

func NewShipmentHandler(service *shipment.Service) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/shipments")
	{
		shipments.POST("", h.Create)
		shipments.GET("", h.List)
		shipments.GET("/:shipment_id", h.Get)
	}
}

func (h *ShipmentHandler) RegisterCourierRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/shipments")
	{
		shipments.PATCH("/:shipment_id/status", h.AdvanceStatus)
	}
}

func (h *ShipmentHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/shipments")
	{
		shipments.POST("/:shipment_id/assign", h.AssignCourier)
	}
}

// RegisterPublicRoutes exposes the unauthenticated tracking lookup.
func (h *ShipmentHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/tracking/:tracking_id", h.Track)
}

func (h *ShipmentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req shipment.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.ReceiverName = utils.SanitizeString(req.ReceiverName)
	req.ReceiverPhone = utils.SanitizePhone(req.ReceiverPhone)
	req.ReceiverAddress = utils.SanitizeText(req.ReceiverAddress)
	req.PackageDescription = utils.SanitizeText(req.PackageDescription)
	req.PickupAddress = utils.SanitizeText(req.PickupAddress)
	req.DeliveryAddress = utils.SanitizeText(req.DeliveryAddress)

	response, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Shipment booked successfully", response)
}

func (h *ShipmentHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	shipments, err := h.service.List(c.Request.Context(), userID, currentRole(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipments retrieved successfully", shipments)
}

func (h *ShipmentHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	shipmentID, err := uuid.Parse(c.Param("shipment_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	response, err := h.service.Get(c.Request.Context(), shipmentID, userID, currentRole(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment retrieved successfully", response)
}

func (h *ShipmentHandler) Track(c *gin.Context) {
	trackingID := utils.SanitizeString(c.Param("tracking_id"))

	response, err := h.service.GetByTrackingID(c.Request.Context(), trackingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tracking information retrieved", response)
}

func (h *ShipmentHandler) AdvanceStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	shipmentID, err := uuid.Parse(c.Param("shipment_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	var req shipment.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Location = utils.SanitizeString(req.Location)
	req.Description = utils.SanitizeText(req.Description)

	response, err := h.service.AdvanceStatus(c.Request.Context(), shipmentID, userID, currentRole(c), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment status updated", response)
}

func (h *ShipmentHandler) AssignCourier(c *gin.Context) {
	shipmentID, err := uuid.Parse(c.Param("shipment_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	var req shipment.AssignCourierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.service.AssignCourier(c.Request.Context(), shipmentID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Courier assigned successfully", response)
}
