package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainPayment "courier-track/internal/domain/payment"
	domainShipment "courier-track/internal/domain/shipment"
	domainSupport "courier-track/internal/domain/support"
	domainUser "courier-track/internal/domain/user"
	"courier-track/internal/logger"
	"courier-track/internal/middleware"
	appErrors "courier-track/pkg/errors"
	"courier-track/pkg/utils"
)

// respondWithError maps domain errors to HTTP statuses. Anything not in
// the taxonomy is logged and reported as an internal error.
func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrUserAlreadyExists),
		errors.Is(err, domainUser.ErrUserAlreadyExists),
		errors.Is(err, appErrors.ErrPaymentAlreadyExists),
		errors.Is(err, domainPayment.ErrPaymentAlreadyExists):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrTokenInvalid),
		errors.Is(err, appErrors.ErrTokenExpired),
		errors.Is(err, appErrors.ErrTokenRevoked),
		errors.Is(err, domainUser.ErrTokenInvalid),
		errors.Is(err, domainUser.ErrTokenExpired),
		errors.Is(err, domainUser.ErrTokenRevoked),
		errors.Is(err, appErrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrUserInactive),
		errors.Is(err, domainUser.ErrUserInactive),
		errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, appErrors.ErrUserNotFound),
		errors.Is(err, domainUser.ErrUserNotFound),
		errors.Is(err, appErrors.ErrShipmentNotFound),
		errors.Is(err, domainShipment.ErrShipmentNotFound),
		errors.Is(err, appErrors.ErrPaymentNotFound),
		errors.Is(err, domainPayment.ErrPaymentNotFound),
		errors.Is(err, appErrors.ErrTicketNotFound),
		errors.Is(err, domainSupport.ErrTicketNotFound),
		errors.Is(err, domainSupport.ErrFeedbackNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrInvalidStatusTransition),
		errors.Is(err, domainShipment.ErrInvalidStatusTransition):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			switch appErr.Code {
			case "INVALID_TRANSITION", "TICKET_CLOSED":
				utils.ErrorResponse(c, http.StatusConflict, appErr.Message)
			default:
				utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			}
			return
		}

		requestID := middleware.GetRequestID(c)
		logger.Error("Internal server error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
