package payment

import "errors"

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentAlreadyExists = errors.New("payment already processed for shipment")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
