package support

import "errors"

var (
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrTicketClosed     = errors.New("ticket is closed")
	ErrFeedbackNotFound = errors.New("feedback not found")
)
