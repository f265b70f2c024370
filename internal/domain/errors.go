package domain

import "errors"

var (
	ErrInvalidRoute           = errors.New("no train available for this route")
	ErrRouteUnavailableOnDate = errors.New("no train available for this route on the selected date")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrDuplicateBooking       = errors.New("booking already exists")
)
