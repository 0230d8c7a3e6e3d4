package service

import "errors"

var (
	ErrCourtNotFound   = errors.New("court not found")
	ErrCourtInactive   = errors.New("court is not active")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidWindow   = errors.New("window is not available for booking")
	ErrSlotUnavailable = errors.New("slot already booked")
	ErrWindowBooked    = errors.New("window has an active booking")

	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotEnded   = errors.New("booking has not ended yet")
	ErrBookingStarted    = errors.New("booking has already started")
	ErrBookingNotActive  = errors.New("booking is not active")
	ErrEmptySelection    = errors.New("no windows selected")
	ErrSelectionMismatch = errors.New("selected window not found in schedule")

	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchNotOpen     = errors.New("match is not open for requests")
	ErrMatchFull        = errors.New("match is already full")
	ErrOwnMatch         = errors.New("cannot request to join own match")
	ErrDuplicateRequest = errors.New("active join request already exists")
	ErrRequestNotFound  = errors.New("join request not found")
	ErrRequestDecided   = errors.New("join request already decided")

	ErrForbidden = errors.New("not allowed to perform this action")
)
