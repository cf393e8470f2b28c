package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrDayNotFound        = errors.New("day not found in itinerary")
	ErrDecodeFailed       = errors.New("share token decode failed")
	ErrGenerationFailed   = errors.New("itinerary generation failed")
	ErrPlannerUnavailable = errors.New("planner provider unavailable")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)
