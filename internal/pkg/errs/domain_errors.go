package errs

import "errors"

// Sentinel errors shared by the parking usecase layers
var (
	// Input errors
	ErrParkingTypeRequired = errors.New("parking type is required")

	// Allocation errors
	ErrNoAvailableSpot  = errors.New("no available parking spot")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrMissingEntryTime = errors.New("entry time is not set")

	// Persistence outcome errors
	ErrDatabase           = errors.New("database error")
	ErrTicketSaveFailed   = errors.New("failed to save ticket")
	ErrTicketUpdateFailed = errors.New("failed to update ticket")
	ErrSpotUpdateFailed   = errors.New("failed to update parking spot availability")

	// Pool administration errors
	ErrPoolNotEmpty    = errors.New("parking pool is not empty")
	ErrInvalidPoolSize = errors.New("invalid parking pool size")

	// Billing errors
	ErrFareCalculationFailed = errors.New("fare calculation failed")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
)
