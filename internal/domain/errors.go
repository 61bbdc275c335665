package domain

import "errors"

var (
	ErrInvalidEmail       = errors.New("valid email is required")
	ErrInvalidPackage     = errors.New("unknown package type")
	ErrInvalidPick        = errors.New("invalid pick data")
	ErrPickNotFound       = errors.New("pick not found")
	ErrPickResolved       = errors.New("pick result is already final")
	ErrSubscriberNotFound = errors.New("subscriber not found")

	ErrPaymentNotCompleted        = errors.New("payment not completed")
	ErrPaymentVerificationTimeout = errors.New("payment verification timed out")
)
