package db

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrForbidden           = errors.New("not allowed for this user")
	ErrInsufficientCredits = errors.New("insufficient balance")
	ErrAlreadyUnlocked     = errors.New("contact already unlocked")
	ErrRequestClosed       = errors.New("request is closed")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrAlreadyReviewed     = errors.New("booking already reviewed")
)
