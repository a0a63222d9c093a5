package auctionerrors

import "errors"

// Store-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrDuplicateID     = errors.New("auction id already exists")
)

// Identity errors, raised only at the user store boundary
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrDuplicateUser      = errors.New("a user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// business logic errors
var (
	ErrInvalidInput = errors.New("invalid input")
)
