package services

import "errors"

var (
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidVariant     = errors.New("invalid product variant")
	ErrInvalidStatus      = errors.New("invalid order status")
)
