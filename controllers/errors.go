package controllers

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrMenuNotFound     = errors.New("Menu not found")
	ErrDishNotFound     = errors.New("Dish not found")
	ErrTableNotFound    = errors.New("Table not found")
	ErrSessionNotFound  = errors.New("Session not found")
	ErrCartNotFound     = errors.New("Cart not found")
	ErrCartItemNotFound = errors.New("Cart item not found")
	ErrCartOrDishGone   = errors.New("Cart or dish not found")
	ErrOrderNotFound    = errors.New("Order not found")
	ErrOrderRejected    = errors.New("Cannot create order. Check if session exists and cart is not empty.")
)

// requireUUID validates that a path or body identifier is a well-formed
// hyphenated UUID before it reaches the services.
func requireUUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%s must be a valid UUID", field)
	}
	return nil
}
