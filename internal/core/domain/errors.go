package domain

import "errors"

var ErrFreezerNotFound = errors.New("freezer not found")
var ErrProductNotFound = errors.New("product not found")
var ErrUnauthorized = errors.New("unauthorized")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrInvalidAmount = errors.New("amount must be positive")
var ErrInvalidProductName = errors.New("invalid product name")
var ErrTooManyRequests = errors.New("too many requests")
