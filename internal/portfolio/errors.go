package portfolio

import "errors"

var (
	ErrNotFound     = errors.New("portfolio not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrTooLarge     = errors.New("text too large")
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeTooLarge   = "payload_too_large"
	ErrorCodeNotFound   = "not_found"
	ErrorCodeInternal   = "internal"
)
