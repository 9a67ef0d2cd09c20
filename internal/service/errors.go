package service

import "errors"

var (
	ErrNotFound             = errors.New("record not found")
	ErrInvalidOrder         = errors.New("invalid order payload")
	ErrMissingTransactionID = errors.New("missing transaction id")
	ErrTransactionNotFound  = errors.New("transaction not found")
)
