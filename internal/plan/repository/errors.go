package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert plan")
	ErrFailedToGet    = errors.New("failed to get plan")
	ErrFailedToList   = errors.New("failed to list plans")
)
