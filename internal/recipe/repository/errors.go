package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert recipes")
	ErrFailedToQuery  = errors.New("failed to query recipes")
	ErrFailedToPurge  = errors.New("failed to purge recipes")
	ErrFailedToUpdate = errors.New("failed to update ingredient")
)
