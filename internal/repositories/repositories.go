// Package repositories contains the data access layer. Each repository is an
// interface with a GORM-backed implementation so the rest of the application
// never touches the database handle directly.
package repositories

import (
	"chirp/internal/models"
)

// storageErr wraps a failed statement in a StorageError, keeping nil errors nil.
func storageErr(op string, err error) error {
	if err != nil {
		return &models.StorageError{Op: op, Err: err}
	}
	return nil
}
