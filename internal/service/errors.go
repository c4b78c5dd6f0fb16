package service

import (
	"errors"

	"github.com/shivamraghav1010/Player/pkg/apperror"
	"gorm.io/gorm"
)

// translateNotFound converts gorm's record-not-found into the app-level
// sentinel so handlers can map it to a 404. Everything else passes through.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}
	return err
}
