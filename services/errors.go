package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyBill     = errors.New("bill must contain at least one item")
	ErrCategoryInUse = errors.New("category still has menu items")
	ErrInvalidLogin  = errors.New("invalid credentials")
)

// notFound maps gorm's record-not-found onto ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
