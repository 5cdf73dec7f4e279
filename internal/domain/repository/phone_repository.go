// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"booking/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for phone persistence.
var (
	// ErrPhoneNotFound is returned when a phone is not found.
	ErrPhoneNotFound = errors.New("phone not found")
	// ErrDuplicatePhoneName is returned when another phone already uses the same name.
	ErrDuplicatePhoneName = errors.New("phone name already exists")
)

// PhoneRepository defines the interface for phone-related storage operations.
type PhoneRepository interface {
	// Save inserts the phone when its ID is zero, otherwise replaces the stored record.
	// The returned phone carries the store-assigned ID.
	Save(ctx context.Context, phone *entity.Phone) (*entity.Phone, error)

	// FindAll retrieves every stored phone.
	FindAll(ctx context.Context) ([]*entity.Phone, error)

	// FindByID retrieves a phone by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Phone, error)

	// FindByBookedBy retrieves the phones currently booked by a user.
	FindByBookedBy(ctx context.Context, userID int64) ([]*entity.Phone, error)

	// DeleteByID removes a phone. Deleting an unknown ID is not an error.
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByID reports whether a phone with the given ID is stored.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
