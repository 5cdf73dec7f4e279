package usecase

import (
	"context"
	"strconv"
	"time"

	"booking/internal/domain/entity"
)

// PhoneInput carries a full phone representation for create and replace operations.
// ID is a pointer so an omitted id can be told apart from a zero id.
type PhoneInput struct {
	ID       *int64
	Name     string
	Brand    string
	Device   string
	BookedOn *time.Time
	BookedBy *int64
}

// ToEntity builds the phone described by the input, using id as its identifier.
func (in *PhoneInput) ToEntity(id int64) *entity.Phone {
	return &entity.Phone{
		ID:       id,
		Name:     in.Name,
		Brand:    in.Brand,
		Device:   in.Device,
		BookedOn: in.BookedOn,
		BookedBy: in.BookedBy,
	}
}

// PhonePatch carries the fields of a partial update. Nil fields are left unchanged.
type PhonePatch struct {
	ID       *int64
	Name     *string
	Brand    *string
	Device   *string
	BookedOn *time.Time
}

// CreatedPhone is the result of a successful create.
type CreatedPhone struct {
	Phone    *entity.Phone
	Location string // Resource path of the new phone, e.g. /phones/1
}

// PhoneLocation returns the resource path of the phone with the given ID.
func PhoneLocation(id int64) string {
	return "/phones/" + strconv.FormatInt(id, 10)
}

// MergePatch returns a copy of existing where every non-nil patch field wins.
// The ID and the booking user are never taken from the patch.
func MergePatch(existing entity.Phone, patch *PhonePatch) entity.Phone {
	merged := existing
	if patch == nil {
		return merged
	}

	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Brand != nil {
		merged.Brand = *patch.Brand
	}
	if patch.Device != nil {
		merged.Device = *patch.Device
	}
	if patch.BookedOn != nil {
		bookedOn := *patch.BookedOn
		merged.BookedOn = &bookedOn
	}

	return merged
}

// PhoneUsecase defines the interface for phone booking use cases
type PhoneUsecase interface {
	// CreatePhone stores a new phone. Fails if the input already carries an ID.
	CreatePhone(ctx context.Context, input *PhoneInput) (*CreatedPhone, error)

	// UpdatePhone replaces the phone identified by id with the input.
	UpdatePhone(ctx context.Context, id int64, input *PhoneInput) (*entity.Phone, error)

	// PartialUpdatePhone overwrites only the fields present in the patch.
	PartialUpdatePhone(ctx context.Context, id int64, patch *PhonePatch) (*entity.Phone, error)

	// ListPhones returns every phone decorated with its device capabilities.
	ListPhones(ctx context.Context) ([]*entity.PhoneDetails, error)

	// ListPhonesBookedBy returns the phones booked by a user, decorated with device capabilities.
	ListPhonesBookedBy(ctx context.Context, userID int64) ([]*entity.PhoneDetails, error)

	// GetPhone returns one phone decorated with its device capabilities.
	GetPhone(ctx context.Context, id int64) (*entity.PhoneDetails, error)

	// DeletePhone removes a phone. Deleting an unknown phone succeeds.
	DeletePhone(ctx context.Context, id int64) error
}
