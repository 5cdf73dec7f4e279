// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "booking/internal/delivery/context"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/domain/service"
	"booking/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// phoneService implements the PhoneUsecase interface.
type phoneService struct {
	phoneRepo repository.PhoneRepository
	lookupSvc service.DeviceLookupService
	logger    *slog.Logger
}

// PhoneServiceParams holds dependencies for PhoneService, injected by Fx.
type PhoneServiceParams struct {
	fx.In

	PhoneRepo repository.PhoneRepository
	LookupSvc service.DeviceLookupService
	Logger    *slog.Logger
}

// NewPhoneService creates a new phone service instance
func NewPhoneService(params PhoneServiceParams) usecase.PhoneUsecase {
	return &phoneService{
		phoneRepo: params.PhoneRepo,
		lookupSvc: params.LookupSvc,
		logger:    params.Logger,
	}
}

func (s *phoneService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreatePhone stores a new phone and returns it with its resource location
func (s *phoneService) CreatePhone(ctx context.Context, input *usecase.PhoneInput) (*usecase.CreatedPhone, error) {
	s.log(ctx).Debug("Request to save phone", slog.String("name", input.Name))

	if input.ID != nil {
		return nil, domainerrors.ErrPhoneIDExists
	}

	saved, err := s.phoneRepo.Save(ctx, input.ToEntity(0))
	if err != nil {
		return nil, s.translateSaveError(err)
	}

	return &usecase.CreatedPhone{
		Phone:    saved,
		Location: usecase.PhoneLocation(saved.ID),
	}, nil
}

// UpdatePhone fully replaces an existing phone
func (s *phoneService) UpdatePhone(ctx context.Context, id int64, input *usecase.PhoneInput) (*entity.Phone, error) {
	s.log(ctx).Debug("Request to update phone", slog.Int64("id", id))

	if err := checkBodyID(id, input.ID); err != nil {
		return nil, err
	}

	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	saved, err := s.phoneRepo.Save(ctx, input.ToEntity(id))
	if err != nil {
		return nil, s.translateSaveError(err)
	}

	return saved, nil
}

// PartialUpdatePhone merges the non-nil patch fields into the stored phone
func (s *phoneService) PartialUpdatePhone(ctx context.Context, id int64, patch *usecase.PhonePatch) (*entity.Phone, error) {
	s.log(ctx).Debug("Request to partially update phone", slog.Int64("id", id))

	if err := checkBodyID(id, patch.ID); err != nil {
		return nil, err
	}

	existing, err := s.phoneRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPhoneNotFound) {
			return nil, domainerrors.ErrPhoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find phone by ID")
	}

	merged := usecase.MergePatch(*existing, patch)

	saved, err := s.phoneRepo.Save(ctx, &merged)
	if err != nil {
		return nil, s.translateSaveError(err)
	}

	return saved, nil
}

// ListPhones returns every phone with its device capabilities
func (s *phoneService) ListPhones(ctx context.Context) ([]*entity.PhoneDetails, error) {
	s.log(ctx).Debug("Request to get all phones")

	phones, err := s.phoneRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find phones")
	}

	return s.enrichAll(ctx, phones), nil
}

// ListPhonesBookedBy returns the phones booked by a user with their device capabilities
func (s *phoneService) ListPhonesBookedBy(ctx context.Context, userID int64) ([]*entity.PhoneDetails, error) {
	s.log(ctx).Debug("Request to get phones booked by user", slog.Int64("userID", userID))

	phones, err := s.phoneRepo.FindByBookedBy(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find phones by booking user")
	}

	return s.enrichAll(ctx, phones), nil
}

// GetPhone returns a single phone with its device capabilities
func (s *phoneService) GetPhone(ctx context.Context, id int64) (*entity.PhoneDetails, error) {
	s.log(ctx).Debug("Request to get phone", slog.Int64("id", id))

	phone, err := s.phoneRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPhoneNotFound) {
			return nil, domainerrors.ErrPhoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find phone by ID")
	}

	return s.enrich(ctx, phone), nil
}

// DeletePhone removes a phone; unknown IDs are ignored
func (s *phoneService) DeletePhone(ctx context.Context, id int64) error {
	s.log(ctx).Debug("Request to delete phone", slog.Int64("id", id))

	if err := s.phoneRepo.DeleteByID(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete phone")
	}

	return nil
}

// checkBodyID validates the ID carried in an update body against the path ID.
func checkBodyID(pathID int64, bodyID *int64) error {
	if bodyID == nil {
		return domainerrors.ErrPhoneIDNull
	}
	if *bodyID != pathID {
		return domainerrors.ErrPhoneIDInvalid
	}

	return nil
}

func (s *phoneService) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.phoneRepo.ExistsByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check phone existence")
	}
	if !exists {
		return domainerrors.ErrPhoneNotFound
	}

	return nil
}

func (s *phoneService) translateSaveError(err error) error {
	if errors.Is(err, repository.ErrDuplicatePhoneName) {
		return domainerrors.ErrPhoneNameTaken
	}

	return errors.Wrap(err, "failed to save phone")
}

func (s *phoneService) enrichAll(ctx context.Context, phones []*entity.Phone) []*entity.PhoneDetails {
	details := make([]*entity.PhoneDetails, 0, len(phones))
	for _, phone := range phones {
		details = append(details, s.enrich(ctx, phone))
	}

	return details
}

// enrich decorates a phone with its device capabilities. A failed lookup is
// replaced as a whole by the unavailable sentinel and never reaches the caller.
func (s *phoneService) enrich(ctx context.Context, phone *entity.Phone) *entity.PhoneDetails {
	specs, err := s.lookupSvc.Lookup(ctx, phone.Brand, phone.Device)
	if err != nil || specs == nil {
		s.log(ctx).Warn("Device lookup failed, using unavailable specs",
			slog.Int64("phoneID", phone.ID),
			slog.String("brand", phone.Brand),
			slog.String("device", phone.Device),
			slog.Any("error", err),
		)
		specs = entity.UnavailableSpecs()
	}

	return &entity.PhoneDetails{
		Phone:       *phone,
		DeviceSpecs: *specs,
	}
}
