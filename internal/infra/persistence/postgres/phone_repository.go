// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// phoneRepository implements the repository.PhoneRepository interface.
type phoneRepository struct {
	db *gorm.DB
}

// NewPhoneRepository is the constructor for phoneRepository.
func NewPhoneRepository(db *gorm.DB) repository.PhoneRepository {
	return &phoneRepository{
		db: db,
	}
}

// Save inserts a phone without an ID or replaces every column of an existing one.
func (repo *phoneRepository) Save(ctx context.Context, phone *entity.Phone) (*entity.Phone, error) {
	phoneM := fromPhoneDomain(phone)

	if err := repo.db.WithContext(ctx).Save(phoneM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicatePhoneName
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrPhoneSaveFailed.WrapMessage("missing required phone information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save phone")
	}

	return toPhoneDomain(phoneM), nil
}

// FindAll retrieves every phone ordered by ID.
func (repo *phoneRepository) FindAll(ctx context.Context) ([]*entity.Phone, error) {
	var phoneModels []*model.PhoneModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&phoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find phones")
	}

	return toPhoneDomainList(phoneModels), nil
}

// FindByID retrieves a phone by its ID.
func (repo *phoneRepository) FindByID(ctx context.Context, id int64) (*entity.Phone, error) {
	var phoneM model.PhoneModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&phoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find phone by ID")
	}

	return toPhoneDomain(&phoneM), nil
}

// FindByBookedBy retrieves the phones booked by a user ordered by ID.
func (repo *phoneRepository) FindByBookedBy(ctx context.Context, userID int64) ([]*entity.Phone, error) {
	var phoneModels []*model.PhoneModel

	if err := repo.db.WithContext(ctx).
		Where("booked_by_id = ?", userID).
		Order("id ASC").
		Find(&phoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find phones by booking user")
	}

	return toPhoneDomainList(phoneModels), nil
}

// DeleteByID removes a phone (hard delete). Zero affected rows is not an error.
func (repo *phoneRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PhoneModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete phone")
	}

	return nil
}

// ExistsByID reports whether a phone with the given ID is stored.
func (repo *phoneRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PhoneModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check phone existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toPhoneDomain converts a GORM PhoneModel to a domain Phone entity.
func toPhoneDomain(data *model.PhoneModel) *entity.Phone {
	if data == nil {
		return nil
	}

	return &entity.Phone{
		ID:       data.ID,
		Name:     data.Name,
		Brand:    data.Brand,
		Device:   data.Device,
		BookedOn: data.BookedOn,
		BookedBy: data.BookedByID,
	}
}

func toPhoneDomainList(data []*model.PhoneModel) []*entity.Phone {
	phones := make([]*entity.Phone, 0, len(data))
	for _, phoneM := range data {
		phones = append(phones, toPhoneDomain(phoneM))
	}

	return phones
}

// fromPhoneDomain converts a domain Phone entity to a GORM PhoneModel.
func fromPhoneDomain(data *entity.Phone) *model.PhoneModel {
	if data == nil {
		return nil
	}

	return &model.PhoneModel{
		ID:         data.ID,
		Name:       data.Name,
		Brand:      data.Brand,
		Device:     data.Device,
		BookedOn:   data.BookedOn,
		BookedByID: data.BookedBy,
	}
}
