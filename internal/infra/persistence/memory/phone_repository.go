// Package memory contains an in-process implementation of the persistence layer.
// It is selected with `storage.driver: memory` and backs the service tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"booking/internal/domain/entity"
	"booking/internal/domain/repository"
)

// phoneRepository implements the repository.PhoneRepository interface.
type phoneRepository struct {
	mu     sync.RWMutex
	nextID int64
	phones map[int64]entity.Phone
}

// NewPhoneRepository is the constructor for phoneRepository.
func NewPhoneRepository() repository.PhoneRepository {
	return &phoneRepository{
		nextID: 1,
		phones: make(map[int64]entity.Phone),
	}
}

// Save inserts or replaces a phone, enforcing unique names.
func (repo *phoneRepository) Save(_ context.Context, phone *entity.Phone) (*entity.Phone, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for id, stored := range repo.phones {
		if stored.Name == phone.Name && id != phone.ID {
			return nil, repository.ErrDuplicatePhoneName
		}
	}

	stored := clonePhone(*phone)
	if !stored.IsPersisted() {
		stored.ID = repo.nextID
		repo.nextID++
	} else if stored.ID >= repo.nextID {
		repo.nextID = stored.ID + 1
	}
	repo.phones[stored.ID] = stored

	saved := clonePhone(stored)

	return &saved, nil
}

// FindAll retrieves every phone ordered by ID.
func (repo *phoneRepository) FindAll(_ context.Context) ([]*entity.Phone, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.collect(func(entity.Phone) bool { return true }), nil
}

// FindByID retrieves a phone by its ID.
func (repo *phoneRepository) FindByID(_ context.Context, id int64) (*entity.Phone, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored, ok := repo.phones[id]
	if !ok {
		return nil, repository.ErrPhoneNotFound
	}

	phone := clonePhone(stored)

	return &phone, nil
}

// FindByBookedBy retrieves the phones booked by a user ordered by ID.
func (repo *phoneRepository) FindByBookedBy(_ context.Context, userID int64) ([]*entity.Phone, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.collect(func(p entity.Phone) bool {
		return p.BookedBy != nil && *p.BookedBy == userID
	}), nil
}

// DeleteByID removes a phone; unknown IDs are ignored.
func (repo *phoneRepository) DeleteByID(_ context.Context, id int64) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.phones, id)

	return nil
}

// ExistsByID reports whether a phone with the given ID is stored.
func (repo *phoneRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	_, ok := repo.phones[id]

	return ok, nil
}

// collect must be called with the lock held.
func (repo *phoneRepository) collect(keep func(entity.Phone) bool) []*entity.Phone {
	phones := make([]*entity.Phone, 0, len(repo.phones))
	for _, stored := range repo.phones {
		if !keep(stored) {
			continue
		}
		phone := clonePhone(stored)
		phones = append(phones, &phone)
	}

	sort.Slice(phones, func(i, j int) bool { return phones[i].ID < phones[j].ID })

	return phones
}

// clonePhone copies the pointer fields so callers never share state with the store.
func clonePhone(p entity.Phone) entity.Phone {
	if p.BookedOn != nil {
		bookedOn := *p.BookedOn
		p.BookedOn = &bookedOn
	}
	if p.BookedBy != nil {
		bookedBy := *p.BookedBy
		p.BookedBy = &bookedBy
	}

	return p
}
