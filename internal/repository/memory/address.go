package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.AddressStore = (*AddressRepository)(nil)

type AddressRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]model.Address
	byUser map[uuid.UUID][]uuid.UUID
}

func NewAddressRepository() *AddressRepository {
	return &AddressRepository{
		byID:   make(map[uuid.UUID]model.Address),
		byUser: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *AddressRepository) Create(_ context.Context, address model.Address) (model.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[address.ID] = address
	r.byUser[address.UserID] = append(r.byUser[address.UserID], address.ID)
	return address, nil
}

func (r *AddressRepository) GetByUserID(_ context.Context, userID uuid.UUID) ([]model.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	addresses := make([]model.Address, 0, len(ids))
	for _, id := range ids {
		addresses = append(addresses, r.byID[id])
	}
	return addresses, nil
}

func (r *AddressRepository) GetByID(_ context.Context, id uuid.UUID) (model.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	address, ok := r.byID[id]
	if !ok {
		return model.Address{}, model.ErrNotFound
	}
	return address, nil
}

func (r *AddressRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	address, ok := r.byID[id]
	if !ok {
		return model.ErrNotFound
	}
	delete(r.byID, id)
	ids := r.byUser[address.UserID]
	for i, aid := range ids {
		if aid == id {
			r.byUser[address.UserID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}
