package memory

import (
	"context"
	"sync"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.PasscodeStore = (*PasscodeRepository)(nil)

type PasscodeRepository struct {
	mu      sync.RWMutex
	byEmail map[string]model.Passcode
}

func NewPasscodeRepository() *PasscodeRepository {
	return &PasscodeRepository{
		byEmail: make(map[string]model.Passcode),
	}
}

func (r *PasscodeRepository) Upsert(_ context.Context, passcode model.Passcode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	passcode.Consumed = false
	r.byEmail[passcode.Email] = passcode
	return nil
}

func (r *PasscodeRepository) GetByEmail(_ context.Context, email string) (model.Passcode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	passcode, ok := r.byEmail[email]
	if !ok {
		return model.Passcode{}, model.ErrNotFound
	}
	return passcode, nil
}

func (r *PasscodeRepository) Consume(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	passcode, ok := r.byEmail[email]
	if !ok {
		return model.ErrNotFound
	}
	passcode.Consumed = true
	r.byEmail[email] = passcode
	return nil
}
