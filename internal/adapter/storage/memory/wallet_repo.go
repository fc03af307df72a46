// Package memory holds process-local repositories used by storage.driver=memory
// and by the end-to-end router tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"wallet-api/internal/core/domain"
)

// WalletRepo implements ports.WalletRepository over a map.
type WalletRepo struct {
	mu      sync.RWMutex
	nextID  int64
	wallets map[int64]domain.Wallet
	now     func() time.Time
}

// NewWalletRepo creates an empty WalletRepo.
func NewWalletRepo() *WalletRepo {
	return &WalletRepo{
		wallets: make(map[int64]domain.Wallet),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ListByOwner returns the owner's wallets in id order, or an empty slice.
func (r *WalletRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallets := []domain.Wallet{}
	for _, w := range r.wallets {
		if w.OwnerID == ownerID {
			wallets = append(wallets, w)
		}
	}
	slices.SortFunc(wallets, func(a, b domain.Wallet) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return wallets, nil
}

// Create assigns the next id and both timestamps, then stores a copy of w.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := r.now()
	w.ID = r.nextID
	w.CreatedAt = now
	w.UpdatedAt = now
	r.wallets[w.ID] = *w
	return nil
}

// GetByID returns a copy of the wallet, or nil if no wallet has that id.
func (r *WalletRepo) GetByID(ctx context.Context, id int64) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// GetByIDAndOwner returns the wallet only if it belongs to ownerID, nil otherwise.
func (r *WalletRepo) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wallets[id]
	if !ok || w.OwnerID != ownerID {
		return nil, nil
	}
	return &w, nil
}

// Update applies the non-nil patch fields and refreshes updated_at.
// A missing wallet returns nil, nil.
func (r *WalletRepo) Update(ctx context.Context, id int64, patch domain.WalletPatch) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&w)
	w.UpdatedAt = r.now()
	r.wallets[id] = w
	return &w, nil
}

// Delete removes the wallet and reports whether it existed.
func (r *WalletRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.wallets[id]; !ok {
		return false, nil
	}
	delete(r.wallets, id)
	return true, nil
}
