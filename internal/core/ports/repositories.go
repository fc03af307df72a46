package ports

import (
	"context"

	"wallet-api/internal/core/domain"
)

// WalletRepository defines persistence operations for wallets.
// Lookups return nil, nil when no row matches.
type WalletRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Wallet, error)
	// Create inserts w and fills in its ID and timestamps.
	Create(ctx context.Context, w *domain.Wallet) error
	GetByID(ctx context.Context, id int64) (*domain.Wallet, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Wallet, error)
	// Update applies patch and refreshes updated_at. Returns nil, nil if the row is gone.
	Update(ctx context.Context, id int64, patch domain.WalletPatch) (*domain.Wallet, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserRepository defines persistence operations for users.
// Create and Update return domain.ErrEmailTaken on a duplicate email.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
