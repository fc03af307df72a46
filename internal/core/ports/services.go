package ports

import (
	"context"
	"time"

	"wallet-api/internal/core/domain"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID int64, email string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID int64
	Email  string
}

// --- Service Ports (Business Logic) ---

// WalletService is the ownership-scoped wallet CRUD.
type WalletService interface {
	List(ctx context.Context, callerID int64) ([]domain.Wallet, error)
	Create(ctx context.Context, callerID int64, req CreateWalletRequest) (*domain.Wallet, error)
	GetByID(ctx context.Context, callerID, walletID int64) (*domain.Wallet, error)
	EditByID(ctx context.Context, callerID, walletID int64, patch domain.WalletPatch) (*domain.Wallet, error)
	DeleteByID(ctx context.Context, callerID, walletID int64) error
}

// CreateWalletRequest holds validated input for wallet creation.
// The owner comes from the caller id, never from the payload.
type CreateWalletRequest struct {
	Type       string
	Address    string
	Blockchain string
}

// AuthService defines signup and signin.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (string, time.Time, error) // token, expiry, error
	Signin(ctx context.Context, email, password string) (string, time.Time, error)
}

// UserService defines profile operations on the caller's own account.
type UserService interface {
	GetMe(ctx context.Context, userID int64) (*domain.User, error)
	EditMe(ctx context.Context, userID int64, patch domain.UserPatch) (*domain.User, error)
}

// AuditService records audit entries without blocking the request.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
