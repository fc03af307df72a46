package service

import (
	"context"
	"fmt"

	"wallet-api/internal/core/domain"
	"wallet-api/internal/core/ports"
)

// AccessGate decides whether a caller may act on a wallet.
type AccessGate struct {
	walletRepo ports.WalletRepository
}

// NewAccessGate creates an AccessGate over the wallet store.
func NewAccessGate(walletRepo ports.WalletRepository) *AccessGate {
	return &AccessGate{walletRepo: walletRepo}
}

// Authorize looks the wallet up by id alone and returns it if callerID owns it.
// A missing wallet and a foreign wallet both yield domain.ErrAccessDenied, so
// non-owners cannot probe for existence. Store faults are returned wrapped.
func (g *AccessGate) Authorize(ctx context.Context, callerID, walletID int64) (*domain.Wallet, error) {
	wallet, err := g.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("lookup wallet %d: %w", walletID, err)
	}
	if wallet == nil || !wallet.OwnedBy(callerID) {
		return nil, domain.ErrAccessDenied
	}
	return wallet, nil
}
