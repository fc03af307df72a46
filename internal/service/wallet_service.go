package service

import (
	"context"
	"errors"
	"fmt"

	"wallet-api/internal/core/domain"
	"wallet-api/internal/core/ports"
	"wallet-api/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	gate       *AccessGate
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(walletRepo ports.WalletRepository, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		gate:       NewAccessGate(walletRepo),
		log:        log,
	}
}

// List returns every wallet owned by the caller.
func (s *WalletServiceImpl) List(ctx context.Context, callerID int64) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}
	if wallets == nil {
		wallets = []domain.Wallet{}
	}
	return wallets, nil
}

// Create persists a wallet owned by the caller.
func (s *WalletServiceImpl) Create(ctx context.Context, callerID int64, req ports.CreateWalletRequest) (*domain.Wallet, error) {
	wallet := &domain.Wallet{
		OwnerID:    callerID,
		Type:       req.Type,
		Address:    req.Address,
		Blockchain: req.Blockchain,
	}

	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().
		Int64("user_id", callerID).
		Int64("wallet_id", wallet.ID).
		Str("blockchain", wallet.Blockchain).
		Msg("wallet created")

	return wallet, nil
}

// GetByID filters on id and owner in one lookup. A miss, including a wallet owned
// by someone else, returns (nil, nil) rather than an error.
func (s *WalletServiceImpl) GetByID(ctx context.Context, callerID, walletID int64) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByIDAndOwner(ctx, walletID, callerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	return wallet, nil
}

// EditByID applies a partial edit after the access gate admits the caller.
func (s *WalletServiceImpl) EditByID(ctx context.Context, callerID, walletID int64, patch domain.WalletPatch) (*domain.Wallet, error) {
	if _, err := s.gate.Authorize(ctx, callerID, walletID); err != nil {
		return nil, s.gateError(err, callerID, walletID)
	}

	updated, err := s.walletRepo.Update(ctx, walletID, patch)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}
	// Deleted between the gate and the update.
	if updated == nil {
		return nil, apperror.ErrForbidden(domain.ErrAccessDenied)
	}

	s.log.Info().
		Int64("user_id", callerID).
		Int64("wallet_id", walletID).
		Bool("noop", patch.IsEmpty()).
		Msg("wallet edited")

	return updated, nil
}

// DeleteByID removes the wallet after the access gate admits the caller.
func (s *WalletServiceImpl) DeleteByID(ctx context.Context, callerID, walletID int64) error {
	if _, err := s.gate.Authorize(ctx, callerID, walletID); err != nil {
		return s.gateError(err, callerID, walletID)
	}

	deleted, err := s.walletRepo.Delete(ctx, walletID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("delete wallet: %w", err))
	}
	if !deleted {
		return apperror.ErrForbidden(domain.ErrAccessDenied)
	}

	s.log.Info().
		Int64("user_id", callerID).
		Int64("wallet_id", walletID).
		Msg("wallet deleted")

	return nil
}

func (s *WalletServiceImpl) gateError(err error, callerID, walletID int64) error {
	if errors.Is(err, domain.ErrAccessDenied) {
		s.log.Debug().
			Int64("user_id", callerID).
			Int64("wallet_id", walletID).
			Msg("wallet access denied")
		return apperror.ErrForbidden(err)
	}
	return apperror.InternalError(err)
}
