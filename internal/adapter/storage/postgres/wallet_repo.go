package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-api/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, owner_id, type, address, blockchain, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

func scanWallet(row pgx.Row, w *domain.Wallet) error {
	return row.Scan(
		&w.ID, &w.OwnerID, &w.Type, &w.Address,
		&w.Blockchain, &w.CreatedAt, &w.UpdatedAt,
	)
}

// ListByOwner returns every wallet owned by ownerID in id order.
func (r *WalletRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	wallets := []domain.Wallet{}
	for rows.Next() {
		var w domain.Wallet
		if err := scanWallet(rows, &w); err != nil {
			return nil, fmt.Errorf("scan wallet row: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet rows: %w", err)
	}
	return wallets, nil
}

// Create inserts a new wallet and fills in the generated id and timestamps.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (owner_id, type, address, blockchain)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, w.OwnerID, w.Type, w.Address, w.Blockchain).
		Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by id regardless of owner.
func (r *WalletRepo) GetByID(ctx context.Context, id int64) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	w := &domain.Wallet{}
	if err := scanWallet(r.pool.QueryRow(ctx, query, id), w); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// GetByIDAndOwner fetches a wallet only if ownerID owns it.
func (r *WalletRepo) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 AND owner_id = $2`

	w := &domain.Wallet{}
	if err := scanWallet(r.pool.QueryRow(ctx, query, id, ownerID), w); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id and owner: %w", err)
	}
	return w, nil
}

// Update overwrites the non-nil patch fields. NULL parameters keep the stored value.
func (r *WalletRepo) Update(ctx context.Context, id int64, patch domain.WalletPatch) (*domain.Wallet, error) {
	query := `UPDATE wallets SET
			type = COALESCE($1, type),
			address = COALESCE($2, address),
			blockchain = COALESCE($3, blockchain),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + walletColumns

	w := &domain.Wallet{}
	row := r.pool.QueryRow(ctx, query, patch.Type, patch.Address, patch.Blockchain, id)
	if err := scanWallet(row, w); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update wallet: %w", err)
	}
	return w, nil
}

// Delete removes the wallet row permanently.
func (r *WalletRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM wallets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete wallet: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
