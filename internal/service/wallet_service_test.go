package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-api/internal/core/domain"
	"wallet-api/internal/core/ports"
	"wallet-api/internal/core/ports/mocks"
	"wallet-api/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	ownerID    int64 = 1
	strangerID int64 = 2
	walletID   int64 = 77
)

func setupWalletService(t *testing.T) (*WalletServiceImpl, *mocks.MockWalletRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWalletRepository(ctrl)
	return NewWalletService(repo, zerolog.Nop()), repo
}

func ownedWallet() *domain.Wallet {
	now := time.Now().UTC()
	return &domain.Wallet{
		ID:         walletID,
		OwnerID:    ownerID,
		Type:       "embedded",
		Address:    "0x123",
		Blockchain: "btc",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func strPtr(s string) *string { return &s }

func requireAppError(t *testing.T, err error, code string) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

// ==================== List ====================

func TestWalletService_List(t *testing.T) {
	svc, repo := setupWalletService(t)

	w := ownedWallet()
	repo.EXPECT().ListByOwner(gomock.Any(), ownerID).Return([]domain.Wallet{*w}, nil)

	wallets, err := svc.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, walletID, wallets[0].ID)
}

func TestWalletService_List_EmptyIsNotNil(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().ListByOwner(gomock.Any(), ownerID).Return(nil, nil)

	wallets, err := svc.List(context.Background(), ownerID)
	require.NoError(t, err)
	assert.NotNil(t, wallets)
	assert.Empty(t, wallets)
}

func TestWalletService_List_StoreFault(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().ListByOwner(gomock.Any(), ownerID).Return(nil, errors.New("db down"))

	_, err := svc.List(context.Background(), ownerID)
	requireAppError(t, err, "SYS_001")
}

// ==================== Create ====================

func TestWalletService_Create_BindsOwnerToCaller(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) error {
			assert.Equal(t, ownerID, w.OwnerID)
			assert.Equal(t, "embedded", w.Type)
			assert.Equal(t, "0x123", w.Address)
			assert.Equal(t, "btc", w.Blockchain)
			w.ID = walletID
			return nil
		},
	)

	w, err := svc.Create(context.Background(), ownerID, ports.CreateWalletRequest{
		Type: "embedded", Address: "0x123", Blockchain: "btc",
	})
	require.NoError(t, err)
	assert.Equal(t, walletID, w.ID)
	assert.Equal(t, ownerID, w.OwnerID)
}

func TestWalletService_Create_StoreFault(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	w, err := svc.Create(context.Background(), ownerID, ports.CreateWalletRequest{Type: "a", Address: "b", Blockchain: "c"})
	assert.Nil(t, w)
	requireAppError(t, err, "SYS_001")
}

// ==================== GetByID ====================

func TestWalletService_GetByID_Owner(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().GetByIDAndOwner(gomock.Any(), walletID, ownerID).Return(ownedWallet(), nil)

	w, err := svc.GetByID(context.Background(), ownerID, walletID)
	require.NoError(t, err)
	assert.Equal(t, walletID, w.ID)
}

func TestWalletService_GetByID_StrangerSeesNothing(t *testing.T) {
	svc, repo := setupWalletService(t)

	// The owner filter excludes the row, so the store reports no match.
	repo.EXPECT().GetByIDAndOwner(gomock.Any(), walletID, strangerID).Return(nil, nil)

	w, err := svc.GetByID(context.Background(), strangerID, walletID)
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestWalletService_GetByID_StoreFault(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().GetByIDAndOwner(gomock.Any(), walletID, ownerID).Return(nil, errors.New("conn reset"))

	w, err := svc.GetByID(context.Background(), ownerID, walletID)
	assert.Nil(t, w)
	requireAppError(t, err, "SYS_001")
}

// ==================== EditByID ====================

func TestWalletService_EditByID_SingleField(t *testing.T) {
	svc, repo := setupWalletService(t)

	patch := domain.WalletPatch{Type: strPtr("created")}
	updated := ownedWallet()
	patch.Apply(updated)

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), walletID).Return(ownedWallet(), nil),
		repo.EXPECT().Update(gomock.Any(), walletID, patch).Return(updated, nil),
	)

	w, err := svc.EditByID(context.Background(), ownerID, walletID, patch)
	require.NoError(t, err)
	assert.Equal(t, "created", w.Type)
	assert.Equal(t, "0x123", w.Address)
	assert.Equal(t, "btc", w.Blockchain)
}

func TestWalletService_EditByID_EmptyPatch(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().GetByID(gomock.Any(), walletID).Return(ownedWallet(), nil)
	repo.EXPECT().Update(gomock.Any(), walletID, domain.WalletPatch{}).Return(ownedWallet(), nil)

	w, err := svc.EditByID(context.Background(), ownerID, walletID, domain.WalletPatch{})
	require.NoError(t, err)
	assert.Equal(t, "embedded", w.Type)
	assert.Equal(t, "0x123", w.Address)
	assert.Equal(t, "btc", w.Blockchain)
	assert.Equal(t, ownerID, w.OwnerID)
}

func TestWalletService_EditByID_StrangerForbidden(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().GetByID(gomock.Any(), walletID).Return(ownedWallet(), nil)
	// No Update expected.

	w, err := svc.EditByID(context.Background(), strangerID, walletID, domain.WalletPatch{Type: strPtr("x")})
	assert.Nil(t, w)
	appErr := requireAppError(t, err, "WAL_001")
	assert.Equal(t, 403, appErr.HTTPStatus)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestWalletService_EditByID_MissingForbidden(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().GetByID(gomock.Any(), walletID).Return(nil, nil)

	_, err := svc.EditByID(context.Background(), ownerID, walletID, domain.WalletPatch{})
	requireAppError(t, err, "WAL_001")
}

func TestWalletService_EditByID_RowVanishedAfterGate(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().GetByID(gomock.Any(), walletID).Return(ownedWallet(), nil)
	repo.EXPECT().Update(gomock.Any(), walletID, gomock.Any()).Return(nil, nil)

	_, err := svc.EditByID(context.Background(), ownerID, walletID, domain.WalletPatch{})
	requireAppError(t, err, "WAL_001")
}

func TestWalletService_EditByID_GateStoreFault(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().GetByID(gomock.Any(), walletID).Return(nil, errors.New("timeout"))

	_, err := svc.EditByID(context.Background(), ownerID, walletID, domain.WalletPatch{})
	requireAppError(t, err, "SYS_001")
}

// ==================== DeleteByID ====================

func TestWalletService_DeleteByID_Owner(t *testing.T) {
	svc, repo := setupWalletService(t)

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), walletID).Return(ownedWallet(), nil),
		repo.EXPECT().Delete(gomock.Any(), walletID).Return(true, nil),
	)

	assert.NoError(t, svc.DeleteByID(context.Background(), ownerID, walletID))
}

func TestWalletService_DeleteByID_StrangerForbidden(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().GetByID(gomock.Any(), walletID).Return(ownedWallet(), nil)

	err := svc.DeleteByID(context.Background(), strangerID, walletID)
	requireAppError(t, err, "WAL_001")
}

func TestWalletService_DeleteByID_SecondDeleteForbidden(t *testing.T) {
	svc, repo := setupWalletService(t)

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), walletID).Return(ownedWallet(), nil),
		repo.EXPECT().Delete(gomock.Any(), walletID).Return(true, nil),
		repo.EXPECT().GetByID(gomock.Any(), walletID).Return(nil, nil),
	)

	require.NoError(t, svc.DeleteByID(context.Background(), ownerID, walletID))
	err := svc.DeleteByID(context.Background(), ownerID, walletID)
	requireAppError(t, err, "WAL_001")
}

func TestWalletService_DeleteByID_StoreFault(t *testing.T) {
	svc, repo := setupWalletService(t)

	repo.EXPECT().GetByID(gomock.Any(), walletID).Return(ownedWallet(), nil)
	repo.EXPECT().Delete(gomock.Any(), walletID).Return(false, errors.New("disk full"))

	err := svc.DeleteByID(context.Background(), ownerID, walletID)
	requireAppError(t, err, "SYS_001")
}
