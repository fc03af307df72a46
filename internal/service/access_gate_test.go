package service

import (
	"context"
	"errors"
	"testing"

	"wallet-api/internal/core/domain"
	"wallet-api/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccessGate_Authorize(t *testing.T) {
	owned := &domain.Wallet{ID: 10, OwnerID: 1, Type: "embedded", Address: "0x123", Blockchain: "btc"}
	storeErr := errors.New("connection reset")

	tests := []struct {
		name       string
		callerID   int64
		found      *domain.Wallet
		lookupErr  error
		wantWallet *domain.Wallet
		wantDenied bool
	}{
		{name: "owner admitted", callerID: 1, found: owned, wantWallet: owned},
		{name: "foreign wallet denied", callerID: 2, found: owned, wantDenied: true},
		{name: "missing wallet denied", callerID: 1, found: nil, wantDenied: true},
		{name: "store fault propagated", callerID: 1, lookupErr: storeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockWalletRepository(ctrl)
			gate := NewAccessGate(repo)

			// The lookup is by id alone; the owner check happens afterwards.
			repo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(tt.found, tt.lookupErr)

			w, err := gate.Authorize(context.Background(), tt.callerID, 10)

			switch {
			case tt.wantWallet != nil:
				require.NoError(t, err)
				assert.Same(t, tt.wantWallet, w)
			case tt.wantDenied:
				assert.Nil(t, w)
				assert.ErrorIs(t, err, domain.ErrAccessDenied)
			default:
				assert.Nil(t, w)
				assert.ErrorIs(t, err, storeErr)
				assert.NotErrorIs(t, err, domain.ErrAccessDenied)
			}
		})
	}
}
