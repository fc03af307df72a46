package memory

import (
	"context"
	"sync"
	"testing"

	"wallet-api/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestWalletRepo_CreateAssignsIDsAndTimes(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()

	w1 := &domain.Wallet{OwnerID: 1, Type: "embedded", Address: "0x1", Blockchain: "btc"}
	w2 := &domain.Wallet{OwnerID: 1, Type: "embedded", Address: "0x2", Blockchain: "eth"}
	require.NoError(t, repo.Create(ctx, w1))
	require.NoError(t, repo.Create(ctx, w2))

	assert.Equal(t, int64(1), w1.ID)
	assert.Equal(t, int64(2), w2.ID)
	assert.False(t, w1.CreatedAt.IsZero())
	assert.Equal(t, w1.CreatedAt, w1.UpdatedAt)
}

func TestWalletRepo_ListByOwner(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()

	for _, owner := range []int64{1, 2, 1, 1} {
		require.NoError(t, repo.Create(ctx, &domain.Wallet{OwnerID: owner, Type: "t", Address: "a", Blockchain: "b"}))
	}

	mine, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, []int64{1, 3, 4}, []int64{mine[0].ID, mine[1].ID, mine[2].ID})

	none, err := repo.ListByOwner(ctx, 9)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestWalletRepo_Lookups(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()
	w := &domain.Wallet{OwnerID: 1, Type: "t", Address: "a", Blockchain: "b"}
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.OwnerID)

	got, err = repo.GetByIDAndOwner(ctx, w.ID, 2)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWalletRepo_ReturnsCopies(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()
	w := &domain.Wallet{OwnerID: 1, Type: "t", Address: "a", Blockchain: "b"}
	require.NoError(t, repo.Create(ctx, w))

	w.OwnerID = 2
	got, _ := repo.GetByID(ctx, w.ID)
	got.Address = "mutated"

	again, _ := repo.GetByID(ctx, w.ID)
	assert.Equal(t, int64(1), again.OwnerID)
	assert.Equal(t, "a", again.Address)
}

func TestWalletRepo_Update(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()
	w := &domain.Wallet{OwnerID: 1, Type: "embedded", Address: "0x123", Blockchain: "btc"}
	require.NoError(t, repo.Create(ctx, w))

	updated, err := repo.Update(ctx, w.ID, domain.WalletPatch{Type: strPtr("created")})
	require.NoError(t, err)
	assert.Equal(t, "created", updated.Type)
	assert.Equal(t, "0x123", updated.Address)
	assert.Equal(t, "btc", updated.Blockchain)
	assert.False(t, updated.UpdatedAt.Before(w.UpdatedAt))

	updated, err = repo.Update(ctx, w.ID, domain.WalletPatch{Address: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Address)

	gone, err := repo.Update(ctx, 99, domain.WalletPatch{})
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestWalletRepo_Delete(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()
	w := &domain.Wallet{OwnerID: 1, Type: "t", Address: "a", Blockchain: "b"}
	require.NoError(t, repo.Create(ctx, w))

	removed, err := repo.Delete(ctx, w.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	list, _ := repo.ListByOwner(ctx, 1)
	assert.Empty(t, list)
}

func TestWalletRepo_ConcurrentCreate(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &domain.Wallet{OwnerID: 1, Type: "t", Address: "a", Blockchain: "b"})
		}()
	}
	wg.Wait()

	list, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 50)
}

func TestUserRepo_UniqueEmail(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	u := &domain.User{Email: "some@email.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, u))
	assert.Equal(t, int64(1), u.ID)

	err := repo.Create(ctx, &domain.User{Email: "some@email.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	found, err := repo.GetByEmail(ctx, "some@email.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "h", found.PasswordHash)

	missing, err := repo.GetByEmail(ctx, "other@email.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_Update(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	a := &domain.User{Email: "a@email.com"}
	b := &domain.User{Email: "b@email.com"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	updated, err := repo.Update(ctx, a.ID, domain.UserPatch{FirstName: strPtr("SomeGoodName")})
	require.NoError(t, err)
	assert.Equal(t, "SomeGoodName", *updated.FirstName)
	assert.Nil(t, updated.LastName)
	assert.Equal(t, "a@email.com", updated.Email)

	// Re-submitting your own email is not a collision.
	_, err = repo.Update(ctx, a.ID, domain.UserPatch{Email: strPtr("a@email.com")})
	assert.NoError(t, err)

	_, err = repo.Update(ctx, a.ID, domain.UserPatch{Email: strPtr("b@email.com")})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	gone, err := repo.Update(ctx, 99, domain.UserPatch{})
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestAuditRepo(t *testing.T) {
	repo := NewAuditRepo()

	require.NoError(t, repo.Create(context.Background(), &domain.AuditLog{Action: domain.AuditActionSignup}))
	require.NoError(t, repo.Create(context.Background(), &domain.AuditLog{Action: domain.AuditActionCreateWallet}))

	entries := repo.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, domain.AuditActionSignup, entries[0].Action)
	assert.Equal(t, domain.AuditActionCreateWallet, entries[1].Action)
}
