package domain

import (
	"errors"
	"time"
)

// ErrAccessDenied is the single denial kind of the access gate. A missing
// wallet and a wallet owned by someone else both produce it.
var ErrAccessDenied = errors.New("wallet access denied")

// Wallet is one blockchain address registered by a user.
type Wallet struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"owner_id"`
	Type       string    `json:"type"`
	Address    string    `json:"address"`
	Blockchain string    `json:"blockchain"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OwnedBy reports whether the wallet belongs to userID.
func (w *Wallet) OwnedBy(userID int64) bool {
	return w.OwnerID == userID
}

// WalletPatch is a partial edit. A nil field is left unchanged, a non-nil
// field overwrites the stored value, empty string included.
// The owner cannot be patched.
type WalletPatch struct {
	Type       *string
	Address    *string
	Blockchain *string
}

// IsEmpty reports whether the patch changes nothing.
func (p WalletPatch) IsEmpty() bool {
	return p.Type == nil && p.Address == nil && p.Blockchain == nil
}

// Apply writes the supplied fields onto w.
func (p WalletPatch) Apply(w *Wallet) {
	if p.Type != nil {
		w.Type = *p.Type
	}
	if p.Address != nil {
		w.Address = *p.Address
	}
	if p.Blockchain != nil {
		w.Blockchain = *p.Blockchain
	}
}
