package dto

import (
	"wallet-api/internal/core/domain"
	"wallet-api/internal/core/ports"
)

// AuthRequest is the request body for signup and signin.
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=128"`
}

// TokenResponse is the response body for signup and signin.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // Unix timestamp
}

// EditUserRequest is a partial profile edit. Omitted fields stay unchanged.
type EditUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
}

// Patch converts the request into a domain patch.
func (r EditUserRequest) Patch() domain.UserPatch {
	return domain.UserPatch{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// CreateWalletRequest is the request body for wallet creation.
// Owner is never read from the body.
type CreateWalletRequest struct {
	Type       string `json:"type" binding:"required"`
	Address    string `json:"address" binding:"required"`
	Blockchain string `json:"blockchain" binding:"required"`
}

// ToPort converts the request into the service input.
func (r CreateWalletRequest) ToPort() ports.CreateWalletRequest {
	return ports.CreateWalletRequest{
		Type:       r.Type,
		Address:    r.Address,
		Blockchain: r.Blockchain,
	}
}

// EditWalletRequest is a partial wallet edit. A nil field (omitted or JSON null)
// leaves the stored value alone; an empty string overwrites it.
type EditWalletRequest struct {
	Type       *string `json:"type"`
	Address    *string `json:"address"`
	Blockchain *string `json:"blockchain"`
}

// Patch converts the request into a domain patch.
func (r EditWalletRequest) Patch() domain.WalletPatch {
	return domain.WalletPatch{
		Type:       r.Type,
		Address:    r.Address,
		Blockchain: r.Blockchain,
	}
}
