package dto

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := EditUserRequest{
		Email:     strPtr("  some@email.com  "),
		FirstName: strPtr(" Some "),
	}
	SanitizeStruct(&req)

	assert.Equal(t, "some@email.com", *req.Email)
	assert.Equal(t, "Some", *req.FirstName)
}

func TestSanitizeStruct_KeepsValueVerbatim(t *testing.T) {
	req := EditUserRequest{LastName: strPtr(" O'Brien & <Sons> ")}
	SanitizeStruct(&req)

	assert.Equal(t, "O'Brien & <Sons>", *req.LastName)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := EditUserRequest{LastName: strPtr(" Name ")}
	SanitizeStruct(&req)

	assert.Nil(t, req.Email)
	assert.Nil(t, req.FirstName)
	assert.Equal(t, "Name", *req.LastName)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Binding validation ---

func TestCreateWalletRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateWalletRequest
		wantMsg string
	}{
		{"valid", CreateWalletRequest{Type: "embedded", Address: "0x123", Blockchain: "btc"}, ""},
		{"missing address", CreateWalletRequest{Type: "embedded", Blockchain: "btc"}, "address is required"},
		{"all missing", CreateWalletRequest{}, "type is required; address is required; blockchain is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, ValidationMessage(err))
		})
	}
}

func TestAuthRequest_Validation(t *testing.T) {
	err := binding.Validator.ValidateStruct(&AuthRequest{Email: "not-an-email", Password: "123"})
	require.Error(t, err)
	assert.Equal(t, "email must be an email", ValidationMessage(err))

	err = binding.Validator.ValidateStruct(&AuthRequest{Email: "some@email.com"})
	require.Error(t, err)
	assert.Equal(t, "password is required", ValidationMessage(err))
}

func TestEditUserRequest_Validation(t *testing.T) {
	assert.NoError(t, binding.Validator.ValidateStruct(&EditUserRequest{}))
	assert.NoError(t, binding.Validator.ValidateStruct(&EditUserRequest{FirstName: strPtr("")}))

	err := binding.Validator.ValidateStruct(&EditUserRequest{Email: strPtr("nope")})
	require.Error(t, err)
	assert.Equal(t, "email must be an email", ValidationMessage(err))
}

func TestValidationMessage_DecodeErrors(t *testing.T) {
	decode := func(body string) error {
		var req EditWalletRequest
		return json.Unmarshal([]byte(body), &req)
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"wrong field type", decode(`{"type": 5}`), "type must be a string"},
		{"not an object", decode(`[1]`), "request body must be a JSON object"},
		{"syntax", decode(`{"type": `), "malformed JSON in request body"},
		{"truncated stream", io.ErrUnexpectedEOF, "malformed JSON in request body"},
		{"other", errors.New("boom"), "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			msg := ValidationMessage(tt.err)
			assert.Equal(t, tt.want, msg)
			assert.NotContains(t, msg, "Go struct")
		})
	}
}

func TestEditWalletRequest_Patch(t *testing.T) {
	req := EditWalletRequest{Type: strPtr("created"), Address: strPtr("")}
	patch := req.Patch()

	assert.Equal(t, "created", *patch.Type)
	assert.Equal(t, "", *patch.Address)
	assert.Nil(t, patch.Blockchain)
	assert.False(t, patch.IsEmpty())
}

func TestEditUserRequest_Patch(t *testing.T) {
	patch := EditUserRequest{Email: strPtr("someGood@email.com")}.Patch()

	assert.Equal(t, "someGood@email.com", *patch.Email)
	assert.Nil(t, patch.FirstName)
}

func TestCreateWalletRequest_ToPort(t *testing.T) {
	in := CreateWalletRequest{Type: "embedded", Address: "0x123", Blockchain: "btc"}
	out := in.ToPort()

	assert.Equal(t, "embedded", out.Type)
	assert.Equal(t, "0x123", out.Address)
	assert.Equal(t, "btc", out.Blockchain)
}
