package handler

import (
	"strconv"

	"wallet-api/internal/adapter/http/dto"
	"wallet-api/internal/adapter/http/middleware"
	"wallet-api/internal/core/ports"
	"wallet-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles the caller-scoped wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// List handles GET /wallets.
func (h *WalletHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	wallets, err := h.walletSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallets)
}

// Create handles POST /wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateWalletRequest
	if !bindJSON(c, &req, false) {
		return
	}

	wallet, err := h.walletSvc.Create(c.Request.Context(), userID, req.ToPort())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, strconv.FormatInt(wallet.ID, 10))
	response.Created(c, wallet)
}

// GetByID handles GET /wallets/:id. A wallet the caller does not own is written as null.
func (h *WalletHandler) GetByID(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	walletID, ok := pathID(c)
	if !ok {
		return
	}

	wallet, err := h.walletSvc.GetByID(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallet)
}

// EditByID handles PATCH /wallets/:id.
func (h *WalletHandler) EditByID(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	walletID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.EditWalletRequest
	if !bindJSON(c, &req, true) {
		return
	}

	wallet, err := h.walletSvc.EditByID(c.Request.Context(), userID, walletID, req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallet)
}

// DeleteByID handles DELETE /wallets/:id.
func (h *WalletHandler) DeleteByID(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	walletID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.walletSvc.DeleteByID(c.Request.Context(), userID, walletID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
