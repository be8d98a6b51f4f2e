package handler

import (
	"quizvault/internal/adapter/http/dto"
	"quizvault/internal/adapter/http/middleware"
	"quizvault/internal/core/domain"
	"quizvault/internal/core/ports"
	"quizvault/pkg/apperror"
	"quizvault/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles the gold and crystal ledger endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetWallet handles GET /api/wallet.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	overview, err := h.walletSvc.GetOverview(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletResponse{
		Gold:          overview.Gold,
		Crystals:      overview.Crystals,
		UnlockedTests: nonNil(overview.UnlockedTestIDs),
		Transactions:  nonNilEntries(overview.RecentTransactions),
	})
}

// EarnGold handles POST /api/wallet/gold/add.
func (h *WalletHandler) EarnGold(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.EarnGoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	bal, err := h.walletSvc.EarnGold(c.Request.Context(), userID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{Success: true, Gold: bal.Gold, Crystals: bal.Crystals})
}

// Exchange handles POST /api/wallet/exchange.
func (h *WalletHandler) Exchange(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.walletSvc.ExchangeGoldForCrystals(c.Request.Context(), userID, req.GoldAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ExchangeResponse{
		BalanceResponse: dto.BalanceResponse{Success: true, Gold: result.Gold, Crystals: result.Crystals},
		CrystalsAdded:   result.CrystalsAdded,
		GoldDeducted:    result.GoldDeducted,
	})
}

// UnlockTest handles POST /api/wallet/tests/unlock.
func (h *WalletHandler) UnlockTest(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UnlockTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.walletSvc.UnlockTest(c.Request.Context(), userID, req.TestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, req.TestID)
	response.OK(c, dto.UnlockResponse{
		Success:         true,
		AlreadyUnlocked: result.AlreadyUnlocked,
		Crystals:        result.Crystals,
		UnlockedTests:   nonNil(result.UnlockedTestIDs),
	})
}

// UnlockStatus handles GET /api/wallet/tests/:testId/status.
func (h *WalletHandler) UnlockStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	status, err := h.walletSvc.CheckTestUnlocked(c.Request.Context(), userID, c.Param("testId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UnlockStatusResponse{
		Unlocked: status.Unlocked,
		Crystals: status.Crystals,
		Gold:     status.Gold,
	})
}

// Transactions handles GET /api/wallet/transactions.
func (h *WalletHandler) Transactions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	entries, err := h.walletSvc.GetTransactionHistory(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionsResponse{Transactions: nonNilEntries(entries)})
}

func nonNilEntries(entries []domain.LedgerEntry) []domain.LedgerEntry {
	if entries == nil {
		return []domain.LedgerEntry{}
	}
	return entries
}
