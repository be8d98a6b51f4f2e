package handler

import (
	"quizvault/internal/adapter/http/dto"
	"quizvault/internal/adapter/http/middleware"
	"quizvault/internal/core/ports"
	"quizvault/pkg/apperror"
	"quizvault/pkg/response"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles Google Play and Razorpay purchase endpoints.
type PurchaseHandler struct {
	purchaseSvc ports.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseSvc ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseSvc: purchaseSvc}
}

// VerifyGooglePlay handles POST /api/wallet/google-play/verify.
func (h *PurchaseHandler) VerifyGooglePlay(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.GooglePlayVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	bal, err := h.purchaseSvc.VerifyGooglePlayPurchase(c.Request.Context(), ports.GooglePlayPurchaseRequest{
		UserID:        userID,
		ProductID:     req.ProductID,
		PurchaseToken: req.PurchaseToken,
		OrderID:       req.OrderID,
		GoldReward:    int64(req.GoldReward),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, req.OrderID)
	response.OK(c, dto.BalanceResponse{Success: true, Gold: bal.Gold, Crystals: bal.Crystals})
}

// CreateRazorpayOrder handles POST /api/wallet/razorpay/create-order.
func (h *PurchaseHandler) CreateRazorpayOrder(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RazorpayCreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	order, err := h.purchaseSvc.CreateRazorpayOrder(c.Request.Context(), userID, req.AmountInRupees)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, order.OrderID)
	response.OK(c, dto.RazorpayOrderResponse{
		OrderID:  order.OrderID,
		Amount:   order.AmountPaise,
		Currency: order.Currency,
		KeyID:    order.KeyID,
	})
}

// VerifyRazorpayPayment handles POST /api/wallet/razorpay/verify-payment.
func (h *PurchaseHandler) VerifyRazorpayPayment(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RazorpayVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	bal, err := h.purchaseSvc.VerifyRazorpayPayment(c.Request.Context(), ports.RazorpayPaymentRequest{
		UserID:     userID,
		OrderID:    req.OrderID,
		PaymentID:  req.PaymentID,
		Signature:  req.Signature,
		GoldReward: int64(req.GoldReward),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, req.PaymentID)
	response.OK(c, dto.BalanceResponse{Success: true, Gold: bal.Gold, Crystals: bal.Crystals})
}
