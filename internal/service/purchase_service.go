package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quizvault/internal/core/domain"
	"quizvault/internal/core/ports"
	"quizvault/pkg/apperror"
	"quizvault/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var maxOrderRupees = decimal.NewFromInt(500000)

// PurchaseServiceImpl implements ports.PurchaseService. It only checks what
// the providers return; crediting is delegated to the wallet ledger.
type PurchaseServiceImpl struct {
	wallet     ports.WalletService
	play       ports.PlayPurchaseVerifier
	razorpay   ports.RazorpayGateway
	sigSvc     ports.SignatureService
	orderCache ports.OrderCache // nil = ownership not checked
	currency   string
	orderTTL   time.Duration
	log        zerolog.Logger
}

// NewPurchaseService creates a new PurchaseServiceImpl.
func NewPurchaseService(
	wallet ports.WalletService,
	play ports.PlayPurchaseVerifier,
	razorpay ports.RazorpayGateway,
	sigSvc ports.SignatureService,
	orderCache ports.OrderCache,
	currency string,
	orderTTL time.Duration,
	log zerolog.Logger,
) *PurchaseServiceImpl {
	return &PurchaseServiceImpl{
		wallet:     wallet,
		play:       play,
		razorpay:   razorpay,
		sigSvc:     sigSvc,
		orderCache: orderCache,
		currency:   currency,
		orderTTL:   orderTTL,
		log:        logger.For(log, logger.Purchase),
	}
}

// VerifyGooglePlayPurchase checks a product purchase with Google Play and
// redeems it under its Play order id.
func (s *PurchaseServiceImpl) VerifyGooglePlayPurchase(ctx context.Context, req ports.GooglePlayPurchaseRequest) (*ports.Balances, error) {
	productID := strings.TrimSpace(req.ProductID)
	token := strings.TrimSpace(req.PurchaseToken)
	if productID == "" || token == "" {
		return nil, apperror.Validation("productId and purchaseToken are required")
	}

	purchase, err := s.play.VerifyProductPurchase(ctx, productID, token)
	if err != nil {
		return nil, providerError(err)
	}
	if !purchase.IsPurchased() {
		return nil, apperror.ErrPurchaseNotValid(fmt.Sprintf("purchase state %d", purchase.PurchaseState))
	}

	clientOrderID := strings.TrimSpace(req.OrderID)
	if clientOrderID != "" && purchase.OrderID != "" && clientOrderID != purchase.OrderID {
		return nil, apperror.ErrPurchaseNotValid("order id does not match purchase")
	}

	txID := firstNonEmpty(purchase.OrderID, clientOrderID, token)
	balances, err := s.wallet.RedeemExternalPayment(ctx, ports.RedemptionRequest{
		UserID:        req.UserID,
		Provider:      domain.ProviderGooglePlay,
		TransactionID: txID,
		Reward:        req.GoldReward,
		Receipt:       token,
	})
	// A duplicate means the reward was granted earlier; the acknowledgement
	// that followed it may not have reached Google.
	if err == nil || apperror.HasCode(err, apperror.CodeDuplicateRedemption) {
		s.acknowledge(ctx, purchase, productID, token, txID)
	}
	return balances, err
}

// acknowledge is best effort. An unacknowledged purchase is retried on the
// next redemption attempt for the same token.
func (s *PurchaseServiceImpl) acknowledge(ctx context.Context, purchase *domain.PlayPurchase, productID, token, txID string) {
	if purchase.Acknowledged {
		return
	}
	if err := s.play.Acknowledge(ctx, productID, token); err != nil {
		s.log.Warn().Err(err).
			Str("product_id", productID).
			Str("transaction_id", txID).
			Msg("Play purchase acknowledgement failed")
	}
}

// CreateRazorpayOrder opens a Razorpay order for amountInRupees and remembers
// which user owns it.
func (s *PurchaseServiceImpl) CreateRazorpayOrder(ctx context.Context, userID uuid.UUID, amountInRupees decimal.Decimal) (*ports.RazorpayOrderResponse, error) {
	if !amountInRupees.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if amountInRupees.GreaterThan(maxOrderRupees) {
		return nil, apperror.Validation("Amount too large")
	}
	paise := amountInRupees.Shift(2)
	if !paise.IsInteger() {
		return nil, apperror.Validation("Amount must have at most two decimal places")
	}

	receipt := "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
	order, err := s.razorpay.CreateOrder(ctx, paise.IntPart(), s.currency, receipt)
	if err != nil {
		return nil, providerError(err)
	}
	order.UserID = userID

	if s.orderCache != nil {
		if err := s.orderCache.Save(ctx, order, s.orderTTL); err != nil {
			s.log.Warn().Err(err).Str("order_id", order.ID).Msg("failed to cache razorpay order")
		}
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("order_id", order.ID).
		Int64("amount_paise", order.AmountPaise).
		Msg("razorpay order created")

	return &ports.RazorpayOrderResponse{
		OrderID:     order.ID,
		AmountPaise: order.AmountPaise,
		Currency:    order.Currency,
		KeyID:       s.razorpay.KeyID(),
	}, nil
}

// VerifyRazorpayPayment checks the checkout signature and redeems the payment
// under its Razorpay payment id.
func (s *PurchaseServiceImpl) VerifyRazorpayPayment(ctx context.Context, req ports.RazorpayPaymentRequest) (*ports.Balances, error) {
	orderID := strings.TrimSpace(req.OrderID)
	paymentID := strings.TrimSpace(req.PaymentID)
	signature := strings.TrimSpace(req.Signature)
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, apperror.Validation("Missing payment details")
	}

	if !s.sigSvc.Verify(s.razorpay.KeySecret(), RazorpayCheckoutPayload(orderID, paymentID), signature) {
		s.log.Warn().
			Str("user_id", req.UserID.String()).
			Str("order_id", orderID).
			Msg("razorpay signature mismatch")
		return nil, apperror.ErrInvalidSignature()
	}

	if s.orderCache != nil {
		order, err := s.orderCache.Get(ctx, orderID)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("order_id", orderID).Msg("order ownership lookup failed")
		case order != nil && order.UserID != req.UserID:
			return nil, apperror.Validation("Order does not belong to this user")
		}
	}

	return s.wallet.RedeemExternalPayment(ctx, ports.RedemptionRequest{
		UserID:        req.UserID,
		Provider:      domain.ProviderRazorpay,
		TransactionID: paymentID,
		Reward:        req.GoldReward,
		Receipt:       orderID + "|" + paymentID + "|" + signature,
	})
}

// providerError keeps typed provider rejections and reports anything else as
// the provider being unreachable.
func providerError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.ErrProviderUnavailable(err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
