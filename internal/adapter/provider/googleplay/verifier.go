// Package googleplay checks in-app product purchases against the Google Play
// Developer API.
package googleplay

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"quizvault/internal/core/domain"
	"quizvault/pkg/apperror"
	"quizvault/pkg/logger"

	"github.com/rs/zerolog"
	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Verifier implements ports.PlayPurchaseVerifier.
type Verifier struct {
	svc         *androidpublisher.Service
	packageName string
	log         zerolog.Logger
}

// NewVerifier creates a verifier for packageName. opts usually carry
// option.WithCredentialsFile with a service account key.
func NewVerifier(ctx context.Context, packageName string, log zerolog.Logger, opts ...option.ClientOption) (*Verifier, error) {
	if packageName == "" {
		return nil, errors.New("google play package name is required")
	}
	svc, err := androidpublisher.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create androidpublisher service: %w", err)
	}
	return &Verifier{svc: svc, packageName: packageName, log: logger.For(log, logger.Play)}, nil
}

// VerifyProductPurchase fetches the purchase for token. Tokens Google does
// not recognize are reported as PAY_002.
func (v *Verifier) VerifyProductPurchase(ctx context.Context, productID, purchaseToken string) (*domain.PlayPurchase, error) {
	p, err := v.svc.Purchases.Products.Get(v.packageName, productID, purchaseToken).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			switch gerr.Code {
			case http.StatusBadRequest, http.StatusNotFound, http.StatusGone:
				return nil, apperror.ErrPurchaseNotValid(gerr.Message)
			}
		}
		return nil, fmt.Errorf("get product purchase: %w", err)
	}

	purchase := &domain.PlayPurchase{
		OrderID:       p.OrderId,
		ProductID:     productID,
		PurchaseState: p.PurchaseState,
		Acknowledged:  p.AcknowledgementState == 1,
	}

	v.log.Debug().
		Str("product_id", productID).
		Str("order_id", p.OrderId).
		Int64("purchase_state", p.PurchaseState).
		Msg("Play purchase verified")

	return purchase, nil
}

// Acknowledge marks the purchase as delivered so Google does not refund it.
func (v *Verifier) Acknowledge(ctx context.Context, productID, purchaseToken string) error {
	err := v.svc.Purchases.Products.
		Acknowledge(v.packageName, productID, purchaseToken, &androidpublisher.ProductPurchasesAcknowledgeRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("acknowledge product purchase: %w", err)
	}
	return nil
}

// PassThroughVerifier accepts every token as purchased. It is used when
// google.verify_purchases is off, e.g. for local development.
type PassThroughVerifier struct{}

func (PassThroughVerifier) VerifyProductPurchase(_ context.Context, productID, _ string) (*domain.PlayPurchase, error) {
	return &domain.PlayPurchase{ProductID: productID, PurchaseState: domain.PlayPurchaseStatePurchased, Acknowledged: true}, nil
}

func (PassThroughVerifier) Acknowledge(context.Context, string, string) error { return nil }
