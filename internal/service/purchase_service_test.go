package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizvault/internal/core/domain"
	"quizvault/internal/core/ports"
	"quizvault/internal/core/ports/mocks"
	"quizvault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type purchaseTestDeps struct {
	svc        *PurchaseServiceImpl
	wallet     *mocks.MockWalletService
	play       *mocks.MockPlayPurchaseVerifier
	razorpay   *mocks.MockRazorpayGateway
	orderCache *mocks.MockOrderCache
}

func setupPurchaseService(t *testing.T) *purchaseTestDeps {
	ctrl := gomock.NewController(t)
	d := &purchaseTestDeps{
		wallet:     mocks.NewMockWalletService(ctrl),
		play:       mocks.NewMockPlayPurchaseVerifier(ctrl),
		razorpay:   mocks.NewMockRazorpayGateway(ctrl),
		orderCache: mocks.NewMockOrderCache(ctrl),
	}
	d.svc = NewPurchaseService(
		d.wallet, d.play, d.razorpay, NewRazorpaySignatureService(),
		d.orderCache, "INR", time.Hour, newTestLogger(),
	)
	return d
}

// ==================== Google Play ====================

func TestPurchaseService_GooglePlay_RedeemsUnderOrderID(t *testing.T) {
	d := setupPurchaseService(t)
	ctx := context.Background()
	userID := uuid.New()

	d.play.EXPECT().VerifyProductPurchase(ctx, "gold_pack_50", "tok-1").
		Return(&domain.PlayPurchase{OrderID: "GPA.111", PurchaseState: domain.PlayPurchaseStatePurchased}, nil)
	d.wallet.EXPECT().RedeemExternalPayment(ctx, ports.RedemptionRequest{
		UserID:        userID,
		Provider:      domain.ProviderGooglePlay,
		TransactionID: "GPA.111",
		Reward:        50,
		Receipt:       "tok-1",
	}).Return(&ports.Balances{Gold: 50}, nil)
	d.play.EXPECT().Acknowledge(ctx, "gold_pack_50", "tok-1").Return(nil)

	bal, err := d.svc.VerifyGooglePlayPurchase(ctx, ports.GooglePlayPurchaseRequest{
		UserID: userID, ProductID: "gold_pack_50", PurchaseToken: "tok-1", OrderID: "GPA.111", GoldReward: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), bal.Gold)
}

func TestPurchaseService_GooglePlay_FallsBackToClientOrderID(t *testing.T) {
	d := setupPurchaseService(t)
	ctx := context.Background()

	d.play.EXPECT().VerifyProductPurchase(ctx, "p", "tok").Return(&domain.PlayPurchase{}, nil)
	d.wallet.EXPECT().RedeemExternalPayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.RedemptionRequest) (*ports.Balances, error) {
			assert.Equal(t, "GPA.222", req.TransactionID)
			return &ports.Balances{}, nil
		},
	)
	d.play.EXPECT().Acknowledge(ctx, "p", "tok").Return(nil)

	_, err := d.svc.VerifyGooglePlayPurchase(ctx, ports.GooglePlayPurchaseRequest{
		UserID: uuid.New(), ProductID: "p", PurchaseToken: "tok", OrderID: "GPA.222",
	})
	require.NoError(t, err)
}

func TestPurchaseService_GooglePlay_SkipsAcknowledgedPurchase(t *testing.T) {
	d := setupPurchaseService(t)
	ctx := context.Background()

	d.play.EXPECT().VerifyProductPurchase(ctx, "p", "tok").
		Return(&domain.PlayPurchase{OrderID: "GPA.3", Acknowledged: true}, nil)
	d.wallet.EXPECT().RedeemExternalPayment(ctx, gomock.Any()).Return(&ports.Balances{Gold: 10}, nil)
	d.play.EXPECT().Acknowledge(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := d.svc.VerifyGooglePlayPurchase(ctx, ports.GooglePlayPurchaseRequest{
		UserID: uuid.New(), ProductID: "p", PurchaseToken: "tok", GoldReward: 10,
	})
	require.NoError(t, err)
}

func TestPurchaseService_GooglePlay_AcknowledgeFailureKeepsReward(t *testing.T) {
	d := setupPurchaseService(t)
	ctx := context.Background()

	d.play.EXPECT().VerifyProductPurchase(ctx, "p", "tok").Return(&domain.PlayPurchase{OrderID: "GPA.4"}, nil)
	d.wallet.EXPECT().RedeemExternalPayment(ctx, gomock.Any()).Return(&ports.Balances{Gold: 10}, nil)
	d.play.EXPECT().Acknowledge(ctx, "p", "tok").Return(errors.New("googleapi: 503"))

	bal, err := d.svc.VerifyGooglePlayPurchase(ctx, ports.GooglePlayPurchaseRequest{
		UserID: uuid.New(), ProductID: "p", PurchaseToken: "tok", GoldReward: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), bal.Gold)
}

func TestPurchaseService_GooglePlay_DuplicateRetriesAcknowledge(t *testing.T) {
	d := setupPurchaseService(t)
	ctx := context.Background()

	d.play.EXPECT().VerifyProductPurchase(ctx, "p", "tok").Return(&domain.PlayPurchase{OrderID: "GPA.5"}, nil)
	d.wallet.EXPECT().RedeemExternalPayment(ctx, gomock.Any()).Return(nil, apperror.ErrDuplicateRedemption())
	d.play.EXPECT().Acknowledge(ctx, "p", "tok").Return(nil)

	bal, err := d.svc.VerifyGooglePlayPurchase(ctx, ports.GooglePlayPurchaseRequest{
		UserID: uuid.New(), ProductID: "p", PurchaseToken: "tok", GoldReward: 10,
	})
	assert.Nil(t, bal)
	assertAppError(t, err, apperror.CodeDuplicateRedemption)
}

func TestPurchaseService_GooglePlay_FailedRedeemSkipsAcknowledge(t *testing.T) {
	d := setupPurchaseService(t)
	ctx := context.Background()

	d.play.EXPECT().VerifyProductPurchase(ctx, "p", "tok").Return(&domain.PlayPurchase{OrderID: "GPA.6"}, nil)
	d.wallet.EXPECT().RedeemExternalPayment(ctx, gomock.Any()).Return(nil, apperror.ErrStoreUnavailable(errors.New("down")))
	d.play.EXPECT().Acknowledge(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := d.svc.VerifyGooglePlayPurchase(ctx, ports.GooglePlayPurchaseRequest{
		UserID: uuid.New(), ProductID: "p", PurchaseToken: "tok",
	})
	require.Error(t, err)
}

func TestPurchaseService_GooglePlay_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		req      ports.GooglePlayPurchaseRequest
		purchase *domain.PlayPurchase
		verifyEr error
		code     string
	}{
		{
			name: "missing token",
			req:  ports.GooglePlayPurchaseRequest{ProductID: "p"},
			code: apperror.CodeInvalidInput,
		},
		{
			name:     "cancelled purchase",
			req:      ports.GooglePlayPurchaseRequest{ProductID: "p", PurchaseToken: "t"},
			purchase: &domain.PlayPurchase{OrderID: "GPA.1", PurchaseState: domain.PlayPurchaseStateCanceled},
			code:     "PAY_002",
		},
		{
			name:     "order id mismatch",
			req:      ports.GooglePlayPurchaseRequest{ProductID: "p", PurchaseToken: "t", OrderID: "GPA.other"},
			purchase: &domain.PlayPurchase{OrderID: "GPA.1"},
			code:     "PAY_002",
		},
		{
			name:     "provider down",
			req:      ports.GooglePlayPurchaseRequest{ProductID: "p", PurchaseToken: "t"},
			verifyEr: errors.New("googleapi: 503"),
			code:     "PAY_003",
		},
		{
			name:     "provider rejects token",
			req:      ports.GooglePlayPurchaseRequest{ProductID: "p", PurchaseToken: "t"},
			verifyEr: apperror.ErrPurchaseNotValid("unknown purchase token"),
			code:     "PAY_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupPurchaseService(t)
			if tt.purchase != nil || tt.verifyEr != nil {
				d.play.EXPECT().VerifyProductPurchase(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.purchase, tt.verifyEr)
			}

			bal, err := d.svc.VerifyGooglePlayPurchase(context.Background(), tt.req)
			assert.Nil(t, bal)
			assertAppError(t, err, tt.code)
		})
	}
}

// ==================== Razorpay orders ====================

func TestPurchaseService_CreateRazorpayOrder(t *testing.T) {
	d := setupPurchaseService(t)
	ctx := context.Background()
	userID := uuid.New()

	d.razorpay.EXPECT().CreateOrder(ctx, int64(49950), "INR", gomock.Any()).
		Return(&domain.RazorpayOrder{ID: "order_abc", AmountPaise: 49950, Currency: "INR"}, nil)
	d.razorpay.EXPECT().KeyID().Return("rzp_test_key")
	d.orderCache.EXPECT().Save(ctx, gomock.Any(), time.Hour).DoAndReturn(
		func(_ context.Context, o *domain.RazorpayOrder, _ time.Duration) error {
			assert.Equal(t, userID, o.UserID)
			return nil
		},
	)

	resp, err := d.svc.CreateRazorpayOrder(ctx, userID, decimal.RequireFromString("499.50"))
	require.NoError(t, err)
	assert.Equal(t, "order_abc", resp.OrderID)
	assert.Equal(t, int64(49950), resp.AmountPaise)
	assert.Equal(t, "rzp_test_key", resp.KeyID)
}

func TestPurchaseService_CreateRazorpayOrder_CacheFailureIsNotFatal(t *testing.T) {
	d := setupPurchaseService(t)

	d.razorpay.EXPECT().CreateOrder(gomock.Any(), int64(10000), "INR", gomock.Any()).
		Return(&domain.RazorpayOrder{ID: "order_x", AmountPaise: 10000, Currency: "INR"}, nil)
	d.razorpay.EXPECT().KeyID().Return("k")
	d.orderCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := d.svc.CreateRazorpayOrder(context.Background(), uuid.New(), decimal.NewFromInt(100))
	require.NoError(t, err)
}

func TestPurchaseService_CreateRazorpayOrder_InvalidAmounts(t *testing.T) {
	for _, amount := range []string{"0", "-5", "10.005", "1000000"} {
		t.Run(amount, func(t *testing.T) {
			d := setupPurchaseService(t)
			_, err := d.svc.CreateRazorpayOrder(context.Background(), uuid.New(), decimal.RequireFromString(amount))
			assertAppError(t, err, apperror.CodeInvalidInput)
		})
	}
}

func TestPurchaseService_CreateRazorpayOrder_ProviderDown(t *testing.T) {
	d := setupPurchaseService(t)
	d.razorpay.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("dial tcp: timeout"))

	_, err := d.svc.CreateRazorpayOrder(context.Background(), uuid.New(), decimal.NewFromInt(1))
	assertAppError(t, err, "PAY_003")
}

// ==================== Razorpay verification ====================

func TestPurchaseService_VerifyRazorpayPayment_Success(t *testing.T) {
	d := setupPurchaseService(t)
	ctx := context.Background()
	userID := uuid.New()
	sig := NewRazorpaySignatureService().Sign("rzp_secret", "order_1|pay_1")

	d.razorpay.EXPECT().KeySecret().Return("rzp_secret")
	d.orderCache.EXPECT().Get(ctx, "order_1").Return(&domain.RazorpayOrder{ID: "order_1", UserID: userID}, nil)
	d.wallet.EXPECT().RedeemExternalPayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.RedemptionRequest) (*ports.Balances, error) {
			assert.Equal(t, domain.ProviderRazorpay, req.Provider)
			assert.Equal(t, "pay_1", req.TransactionID)
			assert.Equal(t, int64(200), req.Reward)
			return &ports.Balances{Gold: 200}, nil
		},
	)

	bal, err := d.svc.VerifyRazorpayPayment(ctx, ports.RazorpayPaymentRequest{
		UserID: userID, OrderID: "order_1", PaymentID: "pay_1", Signature: sig, GoldReward: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(200), bal.Gold)
}

func TestPurchaseService_VerifyRazorpayPayment_BadSignature(t *testing.T) {
	d := setupPurchaseService(t)
	d.razorpay.EXPECT().KeySecret().Return("rzp_secret")

	_, err := d.svc.VerifyRazorpayPayment(context.Background(), ports.RazorpayPaymentRequest{
		UserID: uuid.New(), OrderID: "order_1", PaymentID: "pay_1", Signature: "deadbeef",
	})
	assertAppError(t, err, "PAY_001")
}

func TestPurchaseService_VerifyRazorpayPayment_ForeignOrder(t *testing.T) {
	d := setupPurchaseService(t)
	sig := NewRazorpaySignatureService().Sign("rzp_secret", "order_1|pay_1")

	d.razorpay.EXPECT().KeySecret().Return("rzp_secret")
	d.orderCache.EXPECT().Get(gomock.Any(), "order_1").Return(&domain.RazorpayOrder{ID: "order_1", UserID: uuid.New()}, nil)

	_, err := d.svc.VerifyRazorpayPayment(context.Background(), ports.RazorpayPaymentRequest{
		UserID: uuid.New(), OrderID: "order_1", PaymentID: "pay_1", Signature: sig,
	})
	assertAppError(t, err, apperror.CodeInvalidInput)
}

func TestPurchaseService_VerifyRazorpayPayment_MissingFields(t *testing.T) {
	d := setupPurchaseService(t)

	_, err := d.svc.VerifyRazorpayPayment(context.Background(), ports.RazorpayPaymentRequest{OrderID: "order_1"})
	assertAppError(t, err, apperror.CodeInvalidInput)
}

func TestPurchaseService_VerifyRazorpayPayment_DuplicatePassesThrough(t *testing.T) {
	d := setupPurchaseService(t)
	sig := NewRazorpaySignatureService().Sign("rzp_secret", "order_1|pay_1")

	d.razorpay.EXPECT().KeySecret().Return("rzp_secret")
	d.orderCache.EXPECT().Get(gomock.Any(), "order_1").Return(nil, nil)
	d.wallet.EXPECT().RedeemExternalPayment(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrDuplicateRedemption())

	_, err := d.svc.VerifyRazorpayPayment(context.Background(), ports.RazorpayPaymentRequest{
		UserID: uuid.New(), OrderID: "order_1", PaymentID: "pay_1", Signature: sig, GoldReward: 10,
	})
	assertAppError(t, err, apperror.CodeDuplicateRedemption)
}
