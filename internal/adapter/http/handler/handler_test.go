package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizvault/internal/adapter/http/middleware"
	"quizvault/internal/core/domain"
	"quizvault/internal/core/ports"
	"quizvault/internal/core/ports/mocks"
	"quizvault/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newContext builds a test context with a JSON body. A non-nil userID marks
// the request as authenticated.
func newContext(method, path string, body interface{}, userID *uuid.UUID) (*gin.Context, *httptest.ResponseRecorder) {
	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	default:
		raw, _ = json.Marshal(b)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	if userID != nil {
		c.Set(middleware.CtxUserID, *userID)
	}
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	user := &domain.User{ID: uuid.New(), Name: "Asha &amp; Co", Email: "asha@example.com"}
	mockAuth.EXPECT().Register(gomock.Any(), ports.RegisterRequest{
		Name:     "Asha &amp; Co",
		Email:    "asha@example.com",
		Password: " secret123 ",
	}).Return(&ports.AuthResult{Token: "jwt", ExpiresAt: time.Unix(1700000000, 0), User: user}, nil)

	c, w := newContext(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "  Asha & Co ",
		"email":    "asha@example.com",
		"password": " secret123 ",
	}, nil)
	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "jwt", data["token"])
	assert.Equal(t, float64(1700000000), data["expires_at"])
	u := data["user"].(map[string]interface{})
	assert.Equal(t, user.ID.String(), u["id"])
	assert.Equal(t, float64(0), u["gold"])

	got, ok := middleware.UserID(c)
	require.True(t, ok, "register should expose the new user to the audit middleware")
	assert.Equal(t, user.ID, got)
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewAuthHandler(mocks.NewMockAuthService(ctrl))

	for _, body := range []string{`{}`, `{"name":"a","email":"not-an-email","password":"x"}`, `not json`} {
		c, w := newContext(http.MethodPost, "/api/auth/register", body, nil)
		h.Register(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, apperror.CodeInvalidInput, decodeErrorCode(t, w))
	}
}

func TestRegister_UserExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUserExists())

	c, w := newContext(http.MethodPost, "/", map[string]string{
		"name": "a", "email": "a@example.com", "password": "pw",
	}, nil)
	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "AUTH_002", decodeErrorCode(t, w))
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	user := &domain.User{ID: uuid.New(), Name: "Ravi", Email: "ravi@example.com"}
	mockAuth.EXPECT().Login(gomock.Any(), "ravi@example.com", "pw").
		Return(&ports.AuthResult{Token: "jwt", ExpiresAt: time.Now().Add(time.Hour), User: user, Gold: 40, Crystals: 3}, nil)

	c, w := newContext(http.MethodPost, "/api/auth/login", map[string]string{"email": "ravi@example.com", "password": "pw"}, nil)
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	u := decodeData(t, w)["user"].(map[string]interface{})
	assert.Equal(t, float64(40), u["gold"])
	assert.Equal(t, float64(3), u["crystals"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidCredentials())

	c, w := newContext(http.MethodPost, "/api/auth/login", map[string]string{"email": "x@example.com", "password": "bad"}, nil)
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_001", decodeErrorCode(t, w))
	_, ok := middleware.UserID(c)
	assert.False(t, ok)
}

func TestGoogleLogin_AcceptsBothTokenFields(t *testing.T) {
	for _, field := range []string{"idToken", "token"} {
		t.Run(field, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockAuth := mocks.NewMockAuthService(ctrl)
			h := NewAuthHandler(mockAuth)

			photo := "https://lh3.googleusercontent.com/a/photo"
			user := &domain.User{ID: uuid.New(), Email: "g@example.com", PhotoURL: &photo}
			mockAuth.EXPECT().GoogleLogin(gomock.Any(), "google-id-token").
				Return(&ports.AuthResult{Token: "jwt", User: user}, nil)

			c, w := newContext(http.MethodPost, "/api/auth/google", map[string]string{field: "google-id-token"}, nil)
			h.GoogleLogin(c)

			assert.Equal(t, http.StatusOK, w.Code)
			u := decodeData(t, w)["user"].(map[string]interface{})
			assert.Equal(t, photo, u["photoUrl"])
		})
	}
}

func TestGoogleLogin_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewAuthHandler(mocks.NewMockAuthService(ctrl))

	c, w := newContext(http.MethodPost, "/api/auth/google", `{}`, nil)
	h.GoogleLogin(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe_OmitsPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	userID := uuid.New()
	hash := "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"
	mockAuth.EXPECT().Me(gomock.Any(), userID).Return(&ports.UserProfile{
		User:            &domain.User{ID: userID, Name: "Asha", Email: "asha@example.com", PasswordHash: &hash},
		Gold:            10,
		UnlockedTestIDs: []string{"t1"},
	}, nil)

	c, w := newContext(http.MethodGet, "/api/auth/me", nil, &userID)
	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "argon2id")
	data := decodeData(t, w)
	assert.Equal(t, "Asha", data["name"])
	assert.Equal(t, []interface{}{"t1"}, data["unlockedTests"])
}

func TestMe_NoPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewAuthHandler(mocks.NewMockAuthService(ctrl))

	c, w := newContext(http.MethodGet, "/api/auth/me", nil, nil)
	h.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeUnauthenticated, decodeErrorCode(t, w))
}

// --- Wallet Handler Tests ---

func TestGetWallet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().GetOverview(gomock.Any(), userID).Return(&ports.WalletOverview{
		BalanceView: ports.BalanceView{Gold: 50, Crystals: 2},
	}, nil)

	c, w := newContext(http.MethodGet, "/api/wallet", nil, &userID)
	h.GetWallet(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(50), data["gold"])
	assert.Equal(t, []interface{}{}, data["unlockedTests"], "empty sets serialize as []")
	assert.Equal(t, []interface{}{}, data["transactions"])
}

func TestGetWallet_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().GetOverview(gomock.Any(), userID).Return(nil, apperror.ErrNotFound("User"))

	c, w := newContext(http.MethodGet, "/api/wallet", nil, &userID)
	h.GetWallet(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, decodeErrorCode(t, w))
}

func TestEarnGold(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().EarnGold(gomock.Any(), userID, int64(25)).Return(&ports.Balances{Gold: 125, Crystals: 1}, nil)

	c, w := newContext(http.MethodPost, "/api/wallet/gold/add", map[string]int{"amount": 25}, &userID)
	h.EarnGold(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(125), data["gold"])
}

func TestEarnGold_MalformedAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	userID := uuid.New()
	c, w := newContext(http.MethodPost, "/api/wallet/gold/add", `{"amount":"lots"}`, &userID)
	h.EarnGold(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid amount")
}

func TestExchange_InsufficientGold(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().ExchangeGoldForCrystals(gomock.Any(), userID, int64(300)).
		Return(nil, apperror.ErrInsufficientFunds("gold", 300, 120))

	c, w := newContext(http.MethodPost, "/api/wallet/exchange", map[string]int{"goldAmount": 300}, &userID)
	h.Exchange(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WAL_002", resp["error_code"])
	details := resp["details"].(map[string]interface{})
	assert.Equal(t, float64(120), details["available"])
}

func TestExchange_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().ExchangeGoldForCrystals(gomock.Any(), userID, int64(250)).Return(&ports.ExchangeResult{
		Balances:      ports.Balances{Gold: 50, Crystals: 2},
		CrystalsAdded: 2,
		GoldDeducted:  200,
	}, nil)

	c, w := newContext(http.MethodPost, "/api/wallet/exchange", map[string]int{"goldAmount": 250}, &userID)
	h.Exchange(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(2), data["crystalsAdded"])
	assert.Equal(t, float64(200), data["goldDeducted"])
	assert.Equal(t, float64(50), data["gold"])
}

func TestUnlockTest(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().UnlockTest(gomock.Any(), userID, "ssc-cgl-2024-mock-3").Return(&ports.UnlockResult{
		Crystals:        0,
		UnlockedTestIDs: []string{"ssc-cgl-2024-mock-3"},
	}, nil)

	c, w := newContext(http.MethodPost, "/api/wallet/tests/unlock", map[string]string{"testId": "ssc-cgl-2024-mock-3"}, &userID)
	h.UnlockTest(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, false, data["alreadyUnlocked"])
	assert.Equal(t, "ssc-cgl-2024-mock-3", c.GetString(middleware.CtxAuditResourceID))
}

func TestUnlockTest_RejectsBadTestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	userID := uuid.New()
	c, w := newContext(http.MethodPost, "/api/wallet/tests/unlock", map[string]string{"testId": "<script>"}, &userID)
	h.UnlockTest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnlockStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().CheckTestUnlocked(gomock.Any(), userID, "t1").
		Return(&ports.UnlockStatus{Unlocked: true, Crystals: 4, Gold: 9}, nil)

	c, w := newContext(http.MethodGet, "/api/wallet/tests/t1/status", nil, &userID)
	c.Params = gin.Params{{Key: "testId", Value: "t1"}}
	h.UnlockStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["unlocked"])
	assert.Equal(t, float64(9), data["gold"])
}

func TestTransactions_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().GetTransactionHistory(gomock.Any(), userID).
		Return(nil, apperror.ErrStoreUnavailable(errors.New("dial tcp 10.1.2.3:5432")))

	c, w := newContext(http.MethodGet, "/api/wallet/transactions", nil, &userID)
	h.Transactions(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.1.2.3")
}

// --- Purchase Handler Tests ---

func TestVerifyGooglePlay_LenientReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPurchase := mocks.NewMockPurchaseService(ctrl)
	h := NewPurchaseHandler(mockPurchase)

	userID := uuid.New()
	mockPurchase.EXPECT().VerifyGooglePlayPurchase(gomock.Any(), ports.GooglePlayPurchaseRequest{
		UserID:        userID,
		ProductID:     "gold_pack_50",
		PurchaseToken: "tok-1",
		OrderID:       "GPA.111",
		GoldReward:    50,
	}).Return(&ports.Balances{Gold: 50}, nil)

	c, w := newContext(http.MethodPost, "/api/wallet/google-play/verify",
		`{"productId":"gold_pack_50","purchaseToken":"tok-1","orderId":"GPA.111","goldReward":"50"}`, &userID)
	h.VerifyGooglePlay(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(50), decodeData(t, w)["gold"])
}

func TestVerifyGooglePlay_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPurchase := mocks.NewMockPurchaseService(ctrl)
	h := NewPurchaseHandler(mockPurchase)

	userID := uuid.New()
	mockPurchase.EXPECT().VerifyGooglePlayPurchase(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrDuplicateRedemption())

	c, w := newContext(http.MethodPost, "/api/wallet/google-play/verify",
		map[string]interface{}{"productId": "gold_pack_50", "purchaseToken": "tok-1", "goldReward": 50}, &userID)
	h.VerifyGooglePlay(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeDuplicateRedemption, decodeErrorCode(t, w))
}

func TestCreateRazorpayOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPurchase := mocks.NewMockPurchaseService(ctrl)
	h := NewPurchaseHandler(mockPurchase)

	userID := uuid.New()
	mockPurchase.EXPECT().CreateRazorpayOrder(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, amount decimal.Decimal) (*ports.RazorpayOrderResponse, error) {
			assert.True(t, amount.Equal(decimal.RequireFromString("499.5")))
			return &ports.RazorpayOrderResponse{OrderID: "order_1", AmountPaise: 49950, Currency: "INR", KeyID: "rzp_test"}, nil
		},
	)

	c, w := newContext(http.MethodPost, "/api/wallet/razorpay/create-order", `{"amountInRupees":499.5}`, &userID)
	h.CreateRazorpayOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "order_1", data["orderId"])
	assert.Equal(t, float64(49950), data["amount"])
	assert.Equal(t, "rzp_test", data["keyId"])
}

func TestVerifyRazorpayPayment_BadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPurchase := mocks.NewMockPurchaseService(ctrl)
	h := NewPurchaseHandler(mockPurchase)

	userID := uuid.New()
	mockPurchase.EXPECT().VerifyRazorpayPayment(gomock.Any(), ports.RazorpayPaymentRequest{
		UserID: userID, OrderID: "order_1", PaymentID: "pay_1", Signature: "bad", GoldReward: 200,
	}).Return(nil, apperror.ErrInvalidSignature())

	c, w := newContext(http.MethodPost, "/api/wallet/razorpay/verify-payment", map[string]interface{}{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "bad",
		"goldReward":          200,
	}, &userID)
	h.VerifyRazorpayPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PAY_001", decodeErrorCode(t, w))
}

// --- Health & routing ---

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Ping(context.Context) error { return f.err }
func (f fakeChecker) Name() string               { return f.name }

func TestHealthCheck(t *testing.T) {
	r := gin.New()
	r.GET("/ok", HealthCheck(fakeChecker{name: "postgresql"}))
	r.GET("/degraded", HealthCheck(fakeChecker{name: "postgresql"}, fakeChecker{name: "redis", err: errors.New("down")}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/degraded", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}

func TestRouter_AuthRequiredOnWalletRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	r := SetupRouter(RouterDeps{
		AuthSvc:     mocks.NewMockAuthService(ctrl),
		WalletSvc:   mocks.NewMockWalletService(ctrl),
		PurchaseSvc: mocks.NewMockPurchaseService(ctrl),
		TokenSvc:    tokenSvc,
		Mode:        gin.TestMode,
	})

	paths := []string{"/api/wallet", "/api/wallet/transactions", "/api/auth/me"}
	for _, p := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, p)
		assert.Contains(t, w.Body.String(), "No token, authorization denied")
	}

	tokenSvc.EXPECT().Validate("expired").Return(nil, errors.New("token is expired"))
	req := httptest.NewRequest(http.MethodGet, "/api/wallet", nil)
	req.Header.Set("x-auth-token", "expired")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is not valid")
}

func TestRouter_RootAndNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := SetupRouter(RouterDeps{
		TokenSvc: mocks.NewMockTokenService(ctrl),
		Mode:     gin.TestMode,
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"API is running..."}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Route not found")
}
