package dto

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeStruct_TrimsAndEscapes(t *testing.T) {
	req := RegisterRequest{
		Name:     "  <b>Asha</b> ",
		Email:    "  asha@example.com ",
		Password: "  spaces count  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "&lt;b&gt;Asha&lt;/b&gt;", req.Name)
	assert.Equal(t, "asha@example.com", req.Email)
	assert.Equal(t, "  spaces count  ", req.Password, "passwords are never rewritten")
}

func TestSanitizeStruct_IgnoresNonStructs(t *testing.T) {
	s := "  x  "
	SanitizeStruct(&s)
	assert.Equal(t, "  x  ", s)
	SanitizeStruct(nil)
}

func TestBinding_UnlockTestID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"jee-physics-1", true},
		{"65f1c0a2b3d4e5f6a7b8c9d0", true},
		{"mock:2024.set_3", true},
		{"", false},
		{"../etc/passwd", false},
		{"a b", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&UnlockTestRequest{TestID: tt.id})
			assert.Equal(t, tt.valid, err == nil, "%v", err)
		})
	}
}

func TestBinding_ProductID(t *testing.T) {
	valid := GooglePlayVerifyRequest{ProductID: "gold_pack.50", PurchaseToken: "tok"}
	assert.NoError(t, binding.Validator.ValidateStruct(&valid))

	invalid := GooglePlayVerifyRequest{ProductID: "Gold Pack", PurchaseToken: "tok"}
	assert.Error(t, binding.Validator.ValidateStruct(&invalid))
}

func TestBinding_RegisterEmail(t *testing.T) {
	req := RegisterRequest{Name: "A", Email: "not-an-email", Password: "x"}
	assert.Error(t, binding.Validator.ValidateStruct(&req))
}

func TestParseReward(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{``, 0},
		{`null`, 0},
		{`50`, 50},
		{`49.99`, 49},
		{`"120"`, 120},
		{`"12.7"`, 12},
		{`-5`, 0},
		{`"-5"`, 0},
		{`"abc"`, 0},
		{`true`, 0},
		{`{}`, 0},
		{`1e3`, 1000},
		{`99999999999999999999999`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseReward(json.RawMessage(tt.raw)))
		})
	}
}

func TestReward_DecodesLeniently(t *testing.T) {
	var req RazorpayVerifyRequest
	require.NoError(t, json.Unmarshal([]byte(`{"razorpay_order_id":"order_1","goldReward":"oops"}`), &req))
	assert.Equal(t, Reward(0), req.GoldReward)

	require.NoError(t, json.Unmarshal([]byte(`{"goldReward":200.5}`), &req))
	assert.Equal(t, Reward(200), req.GoldReward)
}

func TestGoogleLoginRequest_Credential(t *testing.T) {
	assert.Equal(t, "a", GoogleLoginRequest{IDToken: "a", Token: "b"}.Credential())
	assert.Equal(t, "b", GoogleLoginRequest{Token: "b"}.Credential())
}
