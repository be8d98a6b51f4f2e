package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRazorpaySignature_KnownVector(t *testing.T) {
	// RFC 4231 test case 2
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		NewRazorpaySignatureService().Sign("Jefe", "what do ya want for nothing?"),
	)
}

func TestRazorpaySignature_Verify(t *testing.T) {
	svc := NewRazorpaySignatureService()
	payload := RazorpayCheckoutPayload("order_9A33XWu170gUtm", "pay_29QQoUBi66xm2f")
	sig := svc.Sign("rzp_secret", payload)

	tests := []struct {
		name      string
		secret    string
		payload   string
		signature string
		want      bool
	}{
		{"valid", "rzp_secret", payload, sig, true},
		{"uppercase hex", "rzp_secret", payload, strings.ToUpper(sig), true},
		{"other payment id", "rzp_secret", RazorpayCheckoutPayload("order_9A33XWu170gUtm", "pay_other"), sig, false},
		{"wrong secret", "other_secret", payload, sig, false},
		{"empty secret", "", payload, NewRazorpaySignatureService().Sign("", payload), false},
		{"truncated", "rzp_secret", payload, sig[:32], false},
		{"not hex", "rzp_secret", payload, strings.Repeat("zz", 32), false},
		{"empty", "rzp_secret", payload, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Verify(tt.secret, tt.payload, tt.signature))
		})
	}
}

func TestRazorpayCheckoutPayload(t *testing.T) {
	assert.Equal(t, "order_abc|pay_xyz", RazorpayCheckoutPayload("order_abc", "pay_xyz"))
}
