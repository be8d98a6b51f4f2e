package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// RazorpaySignatureService checks the razorpay_signature Checkout hands back
// to the client: hex(HMAC-SHA256(key_secret, order_id + "|" + payment_id)).
type RazorpaySignatureService struct{}

func NewRazorpaySignatureService() *RazorpaySignatureService {
	return &RazorpaySignatureService{}
}

func (RazorpaySignatureService) Sign(secretKey, payload string) string {
	return hex.EncodeToString(checkoutMAC(secretKey, payload))
}

// Verify accepts the signature in either hex case. Anything that does not
// decode to a full SHA-256 digest is rejected before comparing.
func (RazorpaySignatureService) Verify(secretKey, payload, signature string) bool {
	if secretKey == "" {
		return false
	}
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(got) != sha256.Size {
		return false
	}
	return hmac.Equal(checkoutMAC(secretKey, payload), got)
}

func checkoutMAC(secretKey, payload string) []byte {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}

// RazorpayCheckoutPayload is the message Razorpay signs on checkout success.
func RazorpayCheckoutPayload(orderID, paymentID string) string {
	return orderID + "|" + paymentID
}
