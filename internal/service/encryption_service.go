package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Sealed receipts look like "v1.<base64url(nonce || ciphertext)>". The prefix
// names the key generation that sealed them.
const receiptSealVersion = "v1"

// receiptAAD binds a sealed receipt to the column it is stored in.
var receiptAAD = []byte("quizvault/processed_payments.receipt")

// AESEncryptionService seals provider receipts with AES-256-GCM before they
// are written to processed_payments.
type AESEncryptionService struct {
	aead cipher.AEAD
}

// NewAESEncryptionService takes a 64-character hex key.
func NewAESEncryptionService(hexKey string) (*AESEncryptionService, error) {
	key, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, fmt.Errorf("receipt key is not hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("receipt key must decode to 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &AESEncryptionService{aead: aead}, nil
}

func (s *AESEncryptionService) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("receipt nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), receiptAAD)
	return receiptSealVersion + "." + base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (s *AESEncryptionService) Decrypt(sealed string) (string, error) {
	version, body, ok := strings.Cut(sealed, ".")
	if !ok || version != receiptSealVersion {
		return "", errors.New("unknown receipt seal version")
	}
	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return "", fmt.Errorf("decoding sealed receipt: %w", err)
	}

	n := s.aead.NonceSize()
	if len(raw) < n+s.aead.Overhead() {
		return "", errors.New("sealed receipt too short")
	}
	plaintext, err := s.aead.Open(nil, raw[:n], raw[n:], receiptAAD)
	if err != nil {
		return "", fmt.Errorf("opening sealed receipt: %w", err)
	}
	return string(plaintext), nil
}
