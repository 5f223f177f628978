package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256.
type HMACSignatureService struct{}

// NewHMACSignatureService returns the HMAC-SHA256 signer.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign returns the lowercase hex HMAC-SHA256 of payload under secretKey.
func (s *HMACSignatureService) Sign(secretKey string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time.
func (s *HMACSignatureService) Verify(secretKey string, payload []byte, signature string) bool {
	expected := s.Sign(secretKey, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}
