package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignatureService_SignAndVerify(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := []byte(`{"event":"ORDER_COMPLETED","data":{"merchant_order_ext_ref":"ORD-1"}}`)

	signature := svc.Sign("whsec", payload)

	assert.Regexp(t, `^[0-9a-f]{64}$`, signature)
	assert.True(t, svc.Verify("whsec", payload, signature))
}

func TestHMACSignatureService_KnownVector(t *testing.T) {
	// RFC 4231 test case 2.
	svc := NewHMACSignatureService()
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		svc.Sign("Jefe", []byte("what do ya want for nothing?")))
}

func TestHMACSignatureService_VerifyFailures(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := []byte("original payload")
	signature := svc.Sign("correct-key", payload)

	assert.False(t, svc.Verify("wrong-key", payload, signature))
	assert.False(t, svc.Verify("correct-key", []byte("tampered payload"), signature))
	assert.False(t, svc.Verify("correct-key", payload, "invalidsignature"))
	assert.False(t, svc.Verify("correct-key", payload, ""))
}

func TestHMACSignatureService_DeterministicSign(t *testing.T) {
	svc := NewHMACSignatureService()
	assert.Equal(t, svc.Sign("key", []byte("data")), svc.Sign("key", []byte("data")))
}
