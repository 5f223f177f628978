package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAESKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestAESEncryptionService_NewInvalidKey(t *testing.T) {
	_, err := NewAESEncryptionService("shortkey")
	assert.Error(t, err)

	_, err = NewAESEncryptionService("0123456789abcdef")
	assert.Error(t, err)
}

func TestAESEncryptionService_RoundTripIBAN(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	iban := "DE89370400440532013000"
	ciphertext, err := svc.Encrypt(iban)
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, iban)

	decrypted, err := svc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, iban, decrypted)
}

func TestAESEncryptionService_DifferentNonces(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	c1, err := svc.Encrypt("GB33BUKB20201555555555")
	require.NoError(t, err)
	c2, err := svc.Encrypt("GB33BUKB20201555555555")
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2)
}

func TestAESEncryptionService_TamperedCiphertext(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	ciphertext, err := svc.Encrypt("secret")
	require.NoError(t, err)

	last := ciphertext[len(ciphertext)-1]
	flipped := byte('0')
	if last == '0' {
		flipped = '1'
	}
	_, err = svc.Decrypt(ciphertext[:len(ciphertext)-1] + string(flipped))
	assert.Error(t, err)
}

func TestAESEncryptionService_WrongKey(t *testing.T) {
	svc1, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)
	svc2, err := NewAESEncryptionService("abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789")
	require.NoError(t, err)

	ciphertext, err := svc1.Encrypt("NL91ABNA0417164300")
	require.NoError(t, err)

	_, err = svc2.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestAESEncryptionService_InvalidCiphertext(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	_, err = svc.Decrypt("not-hex-at-all!!!")
	assert.Error(t, err)

	_, err = svc.Decrypt("abcdef")
	assert.Error(t, err)
}
