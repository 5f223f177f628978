package business

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestKey(t *testing.T) (string, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	path := filepath.Join(t.TempDir(), "private.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0o600))
	return path, key
}

func TestAssertionSigner_AuthorizeSetsSignedBearer(t *testing.T) {
	path, key := writeTestKey(t)
	now := time.Now().Truncate(time.Second)
	s := &assertionSigner{keyPath: path, issuer: "org-1", subject: "key-1", now: func() time.Time { return now }}

	req, err := http.NewRequest(http.MethodGet, "https://b2b.example.com/transactions", nil)
	require.NoError(t, err)
	require.NoError(t, s.authorize(context.Background(), req))

	raw, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	require.True(t, ok)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}), jwt.WithAudience(assertionAudience))
	require.NoError(t, err)

	assert.Equal(t, "org-1", claims.Issuer)
	assert.Equal(t, "key-1", claims.Subject)
	assert.Equal(t, now.Add(assertionTTL).Unix(), claims.ExpiresAt.Unix())
}

func TestAssertionSigner_MissingKeyFails(t *testing.T) {
	s := &assertionSigner{keyPath: filepath.Join(t.TempDir(), "absent.pem"), now: time.Now}

	req, err := http.NewRequest(http.MethodGet, "https://b2b.example.com/pay", nil)
	require.NoError(t, err)
	err = s.authorize(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading private key")
	assert.Empty(t, req.Header.Get("Authorization"))
}
