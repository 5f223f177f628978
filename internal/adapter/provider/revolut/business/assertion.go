package business

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	assertionAudience = "https://revolut.com"
	assertionTTL      = 5 * time.Minute
)

// assertionSigner signs short-lived RS256 client assertions with the
// private key at keyPath. The key is read on first use and cached.
type assertionSigner struct {
	keyPath string
	issuer  string // organisation id
	subject string // API key id
	now     func() time.Time

	once    sync.Once
	key     *rsa.PrivateKey
	loadErr error
}

func (s *assertionSigner) loadKey() (*rsa.PrivateKey, error) {
	s.once.Do(func() {
		pem, err := os.ReadFile(s.keyPath)
		if err != nil {
			s.loadErr = fmt.Errorf("reading private key: %w", err)
			return
		}
		s.key, s.loadErr = jwt.ParseRSAPrivateKeyFromPEM(pem)
		if s.loadErr != nil {
			s.loadErr = fmt.Errorf("parsing private key: %w", s.loadErr)
		}
	})
	return s.key, s.loadErr
}

func (s *assertionSigner) sign() (string, error) {
	key, err := s.loadKey()
	if err != nil {
		return "", err
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   s.subject,
		Audience:  jwt.ClaimStrings{assertionAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(assertionTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("signing client assertion: %w", err)
	}
	return signed, nil
}

// authorize sends a fresh assertion as the bearer token.
func (s *assertionSigner) authorize(_ context.Context, req *http.Request) error {
	token, err := s.sign()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}
