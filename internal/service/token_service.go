package service

import (
	"fmt"
	"time"

	"marketplace-integrations/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the only role allowed on admin routes.
const AdminRole = "admin"

// JWTTokenService implements ports.TokenService using HS256 JWTs shared with
// the storefront's auth service.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTTokenService issues and validates HS256 admin tokens that expire
// after expiry.
func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}
}

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Generate issues an admin token for subject. Used by operator tooling.
func (s *JWTTokenService) Generate(subject string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.expiry)

	claims := adminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Validate parses tokenString and checks signature, expiry and issuer.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	var claims adminClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("missing subject claim")
	}

	return &ports.TokenClaims{Subject: claims.Subject, Role: claims.Role}, nil
}
