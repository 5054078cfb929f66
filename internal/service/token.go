package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inventory_dashboard/internal/config"
)

// TokenIssuer mints and checks session tokens.
type TokenIssuer interface {
	Issue(username string) (string, error)
	Verify(token string) error
}

// StaticIssuer hands out the same opaque token on every login.
type StaticIssuer struct {
	Token string
}

func (s StaticIssuer) Issue(string) (string, error) { return s.Token, nil }

func (s StaticIssuer) Verify(token string) error {
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

// JWTIssuer signs HS256 tokens with sub=username. A zero TTL means no expiry.
type JWTIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewJWTIssuer(signingKey string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{key: []byte(signingKey), ttl: ttl, now: time.Now}
}

func (j *JWTIssuer) Issue(username string) (string, error) {
	now := j.now()
	claims := jwt.RegisteredClaims{
		Subject:  username,
		IssuedAt: jwt.NewNumericDate(now),
		// distinct tokens per login even within the same second
		ID: fmt.Sprintf("%d", now.UnixNano()),
	}
	if j.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(j.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.key)
}

func (j *JWTIssuer) Verify(accessToken string) error {
	token, err := jwt.ParseWithClaims(accessToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.key, nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// NewTokenIssuer picks the issuer for the configured token mode.
func NewTokenIssuer(cfg config.AuthConfig) (TokenIssuer, error) {
	switch cfg.TokenMode {
	case config.TokenModeStatic, "":
		return StaticIssuer{Token: cfg.StaticToken}, nil
	case config.TokenModeJWT:
		return NewJWTIssuer(cfg.SigningKey, cfg.TokenTTL), nil
	default:
		return nil, fmt.Errorf("unknown token mode %q", cfg.TokenMode)
	}
}
