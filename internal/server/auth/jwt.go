// Package auth holds the authentication primitives: the password hasher and
// the stateless bearer-token service.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the access token lifetime used when the caller does not
// choose one.
const DefaultTTL = 30 * time.Minute

var signingMethod = jwt.SigningMethodHS256

// TokenConfig is the process-wide token setup, fixed at construction.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
}

// TokenService issues and validates HS256 tokens carrying the subject and
// expiry claims. Rotating the key means building a new service.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token secret must not be empty")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)

	return &TokenService{secret: secret, ttl: ttl, now: time.Now}, nil
}

// TTL returns the lifetime applied by IssueDefault.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs {sub: subject, exp: now + ttl}. exp is a NumericDate in
// whole seconds, so the token may expire up to one second before now + ttl.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(signingMethod, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(s.now().Add(ttl)),
	})

	return token.SignedString(s.secret)
}

// IssueDefault issues a token with the configured lifetime.
func (s *TokenService) IssueDefault(subject string) (string, error) {
	return s.Issue(subject, s.ttl)
}

// Validate checks the signature and expiry of tokenString and returns its
// subject.
//
// Errors: common.ErrTokenExpired when exp has passed, common.ErrMissingSubject
// when sub is absent, common.ErrInvalidToken for everything else (bad
// signature, foreign algorithm, malformed input, absent or unparseable exp).
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", common.ErrMissingSubject
	}

	return claims.Subject, nil
}

func (s *TokenService) keyFunc(*jwt.Token) (any, error) {
	return s.secret, nil
}
