package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/dmitrijs2005/auditkeeper/internal/server/auth"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

// Credentials is the part of CredentialStore the gateway relies on.
type Credentials interface {
	FindByUsername(ctx context.Context, userName string) (*models.User, error)
	Create(ctx context.Context, userName, password string) (*models.User, error)
}

// Tokens issues and validates bearer tokens; *auth.TokenService satisfies it.
type Tokens interface {
	IssueDefault(subject string) (string, error)
	Validate(token string) (string, error)
}

// TokenResponse is what a successful login hands back.
type TokenResponse struct {
	AccessToken string
	TokenType   string
}

// AuthService orchestrates registration, login and identity resolution.
type AuthService struct {
	credentials Credentials
	hasher      auth.PasswordHasher
	tokens      Tokens

	// dummyHash is verified against when the user does not exist so that
	// unknown and known usernames cost the same.
	dummyHash string
}

func NewAuthService(c Credentials, h auth.PasswordHasher, t Tokens) (*AuthService, error) {
	dummy, err := h.Hash("auditkeeper-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &AuthService{credentials: c, hasher: h, tokens: t, dummyHash: dummy}, nil
}

// Register creates a user. A taken username yields common.ErrDuplicateUsername.
func (s *AuthService) Register(ctx context.Context, userName, password string) (*models.User, error) {
	if err := validateInput(credentialsInput{Username: userName, Password: password}); err != nil {
		return nil, err
	}

	user, err := s.credentials.Create(ctx, userName, password)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Login verifies the password and issues a default-lifetime token. Unknown
// users and wrong passwords both yield common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, userName, password string) (*TokenResponse, error) {
	if err := validateInput(credentialsInput{Username: userName, Password: password}); err != nil {
		return nil, err
	}

	user, err := s.credentials.FindByUsername(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueDefault(user.UserName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	return &TokenResponse{AccessToken: token, TokenType: common.TokenTypeBearer}, nil
}

// CurrentIdentity resolves the username behind token. Every token failure
// is reported as common.ErrUnauthenticated.
func (s *AuthService) CurrentIdentity(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrUnauthenticated
	}
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return "", common.ErrUnauthenticated
	}
	return subject, nil
}
