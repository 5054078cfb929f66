package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inventory_dashboard/internal/logger"
	"inventory_dashboard/internal/models"
	"inventory_dashboard/internal/repository"
	"inventory_dashboard/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// AuthService checks the configured credential pair and drives the auth slice.
type AuthService struct {
	authRepo repository.Authorization
	store    *store.Store
	issuer   TokenIssuer
	activity activityRecorder
	log      *logger.Logger
}

func NewAuthService(repo repository.Authorization, st *store.Store, issuer TokenIssuer, activity activityRecorder, log *logger.Logger) *AuthService {
	return &AuthService{authRepo: repo, store: st, issuer: issuer, activity: activity, log: log}
}

// EnsureCredential stores username/password as a bcrypt hash, inserting the
// user or refreshing a stale hash.
func (s *AuthService) EnsureCredential(ctx context.Context, username, password string) error {
	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("ensure credential: %w", err)
	}
	if u != nil && verifyPassword(u.PasswordHash, password) == nil {
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("ensure credential: %w", err)
	}
	if u == nil {
		if _, err := s.authRepo.Create(ctx, username, hash); err != nil {
			return fmt.Errorf("ensure credential: %w", err)
		}
		s.log.Infow("credential_created", "username", username)
		return nil
	}
	if err := s.authRepo.UpdatePasswordHash(ctx, u.ID, hash); err != nil {
		return fmt.Errorf("ensure credential: %w", err)
	}
	s.log.Infow("credential_rotated", "username", username)
	return nil
}

// Login verifies the pair, issues a token and marks the session authenticated.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if u == nil || verifyPassword(u.PasswordHash, password) != nil {
		s.activity.Record(ctx, models.ActivityLoginFailed, "Invalid credentials", map[string]any{"username": username})
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(u.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	s.store.Dispatch(store.LoginSuccess{Token: token})
	s.activity.Record(ctx, models.ActivityLogin, "Signed in", map[string]any{"username": u.Username})
	return token, nil
}

// Logout clears the auth slice. The view slice is left as is.
func (s *AuthService) Logout(ctx context.Context) {
	s.store.Dispatch(store.Logout{})
	s.activity.Record(ctx, models.ActivityLogout, "Signed out", nil)
}

// Authenticate accepts only the token of the active session.
func (s *AuthService) Authenticate(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrInvalidToken
	}
	if !s.store.State().Auth.HasToken(token) {
		return ErrInvalidToken
	}
	if err := s.issuer.Verify(token); err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
