// Package auth guards the admin panel: password login issuing a signed
// token, token verification for the admin middleware, and password change.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	settingsStore "github.com/agendei-app/agendei-service/internal/store/settings"
	"github.com/agendei-app/agendei-service/pkg/password"
	"github.com/agendei-app/agendei-service/pkg/ptr"
)

const roleAdmin = "admin"

// Service implements admin authentication against the credential stored in
// the settings record.
type Service struct {
	store    SettingsStore
	logger   Logger
	secret   []byte
	tokenTTL time.Duration

	now func() time.Time
}

// NewService creates the auth service. secret signs the HS256 tokens.
func NewService(store SettingsStore, logger Logger, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		store:    store,
		logger:   logger,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// Login verifies the admin password and returns a bearer token.
func (s *Service) Login(_ context.Context, pw string) (string, error) {
	cfg := s.store.Get()
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(pw)); err != nil {
		s.logger.Warn("Login: rejected admin login attempt")
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := jwt.MapClaims{
		"role": roleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: sign token: %v", err)
		return "", fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin session issued, ttl=%s", s.tokenTTL)
	return token, nil
}

// VerifyToken checks a bearer token and its admin role claim.
func (s *Service) VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != roleAdmin {
		return ErrInvalidToken
	}
	return nil
}

// ChangePassword replaces the admin credential. The current password must
// match and the new one must satisfy every strength criterion.
func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	cfg := s.store.Get()
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(current)); err != nil {
		s.logger.Warn("ChangePassword: current password mismatch")
		return ErrInvalidCredentials
	}

	if !password.IsStrong(next) {
		return ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ChangePassword: hash password: %v", err)
		return fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	s.store.Update(ctx, settingsStore.Patch{AdminPasswordHash: ptr.Ptr(string(hash))})
	s.logger.Info("ChangePassword: admin password updated")
	return nil
}
