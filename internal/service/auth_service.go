package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"warga/internal/auth"
	apperrors "warga/internal/errors"
	"warga/internal/model"
	"warga/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("email or password wrong")
	// ErrEmailOrNIKTaken is returned when registering a duplicate email or NIK.
	ErrEmailOrNIKTaken = errors.New("email or NIK already exists")
)

// AuthService handles registration, login and session verification.
type AuthService interface {
	Register(ctx context.Context, user *model.User, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Verify(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

// Register creates a new user with a hashed password. The uniqueness check is a
// pre-query, so two identical concurrent registrations can both pass it.
func (s *authService) Register(ctx context.Context, user *model.User, password string) (*model.User, error) {
	count, err := s.userRepo.CountByEmailOrNIK(ctx, user.Email, user.NIK)
	if err != nil {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailOrNIKTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashedPassword)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials, signs a token with a 2 hour claim and persists a
// session row whose expiry is computed independently as now+2h.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Nama, user.Role)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	session := &model.Session{
		Token:  token,
		Email:  user.Email,
		Expiry: time.Now().Add(auth.TokenExpiry),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return token, nil
}

// Verify checks the session row first, then the token's embedded expiry claim.
// An expired token gets its session row deleted on the spot; there is no
// background sweep of stale sessions. On success the owning user is returned so
// it can be attached to the request context.
func (s *authService) Verify(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}

	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	claims, err := s.jwtService.DecodeToken(token)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
			return nil, fmt.Errorf("delete expired session: %w", err)
		}
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByEmail(ctx, session.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("find session user: %w", err)
	}

	return user, nil
}

// Logout deletes the session row for the token. Idempotent: a second call with
// the same token is a no-op.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.DeleteByToken(ctx, token)
}
