package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/perkhub/rewards-system/internal/core/domain"
	"github.com/perkhub/rewards-system/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users     ports.UserRepository
	audit     ports.AuditLogger
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, audit ports.AuditLogger, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, audit: audit, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates an account with the starting points balance. The admin
// flag is an explicit registration input, never derived from the email.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" || input.Fullname == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, fmt.Errorf("register: %w", err)
	}
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Fullname:     input.Fullname,
		Username:     input.Username,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
		Active:       true,
		Data: domain.UserData{
			IsAdmin: input.IsAdmin,
			Points:  domain.StartingPoints,
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return "", nil, err
	}

	if _, logErr := s.audit.Record(ctx, ports.LogEntryInput{
		UserID:      user.ID,
		Action:      domain.ActionRegister,
		Code:        domain.CodeUserRegister,
		Description: fmt.Sprintf("User %s registered an account", user.Fullname),
		Data:        domain.LogMeta{UserID: user.ID},
	}); logErr != nil {
		s.log.Warn().Err(logErr).Str("user_id", user.ID).Msg("failed to append register audit entry")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	if _, logErr := s.audit.Record(ctx, ports.LogEntryInput{
		UserID:      user.ID,
		Action:      domain.ActionLogin,
		Code:        domain.CodeUserLogin,
		Description: fmt.Sprintf("User %s logged in", user.Fullname),
		Data:        domain.LogMeta{UserID: user.ID},
	}); logErr != nil {
		s.log.Warn().Err(logErr).Str("user_id", user.ID).Msg("failed to append login audit entry")
	}

	return token, user, nil
}

// Logout records the audit entry; the token itself is discarded client-side.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if _, logErr := s.audit.Record(ctx, ports.LogEntryInput{
		UserID:      user.ID,
		Action:      domain.ActionLogout,
		Code:        domain.CodeUserLogout,
		Description: fmt.Sprintf("User %s logged out", user.Fullname),
		Data:        domain.LogMeta{UserID: user.ID},
	}); logErr != nil {
		s.log.Warn().Err(logErr).Str("user_id", user.ID).Msg("failed to append logout audit entry")
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"admin":    user.Data.IsAdmin,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
