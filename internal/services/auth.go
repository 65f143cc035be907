package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"violation-tracker/internal/database"
	"violation-tracker/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes
const maxPasswordBytes = 72

// AuthService handles officer registration and login.
type AuthService struct {
	users database.UserRepository
	log   *zap.SugaredLogger
}

func NewAuthService(users database.UserRepository, log *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, log: log}
}

// Register creates an officer account with a bcrypt-hashed password.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		return nil, invalid("username", "username is required")
	case utf8.RuneCountInString(username) > 50:
		return nil, invalid("username", "username must be at most 50 characters")
	case password == "":
		return nil, invalid("password", "password is required")
	case len(password) > maxPasswordBytes:
		return nil, invalid("password", "password must be at most 72 bytes")
	}

	_, err := svc.users.GetByUsername(ctx, username)
	if err == nil {
		svc.log.Infow("registration rejected, username taken", "username", username)
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, database.ErrNotFound) {
		svc.log.Errorw("failed to check username", "username", username, "err", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		svc.log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.User{Username: username, PasswordHash: string(hash)}
	if err := svc.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		svc.log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}

	svc.log.Infow("officer registered", "user_id", user.ID, "username", username)
	return user, nil
}

// Login verifies the credentials. Unknown users and wrong passwords both
// produce ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			svc.log.Infow("login failed", "username", username)
			return nil, ErrInvalidCredentials
		}
		svc.log.Errorw("failed to load user", "username", username, "err", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		svc.log.Infow("login failed", "username", username)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
