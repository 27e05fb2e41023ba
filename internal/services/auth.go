package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/skomarov/resume-builder/internal/logger"
	"github.com/skomarov/resume-builder/internal/models"
)

// Error variables
var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByCredentials(ctx context.Context, username, passwordHash string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, firstName, lastName, email, phone string) (int64, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// hashPassword returns the hex-encoded SHA-256 digest of the raw password.
// Unsalted, single round; see DESIGN.md.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new user and returns its id. Username and email
// uniqueness are checked before the insert, each with its own error.
func (svc *AuthService) Register(ctx context.Context, username, password, firstName, lastName, email, phone string) (int64, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return 0, err
	}
	if user != nil {
		logger.Log.Errorw("username already exists", "username", username)
		return 0, ErrUsernameExists
	}

	user, err = svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return 0, err
	}
	if user != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return 0, ErrEmailExists
	}

	id, err := svc.writer.Save(ctx, username, hashPassword(password), firstName, lastName, email, phone)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return id, nil
}

// Login authenticates a user by matching username and password hash in a
// single lookup. Unknown username and wrong password both yield
// ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByCredentials(ctx, username, hashPassword(password))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
