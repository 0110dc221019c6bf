package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/models"
	"github.com/arvyax/wellness-sessions/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_ ]+$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)
}

// TokenGenerator defines an interface for generating session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

func validateRegisterInput(username, email, password string) ValidationErrors {
	var errs ValidationErrors

	if len(username) < 3 || len(username) > 30 {
		errs = append(errs, FieldError{Field: "username", Message: "Username must be between 3 and 30 characters"})
	} else if !usernamePattern.MatchString(username) {
		errs = append(errs, FieldError{Field: "username", Message: "Username can only contain letters, numbers, underscores, and spaces"})
	}

	if !isValidEmail(email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please provide a valid email"})
	}

	if len(password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters long"})
	}

	return errs
}

// Register creates a new user with a bcrypt-hashed password and returns a
// session token together with the user's public profile. Fails with
// ErrUserAlreadyExists when the email or username is taken.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (string, *models.UserPublic, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)

	if errs := validateRegisterInput(username, email, password); len(errs) > 0 {
		return "", nil, errs
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	userID, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		// Two registrations racing past the existence check resolve here.
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return "", nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, &models.UserPublic{ID: userID, Username: username, Email: email}, nil
}

// Login authenticates a user by email and password and returns a session
// token with the public profile. Unknown email and wrong password both fail
// with ErrInvalidCredentials, with no distinguishable signal.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserPublic, error) {
	email = normalizeEmail(email)

	var errs ValidationErrors
	if !isValidEmail(email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	}
	if len(errs) > 0 {
		return "", nil, errs
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user.Public(), nil
}
