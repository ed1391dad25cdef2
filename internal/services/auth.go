package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
	"github.com/bathroomfinder/bathroom-finder/internal/models"
	"github.com/bathroomfinder/bathroom-finder/internal/password"
	"github.com/bathroomfinder/bathroom-finder/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrWeakPassword       = errors.New("password does not meet strength requirements")
	ErrInvalidEmail       = errors.New("invalid email format")
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetAll(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
}

// TokenIssuer defines the token operations used by the auth service.
type TokenIssuer interface {
	Generate(ctx context.Context, subject string) (string, error)
	GetSubject(ctx context.Context, tokenString string) (string, error)
}

// AuthService handles registration, login and token-based identity.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// validatePassword enforces the password strength rules applied at account
// creation: at least 8 characters with upper, lower, digit and special.
func validatePassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, c := range p {
		switch {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, c):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Register creates a new account and issues a token for it. Username and
// email are lowercased before the uniqueness check and storage. The
// existence pre-check is best effort; the storage unique index is the
// authoritative guard.
func (svc *AuthService) Register(ctx context.Context, username, email, plainPassword string, firstName, lastName *string) (string, *models.UserDB, error) {
	username = strings.ToLower(username)
	email = strings.ToLower(email)

	if !emailRegexp.MatchString(email) {
		return "", nil, ErrInvalidEmail
	}
	if !validatePassword(plainPassword) {
		return "", nil, ErrWeakPassword
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return "", nil, ErrUserAlreadyExists
	}

	hashed, err := password.Hash(plainPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	now := time.Now()
	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			logger.Log.Errorw("user already exists", "username", username, "email", email)
			return "", nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, &user, nil
}

// Login authenticates a user by username and returns a token. A missing
// account and a bad password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, plainPassword string) (string, *models.UserDB, error) {
	username = strings.ToLower(username)

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if !password.Verify(plainPassword, user.PasswordHash) {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// Authenticate resolves a bearer token to its account. Every failure,
// whether a bad token or a missing account, is reported as ErrUnauthorized.
func (svc *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.UserDB, error) {
	email, err := svc.jwt.GetSubject(ctx, tokenString)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to get user by token subject", "err", err)
		return nil, ErrUnauthorized
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}
