package service

import (
	"context"
	"errors"
	"strings"
	"time"

	dom "Platform/internal/domain"
	"Platform/internal/repo"
	"Platform/internal/token"
	"Platform/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingField       = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// IssuedToken is the result of a successful login or registration.
type IssuedToken struct {
	Token     string
	UserID    int64
	Username  string
	Email     string
	ExpiresIn int64 // seconds
}

// AuthService authenticates users and issues tokens. Unknown username and
// wrong password both map to ErrInvalidCredentials so the response does not
// reveal which of the two failed.
type AuthService struct {
	repo  repo.UserRepo
	codec *token.Codec
	ttl   time.Duration
}

// NewAuthService returns a new AuthService issuing tokens valid for ttl.
func NewAuthService(r repo.UserRepo, codec *token.Codec, ttl time.Duration) *AuthService {
	return &AuthService{repo: r, codec: codec, ttl: ttl}
}

// Authenticate checks username and password and issues a token.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (IssuedToken, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return IssuedToken{}, ErrMissingField
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return IssuedToken{}, ErrInvalidCredentials
		}
		return IssuedToken{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return IssuedToken{}, ErrInvalidCredentials
	}
	return s.issue(u)
}

// Register creates a new user with a hashed password and issues a token
// exactly as Authenticate does. The email follows the demo policy
// <username>@example.com. Duplicate usernames are caught by the store's
// unique constraint, so concurrent registrations cannot both succeed.
func (s *AuthService) Register(ctx context.Context, username, password string) (IssuedToken, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return IssuedToken{}, ErrMissingField
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return IssuedToken{}, err
	}
	u, err := s.repo.Create(ctx, username, string(hash), username+"@example.com")
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return IssuedToken{}, ErrUsernameTaken
		}
		return IssuedToken{}, err
	}
	return s.issue(u)
}

// GetUserByID returns a single user.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (dom.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// ListUsers returns all users.
func (s *AuthService) ListUsers(ctx context.Context) ([]dom.User, error) {
	return s.repo.List(ctx)
}

func (s *AuthService) issue(u dom.User) (IssuedToken, error) {
	raw, err := s.codec.Issue(u.ID, u.Username, s.ttl)
	if err != nil {
		return IssuedToken{}, err
	}
	return IssuedToken{
		Token:     raw,
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		ExpiresIn: int64(s.ttl / time.Second),
	}, nil
}
