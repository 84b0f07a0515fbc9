package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"todo_manager/internal/models"
	"todo_manager/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// maxIdentityLen matches the width of the username and email columns.
const maxIdentityLen = 100

// AuthService handles user auth logic
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(repo repository.Users, opts Options) *AuthService {
	opts = opts.withDefaults()
	return &AuthService{
		users:      repo,
		signingKey: []byte(opts.SigningKey),
		tokenTTL:   opts.TokenTTL,
		bcryptCost: opts.BcryptCost,
		now:        opts.Now,
	}
}

// SignUp validates the input, rejects taken usernames/emails, hashes the password and creates a new user.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (int, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || strings.TrimSpace(password) == "" {
		return 0, ErrMissingCredentials
	}
	if utf8.RuneCountInString(username) > maxIdentityLen || utf8.RuneCountInString(email) > maxIdentityLen {
		return 0, ErrFieldTooLong
	}

	if u, err := s.users.GetByUsername(ctx, username); err != nil {
		return 0, err
	} else if u != nil {
		return 0, ErrUsernameTaken
	}
	if u, err := s.users.GetByEmail(ctx, email); err != nil {
		return 0, err
	} else if u != nil {
		return 0, ErrEmailTaken
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return 0, err
	}

	id, err := s.users.Create(ctx, username, email, hash)
	if errors.Is(err, repository.ErrDuplicate) {
		// lost a race with a concurrent registration
		if u, lookupErr := s.users.GetByUsername(ctx, username); lookupErr == nil && u != nil {
			return 0, ErrUsernameTaken
		}
		return 0, ErrEmailTaken
	}
	return id, err
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// GenerateToken validates credentials and returns a signed session token
// together with the id of the user it was issued for.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, int, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", 0, err
	}
	if u == nil {
		return "", 0, ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", 0, ErrInvalidPassword
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", 0, err
	}
	return token, u.ID, nil
}

// ParseToken parses a session token and returns the user id it was issued for.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// GetUser resolves a user id taken from a session token. A user that no longer exists yields ErrUserNotFound.
func (s *AuthService) GetUser(ctx context.Context, id int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// helper: hash password safely
func (s *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}
