package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"buddyscript/middleware"
	"buddyscript/models"
	"buddyscript/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenTTL   = time.Hour
	bcryptCost = 12
)

// AuthService issues the opaque bearer credential the rest of the system
// consumes. Registration conflicts are real conflicts (unlike likes,
// emails are not idempotent).
type AuthService struct {
	users     UserStore
	jwtSecret []byte
}

func NewAuthService(users UserStore, jwtSecret []byte) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflictError("Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Two registrations can race past the FindByEmail check; the
		// unique index settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewConflictError("Email is already registered")
		}
		return nil, err
	}

	return s.authResponse(user)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewUnauthorizedError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, utils.NewUnauthorizedError("Invalid email or password")
	}

	return s.authResponse(user)
}

func (s *AuthService) authResponse(user *models.User) (*AuthResponse, error) {
	now := time.Now()
	claims := &middleware.Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User: AuthUserDTO{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		Token:            token,
		ExpiresInSeconds: int(tokenTTL.Seconds()),
	}, nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return utils.NewValidationError("Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return utils.NewValidationError("Password must be 72 characters or fewer")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return utils.NewValidationError("Password must include uppercase, lowercase, number and symbol characters")
	}
	return nil
}
