package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"geronimocrm/internal/middleware"
	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

// passwordSalt is the single fixed salt the stored hashes were built
// with. Weak on purpose: it matches the seeded database, and changing
// it would lock out every existing account. Any migration must flag
// this rather than silently rehash.
const passwordSalt = "streamlit_crm_demo_salt"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

type AuthService struct {
	Users    *repositories.UserRepository
	TokenTTL time.Duration
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{Users: users, TokenTTL: 12 * time.Hour}
}

// HashPassword hashes with the fixed salt prepended, hex-encoded.
func HashPassword(pw string) string {
	sum := sha256.Sum256([]byte(passwordSalt + pw))
	return hex.EncodeToString(sum[:])
}

// Authenticate resolves username/password to a session identity.
// Returns ErrUserNotFound when no row matches the username and
// ErrIncorrectPassword when the hash comparison fails.
func (s *AuthService) Authenticate(username, password string) (*models.Session, error) {
	user, err := s.Users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if HashPassword(password) != user.PasswordHash {
		return nil, ErrIncorrectPassword
	}
	return &models.Session{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// IssueToken signs a bearer token carrying the session identity.
func (s *AuthService) IssueToken(sess *models.Session) (string, error) {
	claims := middleware.Claims{
		UserID:   sess.UserID,
		Username: sess.Username,
		Role:     sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.JWTKey)
}
