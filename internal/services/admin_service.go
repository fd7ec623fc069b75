package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"geronimocrm/internal/database"
)

// AdminService owns the destructive reset. The operation is two-step:
// a confirmation token is requested first, then spent together with
// an explicit confirm flag. Tokens are single-use and expire quickly.
type AdminService struct {
	Store *database.Store

	mu      sync.Mutex
	pending map[string]time.Time
	ttl     time.Duration
}

var (
	ErrResetNotConfirmed = errors.New("reset not confirmed")
	ErrResetTokenInvalid = errors.New("invalid or expired reset token")
)

func NewAdminService(store *database.Store) *AdminService {
	return &AdminService{
		Store:   store,
		pending: make(map[string]time.Time),
		ttl:     5 * time.Minute,
	}
}

// RequestReset issues a fresh confirmation token.
func (s *AdminService) RequestReset() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.pending[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()
	return token
}

func (s *AdminService) consumeToken(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.pending[token]
	if !ok {
		return false
	}
	delete(s.pending, token)
	return time.Now().Before(exp)
}

// Reset drops and recreates the whole schema. Nothing happens unless
// both the confirm flag and a live token are presented.
func (s *AdminService) Reset(token string, confirm bool) error {
	if !confirm {
		return ErrResetNotConfirmed
	}
	if !s.consumeToken(token) {
		return ErrResetTokenInvalid
	}
	logrus.Warn("[admin][reset] confirmed, erasing database")
	if err := database.Reset(s.Store.DB, HashPassword); err != nil {
		return err
	}
	s.Store.InvalidateReads()
	return nil
}
