package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

type UserService struct {
	Repo  *repositories.UserRepository
	Email EmailService // nil when SMTP is not configured
}

func NewUserService(repo *repositories.UserRepository, email EmailService) *UserService {
	return &UserService{Repo: repo, Email: email}
}

// Create registers a user with a plaintext password, hashing it with
// the fixed-salt scheme. Usernames are unique; roles come from the
// fixed role set.
func (s *UserService) Create(username, password, role, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, errors.New("password is required")
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	existing, err := s.Repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username %q already taken", username)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: HashPassword(password),
		Role:         role,
	}
	id, err := s.Repo.Create(user)
	if err != nil {
		return nil, err
	}
	user.ID = int(id)

	if s.Email != nil && strings.TrimSpace(email) != "" {
		if err := s.Email.SendWelcomeEmail(email, username); err != nil {
			// warn but do not fail creation
			logrus.Warnf("[users][create] welcome email to %s failed: %v", email, err)
		}
	}
	return user, nil
}

func (s *UserService) List() ([]*models.User, error) {
	return s.Repo.List()
}

func (s *UserService) Count() (int, error) {
	return s.Repo.Count()
}
