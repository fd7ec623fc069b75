package services

import (
	"errors"
	"fmt"
	"strings"

	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

type MeetingService struct {
	Repo       *repositories.MeetingRepository
	ClientRepo *repositories.ClientRepository
}

func NewMeetingService(repo *repositories.MeetingRepository, clientRepo *repositories.ClientRepository) *MeetingService {
	return &MeetingService{Repo: repo, ClientRepo: clientRepo}
}

func (s *MeetingService) Create(m *models.Meeting) error {
	if strings.TrimSpace(m.Purpose) == "" {
		return errors.New("purpose is required")
	}
	if err := validISODate(m.MeetingDate); err != nil {
		return fmt.Errorf("meeting_date: %w", err)
	}
	if m.Status == "" {
		m.Status = "Planned"
	}
	if !models.ValidMeetingStatus(m.Status) {
		return fmt.Errorf("unknown meeting status %q", m.Status)
	}
	client, err := s.ClientRepo.GetByID(m.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.New("client not found")
	}
	id, err := s.Repo.Create(m)
	if err != nil {
		return err
	}
	m.ID = int(id)
	return nil
}

func (s *MeetingService) List(clientID int, status string) ([]*models.Meeting, error) {
	if status != "" && !models.ValidMeetingStatus(status) {
		return nil, fmt.Errorf("unknown meeting status %q", status)
	}
	return s.Repo.List(clientID, status)
}

func (s *MeetingService) UpdateStatus(id int, status string) error {
	if !models.ValidMeetingStatus(status) {
		return fmt.Errorf("unknown meeting status %q", status)
	}
	meeting, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if meeting == nil {
		return errors.New("meeting not found")
	}
	return s.Repo.UpdateStatus(id, status)
}
