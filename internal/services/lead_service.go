package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

type LeadService struct {
	Repo       *repositories.LeadRepository
	ClientRepo *repositories.ClientRepository
	Notifier   Notifier // nil when notifications are off
}

func NewLeadService(repo *repositories.LeadRepository, clientRepo *repositories.ClientRepository, notifier Notifier) *LeadService {
	return &LeadService{Repo: repo, ClientRepo: clientRepo, Notifier: notifier}
}

func (s *LeadService) Create(lead *models.Lead) error {
	if lead.Stage == "" {
		lead.Stage = "Lead"
	}
	if !models.ValidLeadStage(lead.Stage) {
		return fmt.Errorf("unknown stage %q", lead.Stage)
	}
	client, err := s.ClientRepo.GetByID(lead.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.New("client not found")
	}
	id, err := s.Repo.Create(lead)
	if err != nil {
		return err
	}
	lead.ID = int(id)

	if s.Notifier != nil {
		msg := fmt.Sprintf("New lead #%d for %s (source: %s)", lead.ID, client.CompanyName, lead.LeadSource)
		if err := s.Notifier.Notify(msg); err != nil {
			logrus.Warnf("[leads][create] notification failed: %v", err)
		}
	}
	return nil
}

func (s *LeadService) List(stage string, assignedTo int) ([]*models.Lead, error) {
	if stage != "" && !models.ValidLeadStage(stage) {
		return nil, fmt.Errorf("unknown stage %q", stage)
	}
	return s.Repo.List(stage, assignedTo)
}

func (s *LeadService) GetByID(id int) (*models.Lead, error) {
	return s.Repo.GetByID(id)
}

// UpdateStage moves a lead through the funnel. Backward moves and
// moves out of a final stage are rejected.
func (s *LeadService) UpdateStage(id int, to string) error {
	if !models.ValidLeadStage(to) {
		return fmt.Errorf("unknown stage %q", to)
	}
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if lead == nil {
		return errors.New("lead not found")
	}
	if !canAdvanceStage(lead.Stage, to) {
		return fmt.Errorf("invalid stage transition %s -> %s", lead.Stage, to)
	}
	return s.Repo.UpdateStage(id, to)
}
