package services

import (
	"errors"
	"fmt"

	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

type TargetService struct {
	Repo         *repositories.TargetRepository
	UserRepo     *repositories.UserRepository
	LeadRepo     *repositories.LeadRepository
	Interactions *repositories.InteractionRepository
	Meetings     *repositories.MeetingRepository
}

func NewTargetService(
	repo *repositories.TargetRepository,
	userRepo *repositories.UserRepository,
	leadRepo *repositories.LeadRepository,
	interactions *repositories.InteractionRepository,
	meetings *repositories.MeetingRepository,
) *TargetService {
	return &TargetService{
		Repo:         repo,
		UserRepo:     userRepo,
		LeadRepo:     leadRepo,
		Interactions: interactions,
		Meetings:     meetings,
	}
}

func (s *TargetService) Set(t *models.Target) error {
	if t.Month < 1 || t.Month > 12 {
		return fmt.Errorf("month %d out of range", t.Month)
	}
	if t.Year < 2000 || t.Year > 2100 {
		return fmt.Errorf("year %d out of range", t.Year)
	}
	user, err := s.UserRepo.GetByID(t.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	id, err := s.Repo.Upsert(t)
	if err != nil {
		return err
	}
	t.ID = int(id)
	return nil
}

func (s *TargetService) ListByUser(userID, year int) ([]*models.Target, error) {
	return s.Repo.ListByUser(userID, year)
}

// Performance compares a period's target against observed actuals:
// proposals logged as interactions, leads that reached the Client
// stage, and opportunity value of meetings held in the month.
func (s *TargetService) Performance(userID, month, year int) (*models.TargetPerformance, error) {
	target, err := s.Repo.Get(userID, month, year)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.New("no target set for this period")
	}

	proposals, err := s.Interactions.CountProposals(userID, month, year)
	if err != nil {
		return nil, err
	}
	newClients, err := s.LeadRepo.CountNewClients(userID, month, year)
	if err != nil {
		return nil, err
	}
	revenue, err := s.Meetings.HeldOpportunityValue(month, year)
	if err != nil {
		return nil, err
	}

	return &models.TargetPerformance{
		Target:           *target,
		NewClientsActual: newClients,
		ProposalsActual:  proposals,
		RevenueActual:    revenue,
	}, nil
}
