package services

import (
	"errors"
	"fmt"

	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

type InteractionService struct {
	Repo       *repositories.InteractionRepository
	ClientRepo *repositories.ClientRepository
}

func NewInteractionService(repo *repositories.InteractionRepository, clientRepo *repositories.ClientRepository) *InteractionService {
	return &InteractionService{Repo: repo, ClientRepo: clientRepo}
}

func (s *InteractionService) Create(in *models.Interaction) error {
	if !models.ValidActionType(in.ActionType) {
		return fmt.Errorf("unknown action type %q", in.ActionType)
	}
	if err := validISODate(in.InteractionDate); err != nil {
		return fmt.Errorf("interaction_date: %w", err)
	}
	if in.NextActionDate != "" {
		if err := validISODate(in.NextActionDate); err != nil {
			return fmt.Errorf("next_action_date: %w", err)
		}
	}
	client, err := s.ClientRepo.GetByID(in.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.New("client not found")
	}
	id, err := s.Repo.Create(in)
	if err != nil {
		return err
	}
	in.ID = int(id)
	return nil
}

func (s *InteractionService) ListFiltered(f models.FilterSet) ([]models.InteractionRow, error) {
	return s.Repo.ListFiltered(f)
}
