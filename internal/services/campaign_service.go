package services

import (
	"errors"
	"fmt"
	"strings"

	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

type CampaignService struct {
	Repo *repositories.CampaignRepository
}

func NewCampaignService(repo *repositories.CampaignRepository) *CampaignService {
	return &CampaignService{Repo: repo}
}

func (s *CampaignService) Create(campaign *models.Campaign) (int64, error) {
	campaign.Name = strings.TrimSpace(campaign.Name)
	if campaign.Name == "" {
		return 0, errors.New("campaign name is required")
	}
	if campaign.CType != "" && !models.ValidCampaignType(campaign.CType) {
		return 0, fmt.Errorf("unknown campaign type %q", campaign.CType)
	}
	if err := validateDateOrder(campaign.StartDate, campaign.EndDate); err != nil {
		return 0, err
	}
	return s.Repo.Create(campaign)
}

func (s *CampaignService) List() ([]*models.Campaign, error) {
	return s.Repo.List()
}

func (s *CampaignService) GetByID(id int) (*models.Campaign, error) {
	return s.Repo.GetByID(id)
}

// validateDateOrder accepts empty dates; when both are set the range
// must not be inverted. ISO strings compare lexicographically.
func validateDateOrder(start, end string) error {
	if start != "" && end != "" && end < start {
		return errors.New("end date before start date")
	}
	return nil
}
