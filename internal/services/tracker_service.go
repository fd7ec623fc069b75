package services

import (
	"errors"
	"fmt"
	"strings"

	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

type TrackerService struct {
	Repo *repositories.TrackerRepository
}

func NewTrackerService(repo *repositories.TrackerRepository) *TrackerService {
	return &TrackerService{Repo: repo}
}

func (s *TrackerService) Create(e *models.TrackerEntry) (int64, error) {
	e.CompanyName = strings.TrimSpace(e.CompanyName)
	if e.CompanyName == "" {
		return 0, errors.New("company name is required")
	}
	return s.Repo.Create(e)
}

// Import validates every row before any statement runs, so a bad row
// rejects the whole batch with zero writes.
func (s *TrackerService) Import(entries []*models.TrackerEntry) error {
	if len(entries) == 0 {
		return errors.New("no rows to import")
	}
	for i, e := range entries {
		e.CompanyName = strings.TrimSpace(e.CompanyName)
		if e.CompanyName == "" {
			return fmt.Errorf("row %d: company name is required", i)
		}
	}
	return s.Repo.CreateBatch(entries)
}

func (s *TrackerService) List(week, sector string) ([]*models.TrackerEntry, error) {
	return s.Repo.List(week, sector)
}
