package services

import (
	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

// DashboardService assembles the chart datasets behind the analytics
// page. All reads honor the sidebar FilterSet except the KPI company
// and sector counts and the funnel, which cover the whole database,
// matching the original page.
type DashboardService struct {
	Clients      *repositories.ClientRepository
	Interactions *repositories.InteractionRepository
	Leads        *repositories.LeadRepository
}

func NewDashboardService(
	clients *repositories.ClientRepository,
	interactions *repositories.InteractionRepository,
	leads *repositories.LeadRepository,
) *DashboardService {
	return &DashboardService{Clients: clients, Interactions: interactions, Leads: leads}
}

func (s *DashboardService) Summary(f models.FilterSet) (*models.DashboardSummary, error) {
	companies, sectors, err := s.Clients.DistinctCounts()
	if err != nil {
		return nil, err
	}
	interactions, err := s.Interactions.CountFiltered(f)
	if err != nil {
		return nil, err
	}
	return &models.DashboardSummary{
		CompaniesReached:   companies,
		InteractionsLogged: interactions,
		SectorsCovered:     sectors,
	}, nil
}

func (s *DashboardService) Timeseries(f models.FilterSet) ([]models.TimeseriesPoint, error) {
	return s.Interactions.DailyCounts(f)
}

func (s *DashboardService) Heatmap(f models.FilterSet) ([]models.HeatmapCell, error) {
	return s.Interactions.Crosstab(f)
}

func (s *DashboardService) CompaniesBySector() ([]models.SectorCount, error) {
	return s.Clients.CountBySector()
}

// Funnel returns the four pipeline stages in their fixed display
// order. Stages with no leads stay present with a zero count; stray
// stage values in the data are ignored.
func (s *DashboardService) Funnel() ([]models.FunnelStage, error) {
	counts, err := s.Leads.StageCounts()
	if err != nil {
		return nil, err
	}
	stages := make([]models.FunnelStage, 0, len(models.LeadStages))
	for _, stage := range models.LeadStages {
		stages = append(stages, models.FunnelStage{Stage: stage, Count: counts[stage]})
	}
	return stages, nil
}
