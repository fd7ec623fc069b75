package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"geronimocrm/internal/models"
	"geronimocrm/internal/pdf"
	"geronimocrm/internal/repositories"
)

type ReportService struct {
	Clients      *repositories.ClientRepository
	Contacts     *repositories.ContactRepository
	Campaigns    *repositories.CampaignRepository
	Leads        *repositories.LeadRepository
	Interactions *repositories.InteractionRepository
	Meetings     *repositories.MeetingRepository
	Tasks        *repositories.TaskRepository

	PDF pdf.Generator
}

func NewReportService(
	clients *repositories.ClientRepository,
	contacts *repositories.ContactRepository,
	campaigns *repositories.CampaignRepository,
	leads *repositories.LeadRepository,
	interactions *repositories.InteractionRepository,
	meetings *repositories.MeetingRepository,
	tasks *repositories.TaskRepository,
	gen pdf.Generator,
) *ReportService {
	return &ReportService{
		Clients:      clients,
		Contacts:     contacts,
		Campaigns:    campaigns,
		Leads:        leads,
		Interactions: interactions,
		Meetings:     meetings,
		Tasks:        tasks,
		PDF:          gen,
	}
}

// Summary assembles the aggregate snapshot for the Reports page.
// start/end narrow the interaction breakdown only; entity counts and
// revenue cover the whole database.
func (s *ReportService) Summary(start, end string) (*models.ReportSummary, error) {
	out := &models.ReportSummary{}
	var err error

	if out.Clients, err = s.Clients.Count(); err != nil {
		return nil, err
	}
	if out.Contacts, err = s.Contacts.Count(); err != nil {
		return nil, err
	}
	if out.Campaigns, err = s.Campaigns.Count(); err != nil {
		return nil, err
	}
	if out.Leads, err = s.Leads.Count(); err != nil {
		return nil, err
	}
	if out.Interactions, err = s.Interactions.Count(); err != nil {
		return nil, err
	}
	if out.Meetings, err = s.Meetings.Count(); err != nil {
		return nil, err
	}
	if out.Tasks, err = s.Tasks.Count(); err != nil {
		return nil, err
	}

	if out.InteractionsByType, err = s.Interactions.CountsByActionType(start, end); err != nil {
		return nil, err
	}

	stageCounts, err := s.Leads.StageCounts()
	if err != nil {
		return nil, err
	}
	for _, stage := range models.LeadStages {
		out.PipelineByStage = append(out.PipelineByStage, models.FunnelStage{Stage: stage, Count: stageCounts[stage]})
	}

	revenue, potential, err := s.Clients.RevenueTotals()
	if err != nil {
		return nil, err
	}
	opportunity, err := s.Meetings.HeldOpportunityValue(0, 0)
	if err != nil {
		return nil, err
	}
	out.RevenueTotals = models.RevenueSummary{
		ClientRevenue:    revenue,
		PotentialValue:   potential,
		OpportunityValue: opportunity,
	}
	return out, nil
}

// ExportClientsCSV streams the client table as CSV.
func (s *ReportService) ExportClientsCSV(w io.Writer) error {
	clients, err := s.Clients.List()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := []string{"id", "company_name", "sector", "region", "location", "size", "revenue", "potential_value", "notes", "created_at"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range clients {
		rec := []string{
			strconv.Itoa(c.ID),
			c.CompanyName,
			c.Sector,
			c.Region,
			c.Location,
			c.Size,
			strconv.FormatFloat(c.Revenue, 'f', 2, 64),
			strconv.FormatFloat(c.PotentialValue, 'f', 2, 64),
			c.Notes,
			c.CreatedAt.Format("2006-01-02"),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportSummaryPDF renders the summary snapshot to a PDF file and
// returns its path.
func (s *ReportService) ExportSummaryPDF(start, end string) (string, error) {
	summary, err := s.Summary(start, end)
	if err != nil {
		return "", err
	}
	return s.PDF.GenerateSummaryReport(pdf.SummaryData{
		Summary: *summary,
		Start:   start,
		End:     end,
	})
}
