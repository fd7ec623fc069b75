package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"geronimocrm/internal/models"
)

// Generator renders report exports; an interface so handlers are easy
// to test with a stub.
type Generator interface {
	GenerateSummaryReport(data SummaryData) (string, error)
}

type SummaryData struct {
	Summary models.ReportSummary
	Start   string
	End     string
}

// ReportGenerator writes PDFs under RootDir using the built-in Arial
// font set.
type ReportGenerator struct {
	RootDir string
}

func NewReportGenerator(rootDir string) *ReportGenerator {
	return &ReportGenerator{RootDir: filepath.Clean(rootDir)}
}

func (g *ReportGenerator) GenerateSummaryReport(data SummaryData) (string, error) {
	filename := fmt.Sprintf("crm_summary_%s.pdf", time.Now().Format("20060102_150405"))
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Geronimo CRM Summary Report", false)
	pdf.SetAuthor("Geronimo CRM", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "CRM Summary Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	window := "all time"
	if data.Start != "" || data.End != "" {
		window = fmt.Sprintf("%s to %s", orDash(data.Start), orDash(data.End))
	}
	pdf.CellFormat(0, 7, fmt.Sprintf("Interaction window: %s   Generated: %s",
		window, time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	s := data.Summary
	g.sectionTitle(pdf, "Database totals")
	g.kvLine(pdf, "Clients", fmt.Sprintf("%d", s.Clients))
	g.kvLine(pdf, "Contacts", fmt.Sprintf("%d", s.Contacts))
	g.kvLine(pdf, "Campaigns", fmt.Sprintf("%d", s.Campaigns))
	g.kvLine(pdf, "Leads", fmt.Sprintf("%d", s.Leads))
	g.kvLine(pdf, "Interactions", fmt.Sprintf("%d", s.Interactions))
	g.kvLine(pdf, "Meetings", fmt.Sprintf("%d", s.Meetings))
	g.kvLine(pdf, "Tasks", fmt.Sprintf("%d", s.Tasks))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Interactions by action type")
	if len(s.InteractionsByType) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.CellFormat(0, 6, "No interactions in the selected window.", "", 1, "L", false, 0, "")
	}
	for _, lc := range s.InteractionsByType {
		g.kvLine(pdf, lc.Label, fmt.Sprintf("%d", lc.Count))
	}
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Pipeline funnel")
	for _, st := range s.PipelineByStage {
		g.kvLine(pdf, st.Stage, fmt.Sprintf("%d", st.Count))
	}
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Revenue")
	g.kvLine(pdf, "Client revenue", fmt.Sprintf("GHS %.2f", s.RevenueTotals.ClientRevenue))
	g.kvLine(pdf, "Potential value", fmt.Sprintf("GHS %.2f", s.RevenueTotals.PotentialValue))
	g.kvLine(pdf, "Held opportunity value", fmt.Sprintf("GHS %.2f", s.RevenueTotals.OpportunityValue))

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ===== helpers =====

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	filename = filepath.Base(filename) // safety
	return filepath.Join(g.RootDir, filename), nil
}

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(60, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
