package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"pathfinder-backend-V1.0/internal/repository"
	"pathfinder-backend-V1.0/utilities"
)

type ReportService interface {
	GenerateReport(sessionID string) (string, error)
}

type reportService struct {
	recoRepo  repository.RecommendationRepository
	outputDir string
}

func NewReportService(recoRepo repository.RecommendationRepository) ReportService {
	return &reportService{recoRepo: recoRepo, outputDir: filepath.Join("working", "reports")}
}

// InitReportEventListeners pre-renders the PDF as soon as a run completes so
// the download endpoint usually serves a file that already exists.
func InitReportEventListeners(recoRepo repository.RecommendationRepository) {
	utilities.GlobalEventBus.Subscribe("recommendation_completed", func(data interface{}) {
		sessionID, ok := data.(string)
		if !ok {
			utilities.Warn("Invalid session id received for report generation")
			return
		}

		reportService := NewReportService(recoRepo)
		if _, err := reportService.GenerateReport(sessionID); err != nil {
			utilities.Error("Error generating report for session %s: %v", sessionID, err)
		}
	})
}

// GenerateReport renders the run's ranked careers into a PDF and returns the
// file path. Re-generating an existing report is cheap and overwrites it.
func (s *reportService) GenerateReport(sessionID string) (string, error) {
	run, err := s.recoRepo.GetRunBySessionID(sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch run: %w", err)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 16)
	pdf.AddPage()

	pdf.Cell(40, 10, "Career Recommendation Report")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Student: %s", run.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Stream: %s    Class: %s", run.Stream, run.ClassLevel))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", run.CreatedAt.Format("02 Jan 2006 15:04")))
	pdf.Ln(12)

	for _, res := range run.Results {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("%d. %s (%.1f/10)", res.Rank, res.Title, res.CompositeScore))
		pdf.Ln(8)

		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 6, fmt.Sprintf("%s  |  Domain: %s", res.MatchStrength, res.Domain))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, res.Summary, "", "L", false)
		for _, reason := range strings.Split(res.Reasons, "\n") {
			if reason == "" {
				continue
			}
			pdf.MultiCell(0, 6, "- "+reason, "", "L", false)
		}
		pdf.Ln(6)
	}

	outputPath := filepath.Join(s.outputDir, fmt.Sprintf("report_%s.pdf", run.SessionID))
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("failed to save PDF: %w", err)
	}

	return outputPath, nil
}
