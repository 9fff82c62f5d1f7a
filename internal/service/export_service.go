package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
	appErrors "github.com/noah-isme/lms-api/pkg/errors"
	"github.com/noah-isme/lms-api/pkg/export"
)

// Export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var rosterHeaders = []string{"UID", "Last Name", "First Name", "Date of Birth", "Grade"}

type rosterSource interface {
	Roster(ctx context.Context, key models.ClassKey) ([]dto.RosterItem, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered document ready to be streamed to the caller.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders class rosters as CSV or PDF.
type ExportService struct {
	rosters rosterSource
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(rosters rosterSource, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{rosters: rosters, csv: csv, pdf: pdf, logger: logger}
}

// Roster renders the roster of a class in the requested format.
func (s *ExportService) Roster(ctx context.Context, key models.ClassKey, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != ExportFormatCSV && format != ExportFormatPDF {
		appErr := appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
		appErr.Fields = map[string]string{"format": "format must be one of csv or pdf"}
		return nil, appErr
	}

	items, err := s.rosters.Roster(ctx, key)
	if err != nil {
		return nil, err
	}
	dataset := export.Dataset{Headers: rosterHeaders, Rows: make([]map[string]string, 0, len(items))}
	for _, item := range items {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"UID":           item.UID,
			"Last Name":     item.LastName,
			"First Name":    item.FirstName,
			"Date of Birth": item.DOB.Format("2006-01-02"),
			"Grade":         item.Grade,
		})
	}

	title := fmt.Sprintf("%s %d %s %d Roster", key.Subject, key.Number, key.Season, key.Year)
	file := &ExportFile{Filename: rosterFilename(key, format)}
	switch format {
	case ExportFormatCSV:
		file.ContentType = "text/csv"
		file.Payload, err = s.csv.Render(dataset)
	case ExportFormatPDF:
		file.ContentType = "application/pdf"
		file.Payload, err = s.pdf.Render(dataset, title)
	}
	if err != nil {
		s.logger.Error("render roster export", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render roster")
	}
	return file, nil
}

func rosterFilename(key models.ClassKey, format string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".")
	base := fmt.Sprintf("%s_%d_%s_%d_roster", key.Subject, key.Number, key.Season, key.Year)
	return strings.ToLower(replacer.Replace(base)) + "." + format
}
