package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/student-records/internal/models"
	appErrors "github.com/noah-isme/student-records/pkg/errors"
	"github.com/noah-isme/student-records/pkg/export"
)

// StudentColumns is the column order of the student table everywhere it is shown.
var StudentColumns = []string{"ID", "Name", "Email", "Phone", "Department", "Year"}

type studentLister interface {
	List(ctx context.Context) ([]models.Student, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders the student table as downloadable files.
type ExportService struct {
	students studentLister
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
}

// NewExportService constructs an ExportService. Nil renderers fall back to the defaults.
func NewExportService(students studentLister, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{students: students, csv: csv, pdf: pdf, logger: logger}
}

// CSV renders every student as CSV.
func (s *ExportService) CSV(ctx context.Context) ([]byte, error) {
	data, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.csv.Render(data)
	if err != nil {
		s.logger.Error("render students csv", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to export students")
	}
	return out, nil
}

// PDF renders every student as a PDF table.
func (s *ExportService) PDF(ctx context.Context) ([]byte, error) {
	data, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.pdf.Render(data, "All Students")
	if err != nil {
		s.logger.Error("render students pdf", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to export students")
	}
	return out, nil
}

func (s *ExportService) dataset(ctx context.Context) (export.Dataset, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return export.Dataset{}, err
	}
	rows := make([][]string, 0, len(students))
	for _, st := range students {
		rows = append(rows, []string{
			strconv.FormatInt(st.ID, 10),
			st.Name,
			st.Email,
			st.Phone,
			st.Department,
			strconv.Itoa(st.Year),
		})
	}
	return export.Dataset{Headers: StudentColumns, Rows: rows}, nil
}
