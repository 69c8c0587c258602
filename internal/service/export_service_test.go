package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/student-records/internal/models"
	appErrors "github.com/noah-isme/student-records/pkg/errors"
	"github.com/noah-isme/student-records/pkg/export"
)

type failingPDF struct{}

func (failingPDF) Render(data export.Dataset, title string) ([]byte, error) {
	return nil, errors.New("font missing")
}

func seededStudentService() *StudentService {
	repo := newMockStudentRepo(
		models.Student{ID: 1, Name: "Asha", Email: "asha@x.com", Phone: "555", Department: "CSE", Year: 2},
		models.Student{ID: 2, Name: "Ravi", Email: "ravi@x.com", Department: "ECE", Year: 4},
	)
	return NewStudentService(repo, nil, nil, nil, StudentServiceConfig{})
}

func TestExportServiceCSV(t *testing.T) {
	svc := NewExportService(seededStudentService(), zap.NewNop(), nil, nil)

	out, err := svc.CSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Email,Phone,Department,Year\n1,Asha,asha@x.com,555,CSE,2\n2,Ravi,ravi@x.com,,ECE,4\n", string(out))
}

func TestExportServicePDF(t *testing.T) {
	svc := NewExportService(seededStudentService(), nil, nil, nil)

	out, err := svc.PDF(context.Background())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestExportServiceRenderFailure(t *testing.T) {
	svc := NewExportService(seededStudentService(), nil, nil, failingPDF{})

	_, err := svc.PDF(context.Background())
	requireAppError(t, err, appErrors.ErrInternal.Code, "failed to export students")
}

func TestExportServiceListFailure(t *testing.T) {
	repo := newMockStudentRepo()
	repo.err = errors.New("database is locked")
	svc := NewExportService(NewStudentService(repo, nil, nil, nil, StudentServiceConfig{}), nil, nil, nil)

	_, err := svc.CSV(context.Background())
	requireAppError(t, err, appErrors.ErrInternal.Code, "failed to list students")
}
