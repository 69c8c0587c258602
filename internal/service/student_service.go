package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-records/internal/models"
	"github.com/noah-isme/student-records/internal/repository"
	appErrors "github.com/noah-isme/student-records/pkg/errors"
)

const (
	msgMandatory = "Name and Email are mandatory"
	msgChoice    = "Department and Year must be chosen from the list"
	msgNotFound  = "Student not found"
	msgDuplicate = "Email already exists"
	msgInvalidID = "Select a student ID"
)

const (
	mutationAdd    = "add"
	mutationUpdate = "update"
	mutationDelete = "delete"

	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeConflict = "conflict"
	outcomeFailed   = "failed"
)

type studentRepository interface {
	Insert(ctx context.Context, student *models.Student) (int64, error)
	ListAll(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	DeleteByID(ctx context.Context, id int64) error
}

type mutationRecorder interface {
	RecordMutation(action, outcome string)
}

// CreateStudentRequest holds the Add form payload.
type CreateStudentRequest struct {
	Name       string `validate:"required"`
	Email      string `validate:"required"`
	Phone      string
	Department string `validate:"oneof=CSE AIML DS ECE"`
	Year       int    `validate:"oneof=1 2 3 4"`
}

// UpdateStudentRequest holds the Update form payload. Name and Email are only
// checked when StudentServiceConfig.EnforceUpdateValidation is set.
type UpdateStudentRequest struct {
	Name       string
	Email      string
	Phone      string
	Department string `validate:"oneof=CSE AIML DS ECE"`
	Year       int    `validate:"oneof=1 2 3 4"`
}

// StudentServiceConfig tunes StudentService behaviour.
type StudentServiceConfig struct {
	EnforceUpdateValidation bool
}

// StudentService implements the four record use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
	metrics   mutationRecorder
	cfg       StudentServiceConfig
}

// NewStudentService constructs the student service. validate, logger and metrics may be nil.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger, metrics mutationRecorder, cfg StudentServiceConfig) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger, metrics: metrics, cfg: cfg}
}

// List returns every student in id order.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// IDs returns the ids of every student in id order.
func (s *StudentService) IDs(ctx context.Context) ([]int64, error) {
	students, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(students))
	for _, student := range students {
		ids = append(ids, student.ID)
	}
	return ids, nil
}

// Get loads one student.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, msgInvalidID)
	}
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, "failed to load student")
	}
	return student, nil
}

// Create validates and inserts a new student.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		s.record(mutationAdd, outcomeRejected)
		return nil, validationError(err)
	}
	student := &models.Student{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Year:       req.Year,
	}
	if _, err := s.repo.Insert(ctx, student); err != nil {
		s.recordFailure(mutationAdd, err)
		s.logger.Warn("create student failed", zap.String("email", req.Email), zap.Error(err))
		return nil, mapStoreError(err, "failed to create student")
	}
	s.record(mutationAdd, outcomeOK)
	s.logger.Info("student created", zap.Int64("id", student.ID), zap.String("email", student.Email))
	return student, nil
}

// Update overwrites all editable fields of the student with the given id.
// The store treats an unknown id as a no-op.
func (s *StudentService) Update(ctx context.Context, id int64, req UpdateStudentRequest) (*models.Student, error) {
	if id <= 0 {
		s.record(mutationUpdate, outcomeRejected)
		return nil, appErrors.Clone(appErrors.ErrValidation, msgInvalidID)
	}
	if s.cfg.EnforceUpdateValidation && (req.Name == "" || req.Email == "") {
		s.record(mutationUpdate, outcomeRejected)
		return nil, appErrors.Clone(appErrors.ErrValidation, msgMandatory)
	}
	if err := s.validator.Struct(req); err != nil {
		s.record(mutationUpdate, outcomeRejected)
		return nil, validationError(err)
	}
	student := &models.Student{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Year:       req.Year,
	}
	if err := s.repo.Update(ctx, student); err != nil {
		s.recordFailure(mutationUpdate, err)
		s.logger.Warn("update student failed", zap.Int64("id", id), zap.Error(err))
		return nil, mapStoreError(err, "failed to update student")
	}
	s.record(mutationUpdate, outcomeOK)
	s.logger.Info("student updated", zap.Int64("id", id))
	return student, nil
}

// Delete removes the student with the given id. An unknown id is not an error.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		s.record(mutationDelete, outcomeRejected)
		return appErrors.Clone(appErrors.ErrValidation, msgInvalidID)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.recordFailure(mutationDelete, err)
		s.logger.Warn("delete student failed", zap.Int64("id", id), zap.Error(err))
		return mapStoreError(err, "failed to delete student")
	}
	s.record(mutationDelete, outcomeOK)
	s.logger.Info("student deleted", zap.Int64("id", id))
	return nil
}

func (s *StudentService) record(action, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordMutation(action, outcome)
	}
}

func (s *StudentService) recordFailure(action string, err error) {
	if errors.Is(err, repository.ErrDuplicateEmail) {
		s.record(action, outcomeConflict)
		return
	}
	s.record(action, outcomeFailed)
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Name" || fe.Field() == "Email" {
				return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgMandatory)
			}
		}
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgChoice)
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
}

func mapStoreError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrStudentNotFound):
		return appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, msgNotFound)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, msgDuplicate)
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
	}
}
