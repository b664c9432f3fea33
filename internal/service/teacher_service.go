package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/repository"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

// TeacherService manages the teacher directory.
type TeacherService struct {
	teachers  *repository.TeacherRepository
	store     *repository.ScheduleStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(teachers *repository.TeacherRepository, store *repository.ScheduleStore, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{teachers: teachers, store: store, validator: validate, logger: logger}
}

// Create registers a teacher after validating the payload.
func (s *TeacherService) Create(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	teacher := &models.Teacher{
		Name:     req.Name,
		Subjects: append([]string(nil), req.Subjects...),
		Classes:  append([]string(nil), req.Classes...),
	}
	if err := s.teachers.Create(teacher); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "a teacher with this name already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}

	s.logger.Info("teacher created", zap.String("teacher_id", teacher.ID), zap.String("name", teacher.Name))
	return teacher, nil
}

// Get returns one teacher by ID.
func (s *TeacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.teachers.FindByID(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return teacher, nil
}

// List returns all teachers ordered by name.
func (s *TeacherService) List(ctx context.Context) []*models.Teacher {
	return s.teachers.List()
}

// Delete removes a teacher, clearing every schedule cell that references
// them first so no grid is left pointing at a dangling ID.
func (s *TeacherService) Delete(ctx context.Context, id string) error {
	if _, err := s.teachers.FindByID(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	cleared := s.store.ClearTeacher(id)
	if err := s.teachers.Delete(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	s.logger.Info("teacher deleted", zap.String("teacher_id", id), zap.Int("assignments_cleared", cleared))
	return nil
}
