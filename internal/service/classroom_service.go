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

// ClassroomService manages the classroom directory and the per-grade subject
// catalog. Creating a classroom also initialises its empty schedule grid.
type ClassroomService struct {
	classrooms *repository.ClassroomRepository
	catalog    *repository.CatalogRepository
	store      *repository.ScheduleStore
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewClassroomService constructs a ClassroomService.
func NewClassroomService(
	classrooms *repository.ClassroomRepository,
	catalog *repository.CatalogRepository,
	store *repository.ScheduleStore,
	validate *validator.Validate,
	logger *zap.Logger,
) *ClassroomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassroomService{
		classrooms: classrooms,
		catalog:    catalog,
		store:      store,
		validator:  validate,
		logger:     logger,
	}
}

// Create registers a classroom and allocates its grid.
func (s *ClassroomService) Create(ctx context.Context, req dto.CreateClassroomRequest) (*models.Classroom, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid classroom payload")
	}

	classroom := &models.Classroom{
		Name:     req.Name,
		Grade:    req.Grade,
		Division: req.Division,
	}
	if err := s.classrooms.Create(classroom); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "a classroom with this name or grade/division already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create classroom")
	}
	s.store.AddClassroom(classroom.ID)

	s.logger.Info("classroom created",
		zap.String("classroom_id", classroom.ID),
		zap.String("grade", classroom.Grade),
		zap.String("division", classroom.Division),
	)
	return classroom, nil
}

// Get returns one classroom by ID.
func (s *ClassroomService) Get(ctx context.Context, id string) (*models.Classroom, error) {
	classroom, err := s.classrooms.FindByID(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
	}
	return classroom, nil
}

// List returns all classrooms in creation order.
func (s *ClassroomService) List(ctx context.Context) []*models.Classroom {
	return s.classrooms.List()
}

// Delete removes a classroom and its whole schedule grid.
func (s *ClassroomService) Delete(ctx context.Context, id string) error {
	if _, err := s.classrooms.FindByID(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
	}

	s.store.RemoveClassroom(id)
	if err := s.classrooms.Delete(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
	}

	s.logger.Info("classroom deleted", zap.String("classroom_id", id))
	return nil
}

// SubjectsForGrade returns the catalog entry for a grade.
func (s *ClassroomService) SubjectsForGrade(ctx context.Context, grade string) []string {
	return s.catalog.SubjectsForGrade(grade)
}

// Catalog returns the full grade → subjects mapping.
func (s *ClassroomService) Catalog(ctx context.Context) map[string][]string {
	return s.catalog.All()
}
