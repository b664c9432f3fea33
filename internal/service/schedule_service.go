package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/repository"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

// ScheduleService is the single validated write path into the schedule store.
// Every mutation either passes all compatibility checks and lands atomically,
// or leaves the store untouched.
type ScheduleService struct {
	teachers   *repository.TeacherRepository
	classrooms *repository.ClassroomRepository
	catalog    *repository.CatalogRepository
	store      *repository.ScheduleStore
	metrics    *MetricsService
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewScheduleService wires the schedule mutation dependencies.
func NewScheduleService(
	teachers *repository.TeacherRepository,
	classrooms *repository.ClassroomRepository,
	catalog *repository.CatalogRepository,
	store *repository.ScheduleStore,
	metrics *MetricsService,
	validate *validator.Validate,
	logger *zap.Logger,
) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		teachers:   teachers,
		classrooms: classrooms,
		catalog:    catalog,
		store:      store,
		metrics:    metrics,
		validator:  validate,
		logger:     logger,
	}
}

// UpdateSchedule writes one cell. Incompatible teacher/subject/grade
// combinations are rejected outright rather than silently reset.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, req dto.UpdateScheduleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}

	if req.TeacherID == "" {
		return s.ClearCell(ctx, dto.ClearCellRequest{ClassroomID: req.ClassroomID, Day: req.Day, Period: req.Period})
	}

	classroom, err := s.classrooms.FindByID(req.ClassroomID)
	if err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
	}
	teacher, err := s.teachers.FindByID(req.TeacherID)
	if err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	if !teacher.TeachesGrade(classroom.Grade) {
		s.reject()
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("teacher %s cannot teach grade %s", teacher.Name, classroom.Grade))
	}
	if req.Subject != "" {
		if !s.catalog.HasSubject(classroom.Grade, req.Subject) {
			s.reject()
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("subject %s is not taught at grade %s", req.Subject, classroom.Grade))
		}
		if !teacher.TeachesSubject(req.Subject) {
			s.reject()
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("teacher %s cannot teach subject %s", teacher.Name, req.Subject))
		}
	}

	cell := models.Cell{TeacherID: teacher.ID, TeacherName: teacher.Name, Subject: req.Subject}
	if err := s.store.Assign(req.ClassroomID, req.Day, req.Period, cell); err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotTaken):
			s.reject()
			return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("teacher %s is already assigned at this slot", teacher.Name))
		case errors.Is(err, repository.ErrSlotOutOfRange):
			return appErrors.Clone(appErrors.ErrValidation, "day or period out of range")
		case errors.Is(err, repository.ErrUnknownClassroom):
			return appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
		default:
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to write schedule cell")
		}
	}

	if s.metrics != nil {
		s.metrics.RecordAssignment()
	}
	s.logger.Debug("schedule cell written",
		zap.String("classroom_id", req.ClassroomID),
		zap.Int("day", req.Day),
		zap.Int("period", req.Period),
		zap.String("teacher_id", req.TeacherID),
	)
	return nil
}

// ClearCell resets one cell to unassigned.
func (s *ScheduleService) ClearCell(ctx context.Context, req dto.ClearCellRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid clear payload")
	}
	if err := s.store.Clear(req.ClassroomID, req.Day, req.Period); err != nil {
		switch {
		case errors.Is(err, repository.ErrUnknownClassroom):
			return appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
		case errors.Is(err, repository.ErrSlotOutOfRange):
			return appErrors.Clone(appErrors.ErrValidation, "day or period out of range")
		default:
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear schedule cell")
		}
	}
	return nil
}

// ClearAll resets every cell of every classroom.
func (s *ScheduleService) ClearAll(ctx context.Context) {
	s.store.ClearAll()
	s.logger.Info("all schedules cleared")
}

// ClassroomSchedule returns a copy of one classroom's grid.
func (s *ScheduleService) ClassroomSchedule(ctx context.Context, classroomID string) (models.Grid, error) {
	grid, err := s.store.Grid(classroomID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
	}
	return grid, nil
}

// ClassroomStats summarises occupancy of one classroom's grid.
func (s *ScheduleService) ClassroomStats(ctx context.Context, classroomID string) (*models.ClassroomStats, error) {
	grid, err := s.store.Grid(classroomID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
	}

	stats := &models.ClassroomStats{
		ClassroomID:         classroomID,
		SubjectDistribution: make(map[string]int),
	}
	teacherNames := make(map[string]string)
	for _, row := range grid {
		for _, cell := range row {
			stats.TotalPeriods++
			if !cell.Assigned() {
				continue
			}
			stats.AssignedPeriods++
			teacherNames[cell.TeacherID] = cell.TeacherName
			if cell.Subject != "" {
				stats.SubjectDistribution[cell.Subject]++
			}
		}
	}
	stats.UnassignedPeriods = stats.TotalPeriods - stats.AssignedPeriods
	if stats.TotalPeriods > 0 {
		stats.FillPercentage = stats.AssignedPeriods * 100 / stats.TotalPeriods
	}
	stats.UniqueTeachers = len(teacherNames)
	for _, name := range teacherNames {
		stats.TeacherNames = append(stats.TeacherNames, name)
	}
	sort.Strings(stats.TeacherNames)
	return stats, nil
}

func (s *ScheduleService) reject() {
	if s.metrics != nil {
		s.metrics.RecordRejection()
	}
}
