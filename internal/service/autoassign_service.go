package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/repository"
)

// AutoAssignService fills empty cells with a randomized first-fit heuristic:
// for each empty cell in document order it draws a subject from the grade
// catalog, then a qualified teacher who is still free at that slot. Writes
// land in the store immediately, so later cells in the same pass see them.
// There is no backtracking; a poor early draw can strand later cells empty.
type AutoAssignService struct {
	teachers   *repository.TeacherRepository
	classrooms *repository.ClassroomRepository
	catalog    *repository.CatalogRepository
	store      *repository.ScheduleStore
	metrics    *MetricsService
	logger     *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAutoAssignService wires the heuristic. A nil rng gets a time-seeded one;
// tests inject a fixed seed.
func NewAutoAssignService(
	teachers *repository.TeacherRepository,
	classrooms *repository.ClassroomRepository,
	catalog *repository.CatalogRepository,
	store *repository.ScheduleStore,
	metrics *MetricsService,
	rng *rand.Rand,
	logger *zap.Logger,
) *AutoAssignService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AutoAssignService{
		teachers:   teachers,
		classrooms: classrooms,
		catalog:    catalog,
		store:      store,
		metrics:    metrics,
		logger:     logger,
		rng:        rng,
	}
}

// AutoAssign runs one fill pass over every classroom grid.
func (s *AutoAssignService) AutoAssign(ctx context.Context) (*dto.AutoAssignResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &dto.AutoAssignResult{}
	teachers := s.teachers.List()

	for _, classroom := range s.classrooms.List() {
		grid, err := s.store.Grid(classroom.ID)
		if err != nil {
			continue
		}
		subjects := s.catalog.SubjectsForGrade(classroom.Grade)

		for day, row := range grid {
			for period, cell := range row {
				if cell.Assigned() {
					continue
				}
				if len(subjects) == 0 {
					result.Skipped++
					continue
				}

				subject := subjects[s.rng.Intn(len(subjects))]
				candidates := s.candidates(teachers, classroom.Grade, subject, models.Slot{Day: day, Period: period})
				if len(candidates) == 0 {
					result.Skipped++
					continue
				}

				pick := candidates[s.rng.Intn(len(candidates))]
				write := models.Cell{TeacherID: pick.ID, TeacherName: pick.Name, Subject: subject}
				if err := s.store.Assign(classroom.ID, day, period, write); err != nil {
					// Candidate filtering already checked availability; a
					// failure here means a concurrent writer beat us.
					result.Skipped++
					continue
				}
				result.Filled++
			}
		}
	}

	if s.metrics != nil {
		s.metrics.AddAutoAssigned(result.Filled)
	}
	s.logger.Info("auto-assignment pass completed",
		zap.Int("filled", result.Filled),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *AutoAssignService) candidates(teachers []*models.Teacher, grade, subject string, slot models.Slot) []*models.Teacher {
	result := make([]*models.Teacher, 0)
	for _, teacher := range teachers {
		if !teacher.TeachesGrade(grade) || !teacher.TeachesSubject(subject) {
			continue
		}
		if !s.store.IsTeacherFree(teacher.ID, slot, "") {
			continue
		}
		result = append(result, teacher)
	}
	return result
}
