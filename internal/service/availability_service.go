package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/repository"
)

// AvailabilityService answers read-only questions about the schedule: who is
// free, what may be taught where, and what a teacher's week looks like. All
// queries are total: unknown IDs yield empty results, never errors.
type AvailabilityService struct {
	teachers   *repository.TeacherRepository
	classrooms *repository.ClassroomRepository
	catalog    *repository.CatalogRepository
	store      *repository.ScheduleStore
	logger     *zap.Logger
}

// NewAvailabilityService wires the query dependencies.
func NewAvailabilityService(
	teachers *repository.TeacherRepository,
	classrooms *repository.ClassroomRepository,
	catalog *repository.CatalogRepository,
	store *repository.ScheduleStore,
	logger *zap.Logger,
) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{
		teachers:   teachers,
		classrooms: classrooms,
		catalog:    catalog,
		store:      store,
		logger:     logger,
	}
}

// IsTeacherAvailable reports whether the teacher has no assignment at the
// slot in any classroom other than excludeClassroomID.
func (s *AvailabilityService) IsTeacherAvailable(ctx context.Context, teacherID string, day, period int, excludeClassroomID string) bool {
	return s.store.IsTeacherFree(teacherID, models.Slot{Day: day, Period: period}, excludeClassroomID)
}

// AvailableTeachers lists teachers who may legally take the given cell:
// right grade, right subject (when one is requested) and free at the slot
// outside the classroom being edited. Ordered by name ascending.
func (s *AvailabilityService) AvailableTeachers(ctx context.Context, classroomID string, day, period int, subject string) []*models.Teacher {
	classroom, err := s.classrooms.FindByID(classroomID)
	if err != nil {
		return []*models.Teacher{}
	}

	slot := models.Slot{Day: day, Period: period}
	result := make([]*models.Teacher, 0)
	for _, teacher := range s.teachers.List() {
		if !teacher.TeachesGrade(classroom.Grade) {
			continue
		}
		if subject != "" && !teacher.TeachesSubject(subject) {
			continue
		}
		if !s.store.IsTeacherFree(teacher.ID, slot, classroomID) {
			continue
		}
		result = append(result, teacher)
	}
	return result
}

// SubjectsForTeacher intersects the teacher's subject set with the grade's
// catalog, preserving catalog order. Teachers with an empty subject set get
// the full catalog; teachers who cannot teach the grade get nothing.
func (s *AvailabilityService) SubjectsForTeacher(ctx context.Context, teacherID, grade string) []string {
	teacher, err := s.teachers.FindByID(teacherID)
	if err != nil {
		return []string{}
	}
	if !teacher.TeachesGrade(grade) {
		return []string{}
	}

	result := make([]string, 0)
	for _, subject := range s.catalog.SubjectsForGrade(grade) {
		if teacher.TeachesSubject(subject) {
			result = append(result, subject)
		}
	}
	return result
}

// TeacherTimetable builds the teacher's week from the mirror: one cell per
// slot carrying classroom name, subject, grade and division.
func (s *AvailabilityService) TeacherTimetable(ctx context.Context, teacherID string) models.Timetable {
	days, periods := s.store.Dimensions()
	timetable := make(models.Timetable, days)
	for d := range timetable {
		timetable[d] = make([]*models.Assignment, periods)
	}

	for slot, entry := range s.store.TeacherAssignments(teacherID) {
		if slot.Day < 0 || slot.Day >= days || slot.Period < 0 || slot.Period >= periods {
			continue
		}
		assignment := &models.Assignment{
			ClassroomID: entry.ClassroomID,
			Subject:     entry.Subject,
		}
		if classroom, err := s.classrooms.FindByID(entry.ClassroomID); err == nil {
			assignment.ClassroomName = classroom.Name
			assignment.Grade = classroom.Grade
			assignment.Division = classroom.Division
		}
		timetable[slot.Day][slot.Period] = assignment
	}
	return timetable
}

// WorkloadSummary counts assigned periods per teacher, busiest first.
func (s *AvailabilityService) WorkloadSummary(ctx context.Context) []models.WorkloadEntry {
	teachers := s.teachers.List()
	result := make([]models.WorkloadEntry, 0, len(teachers))
	for _, teacher := range teachers {
		result = append(result, models.WorkloadEntry{
			TeacherID: teacher.ID,
			Name:      teacher.Name,
			Workload:  len(s.store.TeacherAssignments(teacher.ID)),
			Subjects:  teacher.Subjects,
			Classes:   teacher.Classes,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Workload > result[j].Workload
	})
	return result
}
