package repository

import (
	"sync"

	"github.com/noah-isme/timetable-api/internal/models"
)

// MirrorEntry is one slot of the teacher-indexed mirror: where and what a
// teacher is teaching at a given (day, period).
type MirrorEntry struct {
	ClassroomID string
	Subject     string
}

// ScheduleStore holds the authoritative per-classroom assignment grids plus a
// teacher-indexed mirror kept in sync on every write. The mirror doubles as a
// (day, period, teacher) → classroom reverse index, so the no-double-booking
// invariant is checked in O(1) inside the same critical section as the write.
type ScheduleStore struct {
	mu      sync.RWMutex
	days    int
	periods int
	grids   map[string]models.Grid
	mirror  map[string]map[models.Slot]MirrorEntry
}

// NewScheduleStore allocates a store with fixed grid dimensions.
func NewScheduleStore(days, periods int) *ScheduleStore {
	if days <= 0 {
		days = 5
	}
	if periods <= 0 {
		periods = 6
	}
	return &ScheduleStore{
		days:    days,
		periods: periods,
		grids:   make(map[string]models.Grid),
		mirror:  make(map[string]map[models.Slot]MirrorEntry),
	}
}

// Dimensions returns the configured days and periods per day.
func (s *ScheduleStore) Dimensions() (days, periods int) {
	return s.days, s.periods
}

// AddClassroom initialises an empty grid for a newly created classroom.
func (s *ScheduleStore) AddClassroom(classroomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.grids[classroomID]; !exists {
		s.grids[classroomID] = models.NewGrid(s.days, s.periods)
	}
}

// RemoveClassroom drops the classroom grid and scrubs its mirror entries.
func (s *ScheduleStore) RemoveClassroom(classroomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid, exists := s.grids[classroomID]
	if !exists {
		return
	}
	for day, row := range grid {
		for period, cell := range row {
			if cell.Assigned() {
				s.dropMirror(cell.TeacherID, models.Slot{Day: day, Period: period})
			}
		}
	}
	delete(s.grids, classroomID)
}

// Cell returns the cell at the given coordinate.
func (s *ScheduleStore) Cell(classroomID string, day, period int) (models.Cell, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grid, exists := s.grids[classroomID]
	if !exists {
		return models.Cell{}, ErrUnknownClassroom
	}
	if !s.inRange(day, period) {
		return models.Cell{}, ErrSlotOutOfRange
	}
	return grid[day][period], nil
}

// Grid returns a copy of the classroom's full grid.
func (s *ScheduleStore) Grid(classroomID string) (models.Grid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grid, exists := s.grids[classroomID]
	if !exists {
		return nil, ErrUnknownClassroom
	}
	return grid.Clone(), nil
}

// Snapshot returns copies of every classroom grid keyed by classroom ID.
func (s *ScheduleStore) Snapshot() map[string]models.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]models.Grid, len(s.grids))
	for id, grid := range s.grids {
		result[id] = grid.Clone()
	}
	return result
}

// Assign writes a non-empty cell. It fails with ErrSlotTaken when the teacher
// already occupies the same slot in a different classroom; on failure the
// store is left untouched. Overwriting the same cell is allowed.
func (s *ScheduleStore) Assign(classroomID string, day, period int, cell models.Cell) error {
	if !cell.Assigned() {
		return s.Clear(classroomID, day, period)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	grid, exists := s.grids[classroomID]
	if !exists {
		return ErrUnknownClassroom
	}
	if !s.inRange(day, period) {
		return ErrSlotOutOfRange
	}

	slot := models.Slot{Day: day, Period: period}
	if entry, occupied := s.mirror[cell.TeacherID][slot]; occupied && entry.ClassroomID != classroomID {
		return ErrSlotTaken
	}

	prev := grid[day][period]
	if prev.Assigned() && prev.TeacherID != cell.TeacherID {
		s.dropMirror(prev.TeacherID, slot)
	}
	grid[day][period] = cell
	if s.mirror[cell.TeacherID] == nil {
		s.mirror[cell.TeacherID] = make(map[models.Slot]MirrorEntry)
	}
	s.mirror[cell.TeacherID][slot] = MirrorEntry{ClassroomID: classroomID, Subject: cell.Subject}
	return nil
}

// Clear resets one cell to unassigned.
func (s *ScheduleStore) Clear(classroomID string, day, period int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid, exists := s.grids[classroomID]
	if !exists {
		return ErrUnknownClassroom
	}
	if !s.inRange(day, period) {
		return ErrSlotOutOfRange
	}

	prev := grid[day][period]
	if prev.Assigned() {
		s.dropMirror(prev.TeacherID, models.Slot{Day: day, Period: period})
	}
	grid[day][period] = models.Cell{}
	return nil
}

// ClearAll resets every cell of every classroom and rebuilds the mirror from
// scratch. Calling it twice is a no-op the second time.
func (s *ScheduleStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.grids {
		s.grids[id] = models.NewGrid(s.days, s.periods)
	}
	s.mirror = make(map[string]map[models.Slot]MirrorEntry)
}

// ClearTeacher removes every assignment of one teacher across all classrooms
// and returns the number of cells cleared. Used by teacher deletion cascades.
func (s *ScheduleStore) ClearTeacher(teacherID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := s.mirror[teacherID]
	cleared := 0
	for slot, entry := range slots {
		if grid, exists := s.grids[entry.ClassroomID]; exists {
			grid[slot.Day][slot.Period] = models.Cell{}
			cleared++
		}
	}
	delete(s.mirror, teacherID)
	return cleared
}

// Occupant reports where a teacher is assigned at a slot, if anywhere.
func (s *ScheduleStore) Occupant(teacherID string, slot models.Slot) (MirrorEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.mirror[teacherID][slot]
	return entry, ok
}

// IsTeacherFree reports whether the teacher has no assignment at the slot,
// ignoring an assignment in excludeClassroomID (used when editing a cell in
// place).
func (s *ScheduleStore) IsTeacherFree(teacherID string, slot models.Slot, excludeClassroomID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.mirror[teacherID][slot]
	if !ok {
		return true
	}
	return excludeClassroomID != "" && entry.ClassroomID == excludeClassroomID
}

// TeacherAssignments returns a copy of the teacher's mirror block.
func (s *ScheduleStore) TeacherAssignments(teacherID string) map[models.Slot]MirrorEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[models.Slot]MirrorEntry, len(s.mirror[teacherID]))
	for slot, entry := range s.mirror[teacherID] {
		result[slot] = entry
	}
	return result
}

func (s *ScheduleStore) inRange(day, period int) bool {
	return day >= 0 && day < s.days && period >= 0 && period < s.periods
}

// dropMirror must be called with the write lock held.
func (s *ScheduleStore) dropMirror(teacherID string, slot models.Slot) {
	if slots, ok := s.mirror[teacherID]; ok {
		delete(slots, slot)
		if len(slots) == 0 {
			delete(s.mirror, teacherID)
		}
	}
}
