package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/timetable-api/internal/models"
)

// ClassroomRepository is an in-memory directory of classrooms. List order is
// creation order, which is also the document order the auto-assigner walks.
type ClassroomRepository struct {
	mu         sync.RWMutex
	items      map[string]*models.Classroom
	order      []string
	byName     map[string]string
	byGradeDiv map[string]string
}

// NewClassroomRepository builds an empty classroom directory.
func NewClassroomRepository() *ClassroomRepository {
	return &ClassroomRepository{
		items:      make(map[string]*models.Classroom),
		byName:     make(map[string]string),
		byGradeDiv: make(map[string]string),
	}
}

func gradeDivKey(grade, division string) string {
	return grade + "/" + division
}

// Create stores a new classroom. Name and grade+division pairs are unique.
func (r *ClassroomRepository) Create(classroom *models.Classroom) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[classroom.Name]; exists {
		return ErrDuplicate
	}
	key := gradeDivKey(classroom.Grade, classroom.Division)
	if _, exists := r.byGradeDiv[key]; exists {
		return ErrDuplicate
	}
	if classroom.ID == "" {
		classroom.ID = uuid.NewString()
	}
	if classroom.CreatedAt.IsZero() {
		classroom.CreatedAt = time.Now().UTC()
	}
	stored := *classroom
	r.items[classroom.ID] = &stored
	r.order = append(r.order, classroom.ID)
	r.byName[classroom.Name] = classroom.ID
	r.byGradeDiv[key] = classroom.ID
	return nil
}

// FindByID returns a copy of the classroom or ErrNotFound.
func (r *ClassroomRepository) FindByID(id string) (*models.Classroom, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	classroom, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *classroom
	return &clone, nil
}

// List returns all classrooms in creation order.
func (r *ClassroomRepository) List() []*models.Classroom {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Classroom, 0, len(r.order))
	for _, id := range r.order {
		if classroom, ok := r.items[id]; ok {
			clone := *classroom
			result = append(result, &clone)
		}
	}
	return result
}

// Delete removes the classroom from the directory.
func (r *ClassroomRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	classroom, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byName, classroom.Name)
	delete(r.byGradeDiv, gradeDivKey(classroom.Grade, classroom.Division))
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
