package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/timetable-api/internal/models"
)

// TeacherRepository is an in-memory directory of teachers.
type TeacherRepository struct {
	mu     sync.RWMutex
	items  map[string]*models.Teacher
	byName map[string]string
}

// NewTeacherRepository builds an empty teacher directory.
func NewTeacherRepository() *TeacherRepository {
	return &TeacherRepository{
		items:  make(map[string]*models.Teacher),
		byName: make(map[string]string),
	}
}

// Create stores a new teacher, assigning an ID when absent. Names are unique.
func (r *TeacherRepository) Create(teacher *models.Teacher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[teacher.Name]; exists {
		return ErrDuplicate
	}
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	if teacher.CreatedAt.IsZero() {
		teacher.CreatedAt = time.Now().UTC()
	}
	r.items[teacher.ID] = teacher.Clone()
	r.byName[teacher.Name] = teacher.ID
	return nil
}

// FindByID returns a copy of the teacher or ErrNotFound.
func (r *TeacherRepository) FindByID(id string) (*models.Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teacher, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return teacher.Clone(), nil
}

// List returns all teachers ordered by name ascending.
func (r *TeacherRepository) List() []*models.Teacher {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Teacher, 0, len(r.items))
	for _, teacher := range r.items {
		result = append(result, teacher.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name == result[j].Name {
			return result[i].ID < result[j].ID
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// Delete removes the teacher from the directory.
func (r *TeacherRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	teacher, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byName, teacher.Name)
	delete(r.items, id)
	return nil
}
