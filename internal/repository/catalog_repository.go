package repository

import (
	"sort"
	"sync"
)

// CatalogRepository maps a grade to the ordered list of subjects taught at
// that grade. Subject order is preserved as loaded so UI dropdowns and the
// auto-assigner see a stable catalog.
type CatalogRepository struct {
	mu       sync.RWMutex
	subjects map[string][]string
}

// NewCatalogRepository builds an empty catalog.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{subjects: make(map[string][]string)}
}

// Set replaces the subject list for a grade.
func (r *CatalogRepository) Set(grade string, subjects []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subjects[grade] = append([]string(nil), subjects...)
}

// SubjectsForGrade returns the catalog entry for a grade; unknown grades
// yield an empty list, never an error.
func (r *CatalogRepository) SubjectsForGrade(grade string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.subjects[grade]...)
}

// HasSubject reports whether the subject is legitimate for the grade.
func (r *CatalogRepository) HasSubject(grade, subject string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.subjects[grade] {
		if s == subject {
			return true
		}
	}
	return false
}

// Grades returns all known grades sorted ascending.
func (r *CatalogRepository) Grades() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	grades := make([]string, 0, len(r.subjects))
	for grade := range r.subjects {
		grades = append(grades, grade)
	}
	sort.Strings(grades)
	return grades
}

// All returns a copy of the whole catalog keyed by grade.
func (r *CatalogRepository) All() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make(map[string][]string, len(r.subjects))
	for grade, subjects := range r.subjects {
		result[grade] = append([]string(nil), subjects...)
	}
	return result
}
