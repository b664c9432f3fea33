package models

import "time"

// Teacher represents an instructor who may teach a set of subjects to a set
// of grades. The subject/grade cross product is only constrained further by
// the per-grade subject catalog.
type Teacher struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subjects  []string  `json:"subjects"`
	Classes   []string  `json:"classes"`
	CreatedAt time.Time `json:"created_at"`
}

// TeachesSubject reports whether the teacher may teach the given subject. An
// empty subject set means the teacher can teach anything.
func (t *Teacher) TeachesSubject(subject string) bool {
	if len(t.Subjects) == 0 {
		return true
	}
	for _, s := range t.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// TeachesGrade reports whether the teacher may teach the given grade.
func (t *Teacher) TeachesGrade(grade string) bool {
	for _, g := range t.Classes {
		if g == grade {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand to callers.
func (t *Teacher) Clone() *Teacher {
	clone := *t
	clone.Subjects = append([]string(nil), t.Subjects...)
	clone.Classes = append([]string(nil), t.Classes...)
	return &clone
}

// WorkloadEntry summarises how many periods a teacher is assigned.
type WorkloadEntry struct {
	TeacherID string   `json:"teacher_id"`
	Name      string   `json:"name"`
	Workload  int      `json:"workload"`
	Subjects  []string `json:"subjects"`
	Classes   []string `json:"classes"`
}
