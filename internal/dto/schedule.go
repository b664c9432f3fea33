package dto

import (
	"time"

	"github.com/noah-isme/timetable-api/internal/models"
)

// UpdateScheduleRequest writes one cell. Day and Period are zero-based. An
// empty TeacherID clears the cell.
type UpdateScheduleRequest struct {
	ClassroomID string `json:"classroomId" validate:"required"`
	Day         int    `json:"day" validate:"min=0"`
	Period      int    `json:"period" validate:"min=0"`
	TeacherID   string `json:"teacherId"`
	Subject     string `json:"subject"`
}

// ClearCellRequest resets one cell.
type ClearCellRequest struct {
	ClassroomID string `json:"classroomId" validate:"required"`
	Day         int    `json:"day" validate:"min=0"`
	Period      int    `json:"period" validate:"min=0"`
}

// AvailabilityQuery asks which teachers are legal and free for a cell.
type AvailabilityQuery struct {
	ClassroomID string `form:"classroomId" json:"classroomId" validate:"required"`
	Day         int    `form:"day" json:"day" validate:"min=0"`
	Period      int    `form:"period" json:"period" validate:"min=0"`
	Subject     string `form:"subject" json:"subject"`
}

// AutoAssignResult summarises one auto-assignment pass.
type AutoAssignResult struct {
	Filled  int `json:"filled"`
	Skipped int `json:"skipped"`
}

// ExportDocument is the transportable dump of the full engine state.
type ExportDocument struct {
	Teachers    []*models.Teacher      `json:"teachers"`
	Classrooms  []*models.Classroom    `json:"classrooms"`
	Catalog     map[string][]string    `json:"catalog"`
	Schedules   map[string]models.Grid `json:"schedules"`
	Conflicts   []models.Conflict      `json:"conflicts"`
	GeneratedAt time.Time              `json:"generated_at"`
}
