package models

// Cell is the assignment stored at one (classroom, day, period) coordinate.
// TeacherName is a cached display field; TeacherID is authoritative. A zero
// Cell means the slot is unassigned.
type Cell struct {
	TeacherID   string `json:"teacher_id,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
	Subject     string `json:"subject,omitempty"`
}

// Assigned reports whether the cell holds a teacher.
func (c Cell) Assigned() bool {
	return c.TeacherID != ""
}

// Slot is a (day, period) coordinate in the grid.
type Slot struct {
	Day    int `json:"day"`
	Period int `json:"period"`
}

// Grid is a day-major matrix of cells for a single classroom.
type Grid [][]Cell

// NewGrid allocates an empty days×periods grid.
func NewGrid(days, periods int) Grid {
	grid := make(Grid, days)
	for d := range grid {
		grid[d] = make([]Cell, periods)
	}
	return grid
}

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for d, row := range g {
		clone[d] = append([]Cell(nil), row...)
	}
	return clone
}

// Assignment is one cell of a teacher-centric timetable view.
type Assignment struct {
	ClassroomID   string `json:"classroom_id"`
	ClassroomName string `json:"classroom_name"`
	Subject       string `json:"subject,omitempty"`
	Grade         string `json:"grade"`
	Division      string `json:"division"`
}

// Timetable is a day-major matrix of a single teacher's assignments; nil
// entries are free slots.
type Timetable [][]*Assignment

// Conflict records a teacher double-booked across two classrooms at one slot.
type Conflict struct {
	TeacherID      string   `json:"teacher_id"`
	TeacherName    string   `json:"teacher_name"`
	Day            int      `json:"day"`
	Period         int      `json:"period"`
	ClassroomNames []string `json:"classroom_names"`
}
