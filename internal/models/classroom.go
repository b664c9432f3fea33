package models

import "time"

// Classroom represents a physical class group. A classroom belongs to exactly
// one grade; grade and division are immutable after creation.
type Classroom struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Grade     string    `json:"grade"`
	Division  string    `json:"division"`
	CreatedAt time.Time `json:"created_at"`
}

// ClassroomStats summarises grid occupancy for a classroom.
type ClassroomStats struct {
	ClassroomID         string         `json:"classroom_id"`
	TotalPeriods        int            `json:"total_periods"`
	AssignedPeriods     int            `json:"assigned_periods"`
	UnassignedPeriods   int            `json:"unassigned_periods"`
	FillPercentage      int            `json:"fill_percentage"`
	UniqueTeachers      int            `json:"unique_teachers"`
	SubjectDistribution map[string]int `json:"subject_distribution"`
	TeacherNames        []string       `json:"teacher_names"`
}
