package dto

// CreateTeacherRequest is the admin payload for registering a teacher. An
// empty Subjects list is rejected here; the "teaches anything" escape hatch
// only applies to records loaded from seed data.
type CreateTeacherRequest struct {
	Name     string   `json:"name" validate:"required"`
	Subjects []string `json:"subjects" validate:"required,min=1,dive,required"`
	Classes  []string `json:"classes" validate:"required,min=1,dive,required"`
}

// CreateClassroomRequest is the admin payload for registering a classroom.
type CreateClassroomRequest struct {
	Name     string `json:"name" validate:"required"`
	Grade    string `json:"grade" validate:"required"`
	Division string `json:"division" validate:"required"`
}
