package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/dto"
)

func TestAvailableTeachersFiltersGradeSubjectAndSlot(t *testing.T) {
	f := newEngineFixture(t)
	f.catalog.Set("S1", []string{"Mathematics", "English"})
	f.catalog.Set("S2", []string{"Mathematics"})
	smith := f.addTeacher(t, "Dr. Smith", []string{"Mathematics"}, []string{"S1", "S2"})
	f.addTeacher(t, "Ms. Johnson", []string{"English"}, []string{"S1"})
	f.addTeacher(t, "Dr. Wilson", []string{"Biology"}, []string{"S2"})
	s1a := f.addClassroom(t, "S1-A", "S1", "A")
	s2a := f.addClassroom(t, "S2-A", "S2", "A")

	ctx := context.Background()

	// Only Smith both teaches Mathematics and covers S1.
	available := f.availability.AvailableTeachers(ctx, s1a.ID, 0, 0, "Mathematics")
	require.Len(t, available, 1)
	assert.Equal(t, smith.ID, available[0].ID)

	// Book Smith elsewhere at the slot; he drops out.
	require.NoError(t, f.schedule.UpdateSchedule(ctx, dto.UpdateScheduleRequest{
		ClassroomID: s2a.ID, Day: 0, Period: 0, TeacherID: smith.ID, Subject: "Mathematics",
	}))
	available = f.availability.AvailableTeachers(ctx, s1a.ID, 0, 0, "Mathematics")
	assert.Empty(t, available)

	// A different slot is unaffected.
	available = f.availability.AvailableTeachers(ctx, s1a.ID, 0, 1, "Mathematics")
	assert.Len(t, available, 1)
}

func TestAvailableTeachersExcludesEditedClassroom(t *testing.T) {
	f := newEngineFixture(t)
	f.catalog.Set("S1", []string{"Mathematics"})
	smith := f.addTeacher(t, "Dr. Smith", []string{"Mathematics"}, []string{"S1"})
	s1a := f.addClassroom(t, "S1-A", "S1", "A")

	ctx := context.Background()
	require.NoError(t, f.schedule.UpdateSchedule(ctx, dto.UpdateScheduleRequest{
		ClassroomID: s1a.ID, Day: 0, Period: 0, TeacherID: smith.ID, Subject: "Mathematics",
	}))

	// Editing the occupied cell itself still offers its current teacher.
	available := f.availability.AvailableTeachers(ctx, s1a.ID, 0, 0, "Mathematics")
	require.Len(t, available, 1)
	assert.Equal(t, smith.ID, available[0].ID)
}

func TestAvailableTeachersNoSubjectFilter(t *testing.T) {
	f := newEngineFixture(t)
	f.catalog.Set("S1", []string{"Mathematics", "English"})
	f.addTeacher(t, "Dr. Smith", []string{"Mathematics"}, []string{"S1"})
	f.addTeacher(t, "Ms. Johnson", []string{"English"}, []string{"S1"})
	s1a := f.addClassroom(t, "S1-A", "S1", "A")

	available := f.availability.AvailableTeachers(context.Background(), s1a.ID, 0, 0, "")
	require.Len(t, available, 2)
	// Ordered by name ascending.
	assert.Equal(t, "Dr. Smith", available[0].Name)
	assert.Equal(t, "Ms. Johnson", available[1].Name)
}

func TestAvailableTeachersUnknownClassroom(t *testing.T) {
	f := newEngineFixture(t)
	assert.Empty(t, f.availability.AvailableTeachers(context.Background(), "missing", 0, 0, ""))
}

func TestSubjectsForTeacherIntersectsCatalog(t *testing.T) {
	f := newEngineFixture(t)
	f.catalog.Set("S1", []string{"Mathematics", "English", "Science"})
	smith := f.addTeacher(t, "Dr. Smith", []string{"Science", "Mathematics", "History"}, []string{"S1"})

	// Catalog order wins, foreign subjects are dropped.
	subjects := f.availability.SubjectsForTeacher(context.Background(), smith.ID, "S1")
	assert.Equal(t, []string{"Mathematics", "Science"}, subjects)
}

func TestSubjectsForTeacherWrongGrade(t *testing.T) {
	f := newEngineFixture(t)
	f.catalog.Set("S2", []string{"Mathematics"})
	smith := f.addTeacher(t, "Dr. Smith", []string{"Mathematics"}, []string{"S1"})

	assert.Empty(t, f.availability.SubjectsForTeacher(context.Background(), smith.ID, "S2"))
}

func TestSubjectsForTeacherWildcardGetsFullCatalog(t *testing.T) {
	f := newEngineFixture(t)
	f.catalog.Set("S1", []string{"Mathematics", "English"})
	substitute := f.addTeacher(t, "Substitute", nil, []string{"S1"})

	subjects := f.availability.SubjectsForTeacher(context.Background(), substitute.ID, "S1")
	assert.Equal(t, []string{"Mathematics", "English"}, subjects)
}

func TestTeacherTimetable(t *testing.T) {
	f := newEngineFixture(t)
	f.catalog.Set("S1", []string{"Mathematics"})
	f.catalog.Set("S2", []string{"Mathematics"})
	smith := f.addTeacher(t, "Dr. Smith", []string{"Mathematics"}, []string{"S1", "S2"})
	s1a := f.addClassroom(t, "S1-A", "S1", "A")
	s2a := f.addClassroom(t, "S2-A", "S2", "A")

	ctx := context.Background()
	require.NoError(t, f.schedule.UpdateSchedule(ctx, dto.UpdateScheduleRequest{
		ClassroomID: s1a.ID, Day: 0, Period: 0, TeacherID: smith.ID, Subject: "Mathematics",
	}))
	require.NoError(t, f.schedule.UpdateSchedule(ctx, dto.UpdateScheduleRequest{
		ClassroomID: s2a.ID, Day: 3, Period: 5, TeacherID: smith.ID, Subject: "Mathematics",
	}))

	timetable := f.availability.TeacherTimetable(ctx, smith.ID)
	require.Len(t, timetable, 5)
	require.Len(t, timetable[0], 6)

	first := timetable[0][0]
	require.NotNil(t, first)
	assert.Equal(t, s1a.ID, first.ClassroomID)
	assert.Equal(t, "S1-A", first.ClassroomName)
	assert.Equal(t, "S1", first.Grade)
	assert.Equal(t, "A", first.Division)
	assert.Equal(t, "Mathematics", first.Subject)

	require.NotNil(t, timetable[3][5])
	assert.Equal(t, s2a.ID, timetable[3][5].ClassroomID)
	assert.Nil(t, timetable[1][1])
}

func TestWorkloadSummaryBusiestFirst(t *testing.T) {
	f := newEngineFixture(t)
	f.catalog.Set("S1", []string{"Mathematics", "English"})
	smith := f.addTeacher(t, "Dr. Smith", []string{"Mathematics"}, []string{"S1"})
	johnson := f.addTeacher(t, "Ms. Johnson", []string{"English"}, []string{"S1"})
	s1a := f.addClassroom(t, "S1-A", "S1", "A")

	ctx := context.Background()
	require.NoError(t, f.schedule.UpdateSchedule(ctx, dto.UpdateScheduleRequest{
		ClassroomID: s1a.ID, Day: 0, Period: 0, TeacherID: johnson.ID, Subject: "English",
	}))
	require.NoError(t, f.schedule.UpdateSchedule(ctx, dto.UpdateScheduleRequest{
		ClassroomID: s1a.ID, Day: 0, Period: 1, TeacherID: johnson.ID, Subject: "English",
	}))
	require.NoError(t, f.schedule.UpdateSchedule(ctx, dto.UpdateScheduleRequest{
		ClassroomID: s1a.ID, Day: 1, Period: 0, TeacherID: smith.ID, Subject: "Mathematics",
	}))

	workload := f.availability.WorkloadSummary(ctx)
	require.Len(t, workload, 2)
	assert.Equal(t, johnson.ID, workload[0].TeacherID)
	assert.Equal(t, 2, workload[0].Workload)
	assert.Equal(t, smith.ID, workload[1].TeacherID)
	assert.Equal(t, 1, workload[1].Workload)
}
