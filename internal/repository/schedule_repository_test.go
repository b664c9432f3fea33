package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/models"
)

func newTestStore() *ScheduleStore {
	store := NewScheduleStore(5, 6)
	store.AddClassroom("room-a")
	store.AddClassroom("room-b")
	return store
}

func TestScheduleStoreAssignAndRead(t *testing.T) {
	store := newTestStore()

	cell := models.Cell{TeacherID: "t1", TeacherName: "Dr. Smith", Subject: "Mathematics"}
	require.NoError(t, store.Assign("room-a", 0, 0, cell))

	got, err := store.Cell("room-a", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, cell, got)

	entry, ok := store.Occupant("t1", models.Slot{Day: 0, Period: 0})
	require.True(t, ok)
	assert.Equal(t, "room-a", entry.ClassroomID)
	assert.Equal(t, "Mathematics", entry.Subject)
}

func TestScheduleStoreRejectsDoubleBooking(t *testing.T) {
	store := newTestStore()

	cell := models.Cell{TeacherID: "t1", TeacherName: "Dr. Smith", Subject: "Mathematics"}
	require.NoError(t, store.Assign("room-a", 1, 2, cell))

	err := store.Assign("room-b", 1, 2, models.Cell{TeacherID: "t1", TeacherName: "Dr. Smith", Subject: "Physics"})
	require.ErrorIs(t, err, ErrSlotTaken)

	// Rejected write must leave both grids untouched.
	got, err := store.Cell("room-b", 1, 2)
	require.NoError(t, err)
	assert.False(t, got.Assigned())

	got, err = store.Cell("room-a", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", got.Subject)
}

func TestScheduleStoreAllowsSameSlotOtherDay(t *testing.T) {
	store := newTestStore()

	cell := models.Cell{TeacherID: "t1", Subject: "Mathematics"}
	require.NoError(t, store.Assign("room-a", 0, 0, cell))
	require.NoError(t, store.Assign("room-b", 1, 0, cell))
	require.NoError(t, store.Assign("room-b", 0, 1, cell))

	assert.Len(t, store.TeacherAssignments("t1"), 3)
}

func TestScheduleStoreOverwriteSameCell(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.Assign("room-a", 0, 0, models.Cell{TeacherID: "t1", Subject: "Mathematics"}))
	require.NoError(t, store.Assign("room-a", 0, 0, models.Cell{TeacherID: "t2", Subject: "English"}))

	got, err := store.Cell("room-a", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.TeacherID)

	// The displaced teacher's mirror entry is gone, so they are free again.
	assert.True(t, store.IsTeacherFree("t1", models.Slot{Day: 0, Period: 0}, ""))
	assert.False(t, store.IsTeacherFree("t2", models.Slot{Day: 0, Period: 0}, ""))
}

func TestScheduleStoreEmptyCellWriteClears(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.Assign("room-a", 2, 3, models.Cell{TeacherID: "t1", Subject: "Mathematics"}))
	require.NoError(t, store.Assign("room-a", 2, 3, models.Cell{}))

	got, err := store.Cell("room-a", 2, 3)
	require.NoError(t, err)
	assert.False(t, got.Assigned())
	assert.True(t, store.IsTeacherFree("t1", models.Slot{Day: 2, Period: 3}, ""))
}

func TestScheduleStoreRangeAndUnknownClassroom(t *testing.T) {
	store := newTestStore()

	err := store.Assign("missing", 0, 0, models.Cell{TeacherID: "t1"})
	assert.ErrorIs(t, err, ErrUnknownClassroom)

	err = store.Assign("room-a", 5, 0, models.Cell{TeacherID: "t1"})
	assert.ErrorIs(t, err, ErrSlotOutOfRange)

	err = store.Assign("room-a", 0, 6, models.Cell{TeacherID: "t1"})
	assert.ErrorIs(t, err, ErrSlotOutOfRange)

	err = store.Assign("room-a", -1, 0, models.Cell{TeacherID: "t1"})
	assert.ErrorIs(t, err, ErrSlotOutOfRange)
}

func TestScheduleStoreClearAllIdempotent(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.Assign("room-a", 0, 0, models.Cell{TeacherID: "t1", Subject: "Mathematics"}))
	require.NoError(t, store.Assign("room-b", 1, 1, models.Cell{TeacherID: "t2", Subject: "English"}))

	store.ClearAll()
	store.ClearAll()

	for _, grid := range store.Snapshot() {
		for _, row := range grid {
			for _, cell := range row {
				assert.False(t, cell.Assigned())
			}
		}
	}
	assert.Empty(t, store.TeacherAssignments("t1"))
	assert.Empty(t, store.TeacherAssignments("t2"))
}

func TestScheduleStoreClearTeacherCascade(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.Assign("room-a", 0, 0, models.Cell{TeacherID: "t1", Subject: "Mathematics"}))
	require.NoError(t, store.Assign("room-b", 1, 1, models.Cell{TeacherID: "t1", Subject: "Mathematics"}))
	require.NoError(t, store.Assign("room-a", 2, 2, models.Cell{TeacherID: "t2", Subject: "English"}))

	cleared := store.ClearTeacher("t1")
	assert.Equal(t, 2, cleared)

	got, err := store.Cell("room-a", 0, 0)
	require.NoError(t, err)
	assert.False(t, got.Assigned())

	// Unrelated assignments survive.
	got, err = store.Cell("room-a", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.TeacherID)
}

func TestScheduleStoreRemoveClassroomScrubsMirror(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.Assign("room-a", 0, 0, models.Cell{TeacherID: "t1", Subject: "Mathematics"}))
	store.RemoveClassroom("room-a")

	_, err := store.Cell("room-a", 0, 0)
	assert.ErrorIs(t, err, ErrUnknownClassroom)
	assert.True(t, store.IsTeacherFree("t1", models.Slot{Day: 0, Period: 0}, ""))

	// Slot is reusable in another classroom.
	require.NoError(t, store.Assign("room-b", 0, 0, models.Cell{TeacherID: "t1", Subject: "Mathematics"}))
}

func TestScheduleStoreIsTeacherFreeExclusion(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.Assign("room-a", 0, 0, models.Cell{TeacherID: "t1", Subject: "Mathematics"}))

	slot := models.Slot{Day: 0, Period: 0}
	assert.False(t, store.IsTeacherFree("t1", slot, ""))
	assert.False(t, store.IsTeacherFree("t1", slot, "room-b"))
	assert.True(t, store.IsTeacherFree("t1", slot, "room-a"))
}

func TestScheduleStoreGridReturnsCopy(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.Assign("room-a", 0, 0, models.Cell{TeacherID: "t1", Subject: "Mathematics"}))

	grid, err := store.Grid("room-a")
	require.NoError(t, err)
	grid[0][0] = models.Cell{TeacherID: "tampered"}

	got, err := store.Cell("room-a", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.TeacherID)
}
