package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// ScheduleHandler handles cell writes, clears, availability queries and the
// auto-assignment trigger.
type ScheduleHandler struct {
	schedule     *service.ScheduleService
	availability *service.AvailabilityService
	autoAssign   *service.AutoAssignService
	export       *service.ExportService
}

// NewScheduleHandler constructs a schedule handler.
func NewScheduleHandler(
	schedule *service.ScheduleService,
	availability *service.AvailabilityService,
	autoAssign *service.AutoAssignService,
	export *service.ExportService,
) *ScheduleHandler {
	return &ScheduleHandler{
		schedule:     schedule,
		availability: availability,
		autoAssign:   autoAssign,
		export:       export,
	}
}

// Update writes one schedule cell. An empty teacherId clears the cell.
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.schedule.UpdateSchedule(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ClearCell resets one cell to unassigned.
func (h *ScheduleHandler) ClearCell(c *gin.Context) {
	var req dto.ClearCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.schedule.ClearCell(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ClearAll resets every cell of every classroom.
func (h *ScheduleHandler) ClearAll(c *gin.Context) {
	h.schedule.ClearAll(c.Request.Context())
	response.NoContent(c)
}

// AutoAssign runs one randomized fill pass over all grids.
func (h *ScheduleHandler) AutoAssign(c *gin.Context) {
	result, err := h.autoAssign.AutoAssign(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Availability lists teachers who may legally take a cell.
func (h *ScheduleHandler) Availability(c *gin.Context) {
	var query dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return
	}
	if query.ClassroomID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "classroomId query parameter is required"))
		return
	}

	teachers := h.availability.AvailableTeachers(c.Request.Context(), query.ClassroomID, query.Day, query.Period, query.Subject)
	response.JSON(c, http.StatusOK, teachers)
}

// Conflicts audits all grids for double-booked teachers.
func (h *ScheduleHandler) Conflicts(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.export.Conflicts(c.Request.Context()))
}
