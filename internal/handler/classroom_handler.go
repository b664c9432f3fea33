package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// ClassroomHandler handles classroom directory, per-classroom schedule views
// and the subject catalog endpoints.
type ClassroomHandler struct {
	service  *service.ClassroomService
	schedule *service.ScheduleService
}

// NewClassroomHandler constructs a classroom handler.
func NewClassroomHandler(svc *service.ClassroomService, schedule *service.ScheduleService) *ClassroomHandler {
	return &ClassroomHandler{service: svc, schedule: schedule}
}

// List returns all classrooms in creation order.
func (h *ClassroomHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context()))
}

// Get returns one classroom.
func (h *ClassroomHandler) Get(c *gin.Context) {
	classroom, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classroom)
}

// Create registers a classroom and allocates its empty grid.
func (h *ClassroomHandler) Create(c *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	classroom, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, classroom)
}

// Delete removes a classroom together with its whole grid.
func (h *ClassroomHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Schedule returns the classroom's full day by period grid.
func (h *ClassroomHandler) Schedule(c *gin.Context) {
	grid, err := h.schedule.ClassroomSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grid)
}

// Stats summarises the classroom's occupancy.
func (h *ClassroomHandler) Stats(c *gin.Context) {
	stats, err := h.schedule.ClassroomStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// CatalogForGrade returns the subject list for one grade.
func (h *ClassroomHandler) CatalogForGrade(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.SubjectsForGrade(c.Request.Context(), c.Param("grade")))
}

// Catalog returns the full grade to subjects mapping.
func (h *ClassroomHandler) Catalog(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Catalog(c.Request.Context()))
}
