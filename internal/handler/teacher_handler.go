package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// TeacherHandler handles teacher directory and per-teacher query endpoints.
type TeacherHandler struct {
	service      *service.TeacherService
	availability *service.AvailabilityService
}

// NewTeacherHandler constructs a teacher handler.
func NewTeacherHandler(svc *service.TeacherService, availability *service.AvailabilityService) *TeacherHandler {
	return &TeacherHandler{service: svc, availability: availability}
}

// List returns all teachers ordered by name.
func (h *TeacherHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context()))
}

// Get returns one teacher.
func (h *TeacherHandler) Get(c *gin.Context) {
	teacher, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher)
}

// Create registers a teacher.
func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	teacher, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, teacher)
}

// Delete removes a teacher and clears their assignments.
func (h *TeacherHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Timetable returns the teacher's week across all classrooms.
func (h *TeacherHandler) Timetable(c *gin.Context) {
	teacher, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	timetable := h.availability.TeacherTimetable(c.Request.Context(), teacher.ID)
	response.JSON(c, http.StatusOK, gin.H{"teacher": teacher, "timetable": timetable})
}

// Subjects returns what the teacher may teach at a grade.
func (h *TeacherHandler) Subjects(c *gin.Context) {
	grade := c.Query("grade")
	if grade == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "grade query parameter is required"))
		return
	}
	subjects := h.availability.SubjectsForTeacher(c.Request.Context(), c.Param("id"), grade)
	response.JSON(c, http.StatusOK, subjects)
}

// Workload returns assigned-period counts for every teacher, busiest first.
func (h *TeacherHandler) Workload(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.availability.WorkloadSummary(c.Request.Context()))
}
