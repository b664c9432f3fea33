package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/service"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// ExportHandler serves the full engine dump and per-teacher timetable files.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Document returns the full engine state as JSON.
func (h *ExportHandler) Document(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Document(c.Request.Context()))
}

// TeacherTimetable streams one teacher's week as a CSV or PDF download.
func (h *ExportHandler) TeacherTimetable(c *gin.Context) {
	teacherID := c.Param("id")
	format := c.DefaultQuery("format", "csv")

	payload, contentType, err := h.service.TeacherTimetableExport(c.Request.Context(), teacherID, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	ext := "csv"
	if contentType == "application/pdf" {
		ext = "pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=timetable-%s.%s", teacherID, ext))
	c.Data(http.StatusOK, contentType, payload)
}
