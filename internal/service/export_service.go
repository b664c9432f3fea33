package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/repository"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/export"
)

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ExportService audits the grids for double-bookings and serializes the full
// engine state for download. Conflict detection is a post-hoc scan: under
// correct use of the validated write path the list is always empty.
type ExportService struct {
	teachers     *repository.TeacherRepository
	classrooms   *repository.ClassroomRepository
	catalog      *repository.CatalogRepository
	store        *repository.ScheduleStore
	availability *AvailabilityService
	metrics      *MetricsService
	csv          *export.CSVExporter
	pdf          *export.PDFExporter
	logger       *zap.Logger
}

// NewExportService wires the exporter dependencies.
func NewExportService(
	teachers *repository.TeacherRepository,
	classrooms *repository.ClassroomRepository,
	catalog *repository.CatalogRepository,
	store *repository.ScheduleStore,
	availability *AvailabilityService,
	metrics *MetricsService,
	logger *zap.Logger,
) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		teachers:     teachers,
		classrooms:   classrooms,
		catalog:      catalog,
		store:        store,
		availability: availability,
		metrics:      metrics,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
		logger:       logger,
	}
}

// Conflicts scans every slot for teachers present in two classrooms at once.
// Each conflicting classroom pair is reported once.
func (s *ExportService) Conflicts(ctx context.Context) []models.Conflict {
	classrooms := s.classrooms.List()
	snapshot := s.store.Snapshot()
	days, periods := s.store.Dimensions()

	conflicts := make([]models.Conflict, 0)
	for day := 0; day < days; day++ {
		for period := 0; period < periods; period++ {
			for i := 0; i < len(classrooms); i++ {
				first, ok := snapshot[classrooms[i].ID]
				if !ok {
					continue
				}
				cell := first[day][period]
				if !cell.Assigned() {
					continue
				}
				for j := i + 1; j < len(classrooms); j++ {
					second, ok := snapshot[classrooms[j].ID]
					if !ok {
						continue
					}
					other := second[day][period]
					if other.TeacherID != cell.TeacherID {
						continue
					}
					conflicts = append(conflicts, models.Conflict{
						TeacherID:      cell.TeacherID,
						TeacherName:    s.teacherName(cell),
						Day:            day,
						Period:         period,
						ClassroomNames: []string{classrooms[i].Name, classrooms[j].Name},
					})
				}
			}
		}
	}

	if s.metrics != nil {
		s.metrics.SetConflicts(len(conflicts))
	}
	return conflicts
}

// Document serializes teachers, classrooms, catalog, grids and the conflict
// audit into one transportable JSON-ready payload.
func (s *ExportService) Document(ctx context.Context) *dto.ExportDocument {
	return &dto.ExportDocument{
		Teachers:    s.teachers.List(),
		Classrooms:  s.classrooms.List(),
		Catalog:     s.catalog.All(),
		Schedules:   s.store.Snapshot(),
		Conflicts:   s.Conflicts(ctx),
		GeneratedAt: time.Now().UTC(),
	}
}

// TeacherTimetableExport renders one teacher's week as CSV or PDF bytes.
func (s *ExportService) TeacherTimetableExport(ctx context.Context, teacherID, format string) ([]byte, string, error) {
	teacher, err := s.teachers.FindByID(teacherID)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	dataset := s.timetableDataset(ctx, teacher)
	switch format {
	case "csv", "":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := s.pdf.Render(dataset, fmt.Sprintf("%s - weekly timetable", teacher.Name))
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func (s *ExportService) timetableDataset(ctx context.Context, teacher *models.Teacher) export.Dataset {
	days, periods := s.store.Dimensions()
	timetable := s.availability.TeacherTimetable(ctx, teacher.ID)

	headers := []string{"Day"}
	for p := 1; p <= periods; p++ {
		headers = append(headers, fmt.Sprintf("Period %d", p))
	}

	rows := make([]map[string]string, 0, days)
	for day := 0; day < days; day++ {
		row := map[string]string{"Day": dayName(day)}
		for period := 0; period < periods; period++ {
			value := "-"
			if assignment := timetable[day][period]; assignment != nil {
				if assignment.Subject != "" {
					value = fmt.Sprintf("%s (%s)", assignment.Subject, assignment.ClassroomName)
				} else {
					value = assignment.ClassroomName
				}
			}
			row[headers[period+1]] = value
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func (s *ExportService) teacherName(cell models.Cell) string {
	if teacher, err := s.teachers.FindByID(cell.TeacherID); err == nil {
		return teacher.Name
	}
	return cell.TeacherName
}

func dayName(index int) string {
	if index >= 0 && index < len(dayNames) {
		return dayNames[index]
	}
	return fmt.Sprintf("Day %d", index+1)
}
