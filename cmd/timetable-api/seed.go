package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/repository"
	"github.com/noah-isme/timetable-api/internal/service"
)

// seedCatalog loads the per-grade subject lists. The catalog is the source of
// truth for which subjects a grade may be assigned.
func seedCatalog(catalog *repository.CatalogRepository) {
	catalog.Set("S1", []string{"Mathematics", "English", "Science", "Social Studies", "Malayalam"})
	catalog.Set("S2", []string{"Mathematics", "English", "Physics", "Chemistry", "Biology"})
	catalog.Set("S3", []string{"Mathematics", "English", "Physics", "Chemistry", "Computer Science"})
	catalog.Set("S4", []string{"Mathematics", "English", "Physics", "Chemistry", "Economics"})
	catalog.Set("S5", []string{"English", "Physics", "Chemistry", "Business Studies"})
}

// seedDemoData loads a small faculty and four classrooms for local
// development. Failures are logged and skipped, never fatal.
func seedDemoData(teacherSvc *service.TeacherService, classroomSvc *service.ClassroomService, logr *zap.Logger) {
	ctx := context.Background()

	demoTeachers := []dto.CreateTeacherRequest{
		{Name: "Dr. Smith", Subjects: []string{"Mathematics"}, Classes: []string{"S1", "S2", "S3", "S4"}},
		{Name: "Ms. Johnson", Subjects: []string{"English"}, Classes: []string{"S1", "S2", "S3", "S4", "S5"}},
		{Name: "Mr. Brown", Subjects: []string{"Physics", "Science"}, Classes: []string{"S1", "S2", "S3", "S4", "S5"}},
		{Name: "Mrs. Davis", Subjects: []string{"Chemistry"}, Classes: []string{"S2", "S3", "S4", "S5"}},
		{Name: "Dr. Wilson", Subjects: []string{"Biology"}, Classes: []string{"S2"}},
		{Name: "Ms. Anderson", Subjects: []string{"Social Studies", "Economics"}, Classes: []string{"S1", "S4"}},
		{Name: "Mr. Taylor", Subjects: []string{"Computer Science"}, Classes: []string{"S3"}},
		{Name: "Mrs. Lee", Subjects: []string{"Malayalam"}, Classes: []string{"S1"}},
		{Name: "Dr. Kumar", Subjects: []string{"Business Studies"}, Classes: []string{"S5"}},
	}
	for _, req := range demoTeachers {
		if _, err := teacherSvc.Create(ctx, req); err != nil {
			logr.Warn("demo teacher skipped", zap.String("name", req.Name), zap.Error(err))
		}
	}

	demoClassrooms := []dto.CreateClassroomRequest{
		{Name: "S1-A", Grade: "S1", Division: "A"},
		{Name: "S1-B", Grade: "S1", Division: "B"},
		{Name: "S2-A", Grade: "S2", Division: "A"},
		{Name: "S3-A", Grade: "S3", Division: "A"},
	}
	for _, req := range demoClassrooms {
		if _, err := classroomSvc.Create(ctx, req); err != nil {
			logr.Warn("demo classroom skipped", zap.String("name", req.Name), zap.Error(err))
		}
	}
}
