package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradectrl "sekolahku_backend/internals/features/school/grades/controller"
)

func GradeRoutes(api fiber.Router, db *gorm.DB) {
	h := gradectrl.NewGradeController(db)

	grades := api.Group("/grades")
	grades.Post("/", h.UpsertGrade)
	grades.Post("/update", h.UpsertGrade)
	grades.Get("/student/:studentId/averages", h.GetStudentAverages)
	grades.Get("/student/:studentId/lesson/:lessonId", h.GetGradesByStudentAndLesson)
	grades.Get("/student/:studentId", h.GetGradesByStudent)
}
