package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonctrl "sekolahku_backend/internals/features/school/lessons/controller"
)

func LessonRoutes(api fiber.Router, db *gorm.DB) {
	h := lessonctrl.NewLessonController(db)

	lessons := api.Group("/lessons")
	lessons.Get("/next-code", h.GetNextCode)
	lessons.Get("/teacher/:teacherId", h.GetLessonsByTeacher)
	lessons.Post("/", h.CreateLesson)
	lessons.Get("/", h.GetLessons)
	lessons.Get("/:id", h.GetLessonByID)
	lessons.Delete("/:id", h.DeleteLesson)
	lessons.Put("/:lessonId/teacher/:teacherId", h.AssignTeacher)
	lessons.Delete("/:id/teacher", h.RemoveTeacher)
}
