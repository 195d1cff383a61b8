package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherctrl "sekolahku_backend/internals/features/school/teachers/controller"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	h := teacherctrl.NewTeacherController(db)

	teachers := api.Group("/teachers")
	teachers.Get("/next-number", h.GetNextNumber)
	teachers.Get("/me", h.GetMe)
	teachers.Get("/my-classrooms", h.GetMyClassrooms)
	teachers.Get("/my-lessons", h.GetMyLessons)
	teachers.Get("/my-students", h.GetMyStudents)
	teachers.Get("/department/:code/active", h.GetActiveTeachersByDepartment)
	teachers.Post("/", h.CreateTeacher)
	teachers.Get("/", h.GetTeachers)
	teachers.Get("/:id", h.GetTeacherByID)
	teachers.Put("/:id/status", h.UpdateTeacherStatus)
	teachers.Delete("/:id", h.DeleteTeacher)
}
