package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentctrl "sekolahku_backend/internals/features/school/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	h := studentctrl.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/next-number", h.GetNextNumber)
	students.Post("/classroom/:classroomId", h.CreateStudent)
	students.Get("/classroom/:classroomId", h.GetStudentsByClassroom)
	students.Get("/:id", h.GetStudentByID)
	students.Delete("/:id", h.DeleteStudent)
}
