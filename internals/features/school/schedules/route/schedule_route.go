package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedulectrl "sekolahku_backend/internals/features/school/schedules/controller"
)

func ScheduleRoutes(api fiber.Router, db *gorm.DB) {
	h := schedulectrl.NewScheduleController(db)

	schedules := api.Group("/schedules")
	schedules.Post("/classroom/:classroomId", h.CreateSchedule)
	schedules.Get("/classroom/:classroomId", h.GetSchedulesByClassroom)
	schedules.Delete("/:id", h.DeleteSchedule)
}
