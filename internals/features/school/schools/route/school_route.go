package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolctrl "sekolahku_backend/internals/features/school/schools/controller"
)

func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	h := schoolctrl.NewSchoolController(db)

	schools := api.Group("/schools")
	schools.Post("/", h.CreateSchool)
	schools.Get("/", h.GetAllSchools)
	schools.Get("/my-school", h.GetMySchool)
	schools.Get("/code/:code", h.GetSchoolByCode)
	schools.Get("/:id", h.GetSchoolByID)
}
