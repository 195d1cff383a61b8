package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deptctrl "sekolahku_backend/internals/features/school/departments/controller"
)

func DepartmentRoutes(api fiber.Router, db *gorm.DB) {
	h := deptctrl.NewDepartmentController(db)

	departments := api.Group("/departments")
	departments.Get("/next-code", h.GetNextCode)
	departments.Post("/", h.CreateDepartment)
	departments.Get("/", h.GetDepartments)
	departments.Get("/:id", h.GetDepartmentByID)
	departments.Delete("/:id", h.DeleteDepartment)
}
