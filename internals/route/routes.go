package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authroute "sekolahku_backend/internals/features/users/auth/route"
	userroute "sekolahku_backend/internals/features/users/user/route"
	"sekolahku_backend/internals/middlewares"

	classroomroute "sekolahku_backend/internals/features/school/classrooms/route"
	departmentroute "sekolahku_backend/internals/features/school/departments/route"
	graderoute "sekolahku_backend/internals/features/school/grades/route"
	lessonroute "sekolahku_backend/internals/features/school/lessons/route"
	scheduleroute "sekolahku_backend/internals/features/school/schedules/route"
	schoolroute "sekolahku_backend/internals/features/school/schools/route"
	studentroute "sekolahku_backend/internals/features/school/students/route"
	teacherroute "sekolahku_backend/internals/features/school/teachers/route"
)

// SetupRoutes mounts the public auth endpoints, then everything else behind
// the JWT middleware under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public auth routes...")
	authroute.PublicAuthRoutes(api, db)

	// ===================== PROTECTED =====================
	api.Use(middlewares.AuthJWT(middlewares.AuthJWTOpts{Secret: configs.JWTSecret}))

	authroute.ProtectedAuthRoutes(api, db)
	userroute.UserRoutes(api, db)

	schoolroute.SchoolRoutes(api, db)
	departmentroute.DepartmentRoutes(api, db)
	classroomroute.ClassroomRoutes(api, db)
	teacherroute.TeacherRoutes(api, db)
	lessonroute.LessonRoutes(api, db)
	studentroute.StudentRoutes(api, db)
	scheduleroute.ScheduleRoutes(api, db)
	graderoute.GradeRoutes(api, db)
}
