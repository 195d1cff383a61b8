package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctrl "sekolahku_backend/internals/features/school/classrooms/controller"
)

func ClassroomRoutes(api fiber.Router, db *gorm.DB) {
	h := classctrl.NewClassroomController(db)

	classrooms := api.Group("/classrooms")
	classrooms.Post("/", h.CreateClassroom)
	classrooms.Get("/my-school", h.GetMySchoolClassrooms)
	classrooms.Get("/:id", h.GetClassroomByID)
	classrooms.Delete("/:id", h.DeleteClassroom)

	classrooms.Get("/:id/teachers", h.GetClassroomTeachers)
	classrooms.Put("/:classroomId/teachers/:teacherId", h.AddTeacherToClassroom)
	classrooms.Delete("/:classroomId/teachers/:teacherId", h.RemoveTeacherFromClassroom)

	classrooms.Get("/:id/lessons", h.GetClassroomLessons)
	classrooms.Put("/:classroomId/lessons/:lessonId", h.AddLessonToClassroom)
	classrooms.Delete("/:classroomId/lessons/:lessonId", h.RemoveLessonFromClassroom)
}
