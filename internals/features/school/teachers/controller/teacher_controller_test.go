package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	classroomModel "sekolahku_backend/internals/features/school/classrooms/model"
	lessonModel "sekolahku_backend/internals/features/school/lessons/model"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	"sekolahku_backend/internals/features/school/teachers/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

// Seeded rows carry explicit IDs so the sequence-backed BeforeCreate hooks
// stay out of the way.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&schoolModel.SchoolModel{},
		&classroomModel.ClassroomModel{},
		&classroomModel.ClassroomTeacherModel{},
		&lessonModel.LessonModel{},
		&studentModel.StudentModel{},
		&model.TeacherModel{},
	))
	return db
}

func seedSchoolWorld(t *testing.T, db *gorm.DB) {
	t.Helper()

	principal := userModel.UserModel{
		UserName: "p1",
		Password: "x",
		UserCode: "PRINCIPAL_SCH1",
		Role:     constants.RolePrincipal,
	}
	require.NoError(t, db.Create(&principal).Error)
	require.NoError(t, db.Create(&schoolModel.SchoolModel{
		SchoolID:        "S1",
		SchoolCode:      "SCH1",
		SchoolName:      "First School",
		PrincipalUserID: principal.UserID,
	}).Error)

	for _, cl := range []classroomModel.ClassroomModel{
		{ClassroomID: "CL1", Name: "7A", Grade: 7, Section: "A", Capacity: 30, SchoolID: "S1"},
		{ClassroomID: "CL2", Name: "7B", Grade: 7, Section: "B", Capacity: 30, SchoolID: "S1"},
		{ClassroomID: "CL3", Name: "8A", Grade: 8, Section: "A", Capacity: 30, SchoolID: "S2"},
	} {
		require.NoError(t, db.Create(&cl).Error)
	}

	for _, l := range []lessonModel.LessonModel{
		{LessonID: "LN1", Code: "L100", Name: "Maths", Duration: 45, DepartmentCode: "D1", SchoolID: "S1"},
		{LessonID: "LN2", Code: "L101", Name: "History", Duration: 45, DepartmentCode: "D1", SchoolID: "S1"},
		{LessonID: "LN3", Code: "L102", Name: "Art", Duration: 45, DepartmentCode: "D1", SchoolID: "S2"},
	} {
		require.NoError(t, db.Create(&l).Error)
	}

	for _, s := range []studentModel.StudentModel{
		{StudentID: "ST1000", FirstName: "Ana", LastName: "Ward", StudentNumber: "1000", ClassroomID: "CL1"},
		{StudentID: "ST1001", FirstName: "Ben", LastName: "Cole", StudentNumber: "1001", ClassroomID: "CL3"},
	} {
		require.NoError(t, db.Create(&s).Error)
	}
}

func newPrincipalApp(db *gorm.DB) *fiber.App {
	h := NewTeacherController(db)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUsername, "p1")
		c.Locals(helper.LocRole, constants.RolePrincipal)
		c.Locals(helper.LocUserCode, "PRINCIPAL_SCH1")
		return c.Next()
	})
	app.Get("/api/teachers/my-classrooms", h.GetMyClassrooms)
	app.Get("/api/teachers/my-lessons", h.GetMyLessons)
	app.Get("/api/teachers/my-students", h.GetMyStudents)
	return app
}

func getBody(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestPrincipalMyClassroomsListsWholeSchool(t *testing.T) {
	db := newTestDB(t)
	seedSchoolWorld(t, db)
	app := newPrincipalApp(db)

	status, body := getBody(t, app, "/api/teachers/my-classrooms")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "CL1")
	assert.Contains(t, body, "CL2")
	assert.NotContains(t, body, "CL3", "other school's classroom must stay invisible")
}

func TestPrincipalMyLessonsListsWholeSchool(t *testing.T) {
	db := newTestDB(t)
	seedSchoolWorld(t, db)
	app := newPrincipalApp(db)

	status, body := getBody(t, app, "/api/teachers/my-lessons")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "LN1")
	assert.Contains(t, body, "LN2")
	assert.NotContains(t, body, "LN3")
}

func TestPrincipalMyStudentsListsWholeSchool(t *testing.T) {
	db := newTestDB(t)
	seedSchoolWorld(t, db)
	app := newPrincipalApp(db)

	status, body := getBody(t, app, "/api/teachers/my-students")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "ST1000")
	assert.NotContains(t, body, "ST1001")
}
