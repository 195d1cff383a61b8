package controller

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	classroomModel "sekolahku_backend/internals/features/school/classrooms/model"
	departmentModel "sekolahku_backend/internals/features/school/departments/model"
	lessonModel "sekolahku_backend/internals/features/school/lessons/model"
	schoolService "sekolahku_backend/internals/features/school/schools/service"
	"sekolahku_backend/internals/features/school/sequence"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	"sekolahku_backend/internals/features/school/teachers/dto"
	"sekolahku_backend/internals/features/school/teachers/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
	helper "sekolahku_backend/internals/helpers"
	authz "sekolahku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

var validate = validator.New()

// GET /api/teachers/next-number
func (ctl *TeacherController) GetNextNumber(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var numbers []string
	err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.TeacherModel{}).Pluck("teacher_number", &numbers).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load teacher numbers")
	}
	return helper.Success(c, "OK", dto.NextNumberResponse{Number: sequence.Teacher.Next(numbers)})
}

// POST /api/teachers
// Creates the teacher together with its backing user in one transaction;
// the teacher number is stored as the user's code.
func (ctl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	var teacher *model.TeacherModel

	err = ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&departmentModel.DepartmentModel{}).
			Where("department_code = ? AND department_school_id = ?", req.Department, school.SchoolID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Department does not exist in this school")
		}

		exists, err := userRepo.ExistsByUsername(ctx, tx, req.Username)
		if err != nil {
			return err
		}
		if exists {
			return fiber.NewError(fiber.StatusConflict, "Username already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &userModel.UserModel{
			UserName: req.Username,
			Password: string(hash),
			UserCode: req.TeacherNumber,
			Role:     constants.RoleTeacher,
		}
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Username or teacher number already exists")
			}
			return err
		}

		teacher = &model.TeacherModel{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			TeacherNumber:  req.TeacherNumber,
			DepartmentCode: req.Department,
			Status:         constants.TeacherStatusActive,
			SchoolID:       school.SchoolID,
			UserID:         &user.UserID,
		}
		if err := tx.Create(teacher).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Teacher number already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create teacher")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher created", teacher)
}

// GET /api/teachers
func (ctl *TeacherController) GetTeachers(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	var teachers []model.TeacherModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("teacher_school_id = ?", school.SchoolID).
		Order("teacher_id").
		Find(&teachers).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load teachers")
	}
	return helper.Success(c, "OK", teachers)
}

// GET /api/teachers/:id
func (ctl *TeacherController) GetTeacherByID(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.TeacherInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	var teacher model.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&teacher, "teacher_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}
	return helper.Success(c, "OK", teacher)
}

// PUT /api/teachers/:id/status
func (ctl *TeacherController) UpdateTeacherStatus(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	var req dto.UpdateTeacherStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.TeacherInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	ctx := c.UserContext()
	if err := ctl.DB.WithContext(ctx).Model(&model.TeacherModel{}).
		Where("teacher_id = ?", id).
		Update("teacher_status", req.Status).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update status")
	}

	var teacher model.TeacherModel
	if err := ctl.DB.WithContext(ctx).First(&teacher, "teacher_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load teacher")
	}
	return helper.Success(c, "Status updated", teacher)
}

// DELETE /api/teachers/:id
// Removing a teacher also removes the backing user account, in one
// transaction.
func (ctl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if err := authz.Ensure(c, ctl.DB, authz.TeacherInSchool(id, school.SchoolID)); err != nil {
		return err
	}

	ctx := c.UserContext()
	err = ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var teacher model.TeacherModel
		if err := tx.First(&teacher, "teacher_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.TeacherModel{}, "teacher_id = ?", id).Error; err != nil {
			return err
		}
		if teacher.UserID != nil {
			if err := tx.Delete(&userModel.UserModel{}, "user_id = ?", *teacher.UserID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return helper.Success(c, "Teacher deleted", nil)
}

// GET /api/teachers/department/:code/active
func (ctl *TeacherController) GetActiveTeachersByDepartment(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal, constants.RoleTeacher); err != nil {
		return err
	}

	school, err := schoolService.ResolveSchool(c, ctl.DB)
	if err != nil {
		return err
	}

	var teachers []model.TeacherModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("teacher_department_code = ? AND teacher_status = ? AND teacher_school_id = ?",
			c.Params("code"), constants.TeacherStatusActive, school.SchoolID).
		Order("teacher_id").
		Find(&teachers).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load teachers")
	}
	return helper.Success(c, "OK", teachers)
}

/* ================= "my" endpoints ================= */

// teacherByUsername follows the stored convention: the user's code is the
// teacher number.
func (ctl *TeacherController) teacherByUsername(ctx context.Context, username string) (*model.TeacherModel, error) {
	user, err := userRepo.FindUserByUsername(ctx, ctl.DB, username)
	if err != nil {
		if userRepo.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}
	if user.Role != constants.RoleTeacher {
		return nil, fiber.NewError(fiber.StatusNotFound, "No teacher record for this user")
	}

	var teacher model.TeacherModel
	if err := ctl.DB.WithContext(ctx).
		First(&teacher, "teacher_number = ?", user.UserCode).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "No teacher record for this user")
	}
	return &teacher, nil
}

// GET /api/teachers/me
func (ctl *TeacherController) GetMe(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}
	teacher, err := ctl.teacherByUsername(c.UserContext(), helper.GetUsernameFromLocals(c))
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", teacher)
}

// GET /api/teachers/my-classrooms
// A principal's "my" scope is the whole school; anyone else is resolved to
// their own teacher record and sees only assigned classrooms.
func (ctl *TeacherController) GetMyClassrooms(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	ctx := c.UserContext()
	var classrooms []classroomModel.ClassroomModel

	if helper.GetRoleFromLocals(c) == constants.RolePrincipal {
		school, err := schoolService.ResolveSchool(c, ctl.DB)
		if err != nil {
			return err
		}
		err = ctl.DB.WithContext(ctx).
			Where("classroom_school_id = ?", school.SchoolID).
			Order("classroom_id").
			Find(&classrooms).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load classrooms")
		}
		return helper.Success(c, "OK", classrooms)
	}

	teacher, err := ctl.teacherByUsername(ctx, helper.GetUsernameFromLocals(c))
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(ctx).
		Joins("JOIN classroom_teachers ON classroom_teachers.classroom_id = classrooms.classroom_id").
		Where("classroom_teachers.teacher_id = ?", teacher.TeacherID).
		Order("classrooms.classroom_id").
		Find(&classrooms).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load classrooms")
	}
	return helper.Success(c, "OK", classrooms)
}

// GET /api/teachers/my-lessons
func (ctl *TeacherController) GetMyLessons(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	ctx := c.UserContext()
	var lessons []lessonModel.LessonModel

	if helper.GetRoleFromLocals(c) == constants.RolePrincipal {
		school, err := schoolService.ResolveSchool(c, ctl.DB)
		if err != nil {
			return err
		}
		err = ctl.DB.WithContext(ctx).
			Where("lesson_school_id = ?", school.SchoolID).
			Order("lesson_id").
			Find(&lessons).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load lessons")
		}
		return helper.Success(c, "OK", lessons)
	}

	teacher, err := ctl.teacherByUsername(ctx, helper.GetUsernameFromLocals(c))
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(ctx).
		Where("lesson_teacher_id = ?", teacher.TeacherID).
		Order("lesson_id").
		Find(&lessons).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load lessons")
	}
	return helper.Success(c, "OK", lessons)
}

// GET /api/teachers/my-students
func (ctl *TeacherController) GetMyStudents(c *fiber.Ctx) error {
	if err := authz.Require(c, constants.RolePrincipal); err != nil {
		return err
	}

	ctx := c.UserContext()
	var students []studentModel.StudentModel

	if helper.GetRoleFromLocals(c) == constants.RolePrincipal {
		school, err := schoolService.ResolveSchool(c, ctl.DB)
		if err != nil {
			return err
		}
		err = ctl.DB.WithContext(ctx).
			Joins("JOIN classrooms ON classrooms.classroom_id = students.student_classroom_id").
			Where("classrooms.classroom_school_id = ?", school.SchoolID).
			Order("students.student_id").
			Find(&students).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
		}
		return helper.Success(c, "OK", students)
	}

	teacher, err := ctl.teacherByUsername(ctx, helper.GetUsernameFromLocals(c))
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(ctx).
		Joins("JOIN classroom_teachers ON classroom_teachers.classroom_id = students.student_classroom_id").
		Where("classroom_teachers.teacher_id = ?", teacher.TeacherID).
		Order("students.student_id").
		Find(&students).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
	}
	return helper.Success(c, "OK", students)
}
