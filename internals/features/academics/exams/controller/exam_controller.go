package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRepo "swimmingfish_backend/internals/features/academics/courses/repository"
	"swimmingfish_backend/internals/features/academics/exams/dto"
	examModel "swimmingfish_backend/internals/features/academics/exams/model"
	examRepo "swimmingfish_backend/internals/features/academics/exams/repository"
	treeService "swimmingfish_backend/internals/features/academics/tree/service"
	helper "swimmingfish_backend/internals/helpers"
)

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

// ListExams returns the course's exams with partitioned materials.
func (ec *ExamController) ListExams(c *fiber.Ctx) error {
	userID, err := helper.ParamUint(c, "userID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParamUint(c, "classID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tree, err := treeService.ExamTree(ec.DB, classID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(tree)
}

func (ec *ExamController) CreateExam(c *fiber.Ctx) error {
	userID, err := helper.ParamUint(c, "userID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParamUint(c, "classID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if m := req.Missing(); len(m) > 0 {
		return helper.JsonMissingParams(c, m)
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// the target course must exist and belong to the path's owner
	if _, err := courseRepo.FindCourseByIDAndUser(ec.DB, classID, userID); err != nil {
		return helper.FromLookupError(c, err, "Class")
	}

	exam := examModel.ExamModel{
		ExamCourseID: classID,
		ExamName:     *req.Name,
		ExamDate:     req.Date,
	}
	if err := examRepo.CreateExam(ec.DB, &exam); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create exam")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(&exam))
}

func (ec *ExamController) GetExam(c *fiber.Ctx) error {
	userID, err := helper.ParamUint(c, "userID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	examID, err := helper.ParamUint(c, "examID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tree, err := treeService.SingleExamTree(ec.DB, examID, userID)
	if err != nil {
		return helper.FromLookupError(c, err, "Exam")
	}
	return c.Status(fiber.StatusOK).JSON(tree)
}
