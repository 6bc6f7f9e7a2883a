package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swimmingfish_backend/internals/configs"
	"swimmingfish_backend/internals/features/academics/courses/dto"
	courseModel "swimmingfish_backend/internals/features/academics/courses/model"
	courseRepo "swimmingfish_backend/internals/features/academics/courses/repository"
	treeService "swimmingfish_backend/internals/features/academics/tree/service"
	helper "swimmingfish_backend/internals/helpers"
)

type CourseController struct {
	DB     *gorm.DB
	Config *configs.Config
}

func NewCourseController(db *gorm.DB, cfg *configs.Config) *CourseController {
	return &CourseController{DB: db, Config: cfg}
}

// ListClasses returns the user's full course tree.
func (cc *CourseController) ListClasses(c *fiber.Ctx) error {
	userID, err := helper.ParamUint(c, "userID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tree, err := treeService.CourseTree(cc.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(tree)
}

func (cc *CourseController) CreateClass(c *fiber.Ctx) error {
	userID, err := helper.ParamUint(c, "userID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if m := req.Missing(); len(m) > 0 {
		return helper.JsonMissingParams(c, m)
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	course := courseModel.CourseModel{
		CourseUserID:     userID,
		CourseName:       *req.CourseName,
		CourseInstructor: req.Instructor,
		CourseNumber:     req.CourseNumber,
		// color assignment is a policy decision that hasn't landed yet;
		// every course gets the configured default for now
		CourseColor: cc.Config.CourseDefaultColor,
	}
	if err := courseRepo.CreateCourse(cc.DB, &course); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(&course))
}

// GetClass returns one course with its nested exams and loose materials.
func (cc *CourseController) GetClass(c *fiber.Ctx) error {
	userID, err := helper.ParamUint(c, "userID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParamUint(c, "classID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tree, err := treeService.SingleCourseTree(cc.DB, classID, userID)
	if err != nil {
		return helper.FromLookupError(c, err, "Class")
	}
	return c.Status(fiber.StatusOK).JSON(tree)
}
