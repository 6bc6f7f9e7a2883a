package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRepo "swimmingfish_backend/internals/features/academics/courses/repository"
	examRepo "swimmingfish_backend/internals/features/academics/exams/repository"
	"swimmingfish_backend/internals/features/academics/materials/dto"
	materialModel "swimmingfish_backend/internals/features/academics/materials/model"
	materialRepo "swimmingfish_backend/internals/features/academics/materials/repository"
	helper "swimmingfish_backend/internals/helpers"
)

// MaterialController serves one material kind; the assignments and notes
// endpoints are two instances of it. The type never comes from the body.
type MaterialController struct {
	DB           *gorm.DB
	MaterialType string
}

func NewMaterialController(db *gorm.DB, materialType string) *MaterialController {
	return &MaterialController{DB: db, MaterialType: materialType}
}

// ListMaterials returns the flat list of this kind for the course.
func (mc *MaterialController) ListMaterials(c *fiber.Ctx) error {
	userID, err := helper.ParamUint(c, "userID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParamUint(c, "classID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	materials, err := materialRepo.FindMaterialsByCourseTypeAndUser(mc.DB, classID, mc.MaterialType, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.FromModels(materials))
}

func (mc *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	userID, err := helper.ParamUint(c, "userID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParamUint(c, "classID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if m := req.Missing(); len(m) > 0 {
		return helper.JsonMissingParams(c, m)
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if _, err := courseRepo.FindCourseByIDAndUser(mc.DB, classID, userID); err != nil {
		return helper.FromLookupError(c, err, "Class")
	}

	// an exam reference must point inside the same course
	if req.AssocExamID != nil {
		if _, err := examRepo.FindExamByIDAndCourse(mc.DB, *req.AssocExamID, classID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "assocExamID does not belong to this class")
		}
	}

	material := materialModel.CourseMaterialModel{
		CourseMaterialCourseID: classID,
		CourseMaterialExamID:   req.AssocExamID,
		CourseMaterialType:     mc.MaterialType,
		CourseMaterialName:     *req.Name,
		CourseMaterialDate:     req.Date,
	}
	if err := materialRepo.CreateMaterial(mc.DB, &material); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create material")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(&material))
}

func (mc *MaterialController) GetMaterial(c *fiber.Ctx) error {
	userID, err := helper.ParamUint(c, "userID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParamUint(c, "classID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	materialID, err := helper.ParamUint(c, "materialID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// the detail route serves any material of the course regardless of which
	// kind's path it came in on
	material, err := materialRepo.FindMaterialByIDCourseAndUser(mc.DB, materialID, classID, userID)
	if err != nil {
		return helper.FromLookupError(c, err, "Material")
	}
	return c.Status(fiber.StatusOK).JSON(dto.FromModel(material))
}
