package repository

import (
	"gorm.io/gorm"

	materialModel "swimmingfish_backend/internals/features/academics/materials/model"
)

const ownerJoin = "JOIN courses ON courses.course_id = course_materials.course_material_course_id AND courses.course_deleted_at IS NULL"

func CreateMaterial(db *gorm.DB, material *materialModel.CourseMaterialModel) error {
	return db.Create(material).Error
}

func FindMaterialsByCourseTypeAndUser(db *gorm.DB, courseID uint, materialType string, userID uint) ([]materialModel.CourseMaterialModel, error) {
	var materials []materialModel.CourseMaterialModel
	err := db.Joins(ownerJoin).
		Where("course_materials.course_material_course_id = ? AND course_materials.course_material_type = ? AND courses.course_user_id = ?",
			courseID, materialType, userID).
		Order("course_materials.course_material_id ASC").
		Find(&materials).Error
	return materials, err
}

func FindMaterialsByExam(db *gorm.DB, examID uint) ([]materialModel.CourseMaterialModel, error) {
	var materials []materialModel.CourseMaterialModel
	err := db.Where("course_material_exam_id = ?", examID).
		Order("course_material_id ASC").
		Find(&materials).Error
	return materials, err
}

// FindUnassociatedByCourse lists the course's materials tied to no exam.
func FindUnassociatedByCourse(db *gorm.DB, courseID uint) ([]materialModel.CourseMaterialModel, error) {
	var materials []materialModel.CourseMaterialModel
	err := db.Where("course_material_course_id = ? AND course_material_exam_id IS NULL", courseID).
		Order("course_material_id ASC").
		Find(&materials).Error
	return materials, err
}

// FindMaterialByIDCourseAndUser looks up one material of the course,
// whatever its type. Only the list endpoints filter by kind; the detail
// endpoints serve any material the course owns.
func FindMaterialByIDCourseAndUser(db *gorm.DB, materialID, courseID, userID uint) (*materialModel.CourseMaterialModel, error) {
	var material materialModel.CourseMaterialModel
	err := db.Joins(ownerJoin).
		Where("course_materials.course_material_id = ? AND course_materials.course_material_course_id = ? AND courses.course_user_id = ?",
			materialID, courseID, userID).
		First(&material).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// FindMaterialByID is the upload path's lookup; uploads only re-check
// authentication, not ownership, so no owner join here.
func FindMaterialByID(db *gorm.DB, materialID uint) (*materialModel.CourseMaterialModel, error) {
	var material materialModel.CourseMaterialModel
	err := db.Where("course_material_id = ?", materialID).First(&material).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}
