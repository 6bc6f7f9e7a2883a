// file: internals/features/academics/materials/model/course_material_model.go
package model

import (
	"time"

	"gorm.io/gorm"

	"swimmingfish_backend/internals/helpers/dbtime"
)

// Material kinds. Nothing else is valid; the write path enforces this since
// the endpoint fixes the type.
const (
	TypeAssignment = "assignment"
	TypeNote       = "note"
)

// CourseMaterialModel represents course_materials. A row with a NULL exam id
// belongs to its course but to no exam ("unassociated").
type CourseMaterialModel struct {
	CourseMaterialID       uint             `gorm:"column:course_material_id;primaryKey;autoIncrement"`
	CourseMaterialCourseID uint             `gorm:"column:course_material_course_id;not null;index"`
	CourseMaterialExamID   *uint            `gorm:"column:course_material_exam_id;index"`
	CourseMaterialType     string           `gorm:"column:course_material_type;size:20;not null"`
	CourseMaterialName     string           `gorm:"column:course_material_name;size:50;not null"`
	CourseMaterialDate     *dbtime.DateOnly `gorm:"column:course_material_date;type:date"`

	CourseMaterialCreatedAt time.Time      `gorm:"column:course_material_created_at;autoCreateTime"`
	CourseMaterialUpdatedAt time.Time      `gorm:"column:course_material_updated_at;autoUpdateTime"`
	CourseMaterialDeletedAt gorm.DeletedAt `gorm:"column:course_material_deleted_at;index"`
}

func (CourseMaterialModel) TableName() string { return "course_materials" }
