// file: internals/features/academics/exams/model/exam_model.go
package model

import (
	"time"

	"gorm.io/gorm"

	"swimmingfish_backend/internals/helpers/dbtime"
)

type ExamModel struct {
	ExamID       uint             `gorm:"column:exam_id;primaryKey;autoIncrement"`
	ExamCourseID uint             `gorm:"column:exam_course_id;not null;index"`
	ExamName     string           `gorm:"column:exam_name;size:50;not null"`
	ExamDate     *dbtime.DateOnly `gorm:"column:exam_date;type:date"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;autoCreateTime"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;autoUpdateTime"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index"`
}

func (ExamModel) TableName() string { return "exams" }
