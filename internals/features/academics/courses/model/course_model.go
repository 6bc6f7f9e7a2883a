// file: internals/features/academics/courses/model/course_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// CourseModel represents the courses table. The owning user never changes
// after creation; there is no update path for course_user_id.
type CourseModel struct {
	CourseID         uint    `gorm:"column:course_id;primaryKey;autoIncrement"`
	CourseUserID     uint    `gorm:"column:course_user_id;not null;index"`
	CourseNumber     *string `gorm:"column:course_number;size:50"`
	CourseName       string  `gorm:"column:course_name;size:50;not null"`
	CourseInstructor *string `gorm:"column:course_instructor;size:50"`
	CourseColor      string  `gorm:"column:course_color;size:6;not null"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index"`
}

func (CourseModel) TableName() string { return "courses" }
