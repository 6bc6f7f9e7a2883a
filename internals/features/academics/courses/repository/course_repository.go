package repository

import (
	"gorm.io/gorm"

	courseModel "swimmingfish_backend/internals/features/academics/courses/model"
)

func CreateCourse(db *gorm.DB, course *courseModel.CourseModel) error {
	return db.Create(course).Error
}

func FindCoursesByUser(db *gorm.DB, userID uint) ([]courseModel.CourseModel, error) {
	var courses []courseModel.CourseModel
	err := db.Where("course_user_id = ?", userID).
		Order("course_id ASC").
		Find(&courses).Error
	return courses, err
}

// FindCourseByIDAndUser scopes the lookup to the owner so a foreign courseID
// reads as not-found.
func FindCourseByIDAndUser(db *gorm.DB, courseID, userID uint) (*courseModel.CourseModel, error) {
	var course courseModel.CourseModel
	err := db.Where("course_id = ? AND course_user_id = ?", courseID, userID).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}
