package repository

import (
	"gorm.io/gorm"

	examModel "swimmingfish_backend/internals/features/academics/exams/model"
)

// Reads join through courses so nested exam ids stay scoped to the path's
// owner even though the middleware only checks the top-level userID segment.
const ownerJoin = "JOIN courses ON courses.course_id = exams.exam_course_id AND courses.course_deleted_at IS NULL"

func CreateExam(db *gorm.DB, exam *examModel.ExamModel) error {
	return db.Create(exam).Error
}

func FindExamsByCourseAndUser(db *gorm.DB, courseID, userID uint) ([]examModel.ExamModel, error) {
	var exams []examModel.ExamModel
	err := db.Joins(ownerJoin).
		Where("exams.exam_course_id = ? AND courses.course_user_id = ?", courseID, userID).
		Order("exams.exam_id ASC").
		Find(&exams).Error
	return exams, err
}

func FindExamByIDAndUser(db *gorm.DB, examID, userID uint) (*examModel.ExamModel, error) {
	var exam examModel.ExamModel
	err := db.Joins(ownerJoin).
		Where("exams.exam_id = ? AND courses.course_user_id = ?", examID, userID).
		First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// FindExamByIDAndCourse backs the assocExamID guard: the exam must belong to
// the course the material is being created under.
func FindExamByIDAndCourse(db *gorm.DB, examID, courseID uint) (*examModel.ExamModel, error) {
	var exam examModel.ExamModel
	err := db.Where("exam_id = ? AND exam_course_id = ?", examID, courseID).
		First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}
