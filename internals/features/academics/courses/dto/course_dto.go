// file: internals/features/academics/courses/dto/course_dto.go
package dto

import (
	"github.com/go-playground/validator/v10"

	courseModel "swimmingfish_backend/internals/features/academics/courses/model"
	examDTO "swimmingfish_backend/internals/features/academics/exams/dto"
	materialDTO "swimmingfish_backend/internals/features/academics/materials/dto"
)

var validate = validator.New()

/* ===============================
   Requests
================================*/

type CreateCourseRequest struct {
	CourseName   *string `json:"courseName" validate:"omitempty,max=50"`
	Instructor   *string `json:"instructor" validate:"omitempty,max=50"`
	CourseNumber *string `json:"courseNumber" validate:"omitempty,max=50"`
}

func (r CreateCourseRequest) Missing() []string {
	m := make([]string, 0, 1)
	if r.CourseName == nil {
		m = append(m, "courseName")
	}
	return m
}

func (r CreateCourseRequest) Validate() error {
	return validate.Struct(r)
}

/* ===============================
   Responses
================================*/

type CourseResponse struct {
	CourseID     uint    `json:"courseID"`
	UserID       uint    `json:"userID"`
	CourseNumber *string `json:"courseNumber"`
	CourseName   string  `json:"courseName"`
	Instructor   *string `json:"instructor"`
	Color        string  `json:"color"`
}

// CourseTreeResponse nests every exam (with partitioned materials) plus the
// course's materials that belong to no exam.
type CourseTreeResponse struct {
	CourseResponse
	Exams               []examDTO.ExamTreeResponse     `json:"exams"`
	MaterialWithoutExam []materialDTO.MaterialResponse `json:"materialWithoutExam"`
}

func FromModel(course *courseModel.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:     course.CourseID,
		UserID:       course.CourseUserID,
		CourseNumber: course.CourseNumber,
		CourseName:   course.CourseName,
		Instructor:   course.CourseInstructor,
		Color:        course.CourseColor,
	}
}
