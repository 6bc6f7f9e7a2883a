// file: internals/features/academics/exams/dto/exam_dto.go
package dto

import (
	"github.com/go-playground/validator/v10"

	examModel "swimmingfish_backend/internals/features/academics/exams/model"
	materialDTO "swimmingfish_backend/internals/features/academics/materials/dto"
	"swimmingfish_backend/internals/helpers/dbtime"
)

var validate = validator.New()

/* ===============================
   Requests
================================*/

type CreateExamRequest struct {
	Name *string          `json:"name" validate:"omitempty,max=50"`
	Date *dbtime.DateOnly `json:"date"`
}

func (r CreateExamRequest) Missing() []string {
	m := make([]string, 0, 1)
	if r.Name == nil {
		m = append(m, "name")
	}
	return m
}

func (r CreateExamRequest) Validate() error {
	return validate.Struct(r)
}

/* ===============================
   Responses
================================*/

type ExamResponse struct {
	ExamID   uint             `json:"examID"`
	Name     string           `json:"name"`
	Date     *dbtime.DateOnly `json:"date"`
	CourseID uint             `json:"courseID"`
}

// ExamTreeResponse is an exam with its materials partitioned by type: every
// material lands in exactly one of assignments/notes.
type ExamTreeResponse struct {
	ExamResponse
	Assignments []materialDTO.MaterialResponse `json:"assignments"`
	Notes       []materialDTO.MaterialResponse `json:"notes"`
}

func FromModel(e *examModel.ExamModel) ExamResponse {
	return ExamResponse{
		ExamID:   e.ExamID,
		Name:     e.ExamName,
		Date:     e.ExamDate,
		CourseID: e.ExamCourseID,
	}
}
