// file: internals/features/academics/materials/dto/material_dto.go
package dto

import (
	"github.com/go-playground/validator/v10"

	materialModel "swimmingfish_backend/internals/features/academics/materials/model"
	"swimmingfish_backend/internals/helpers/dbtime"
)

var validate = validator.New()

/* ===============================
   Requests
================================*/

// CreateMaterialRequest is shared by the assignments and notes endpoints;
// the material type comes from the route, never from the body.
type CreateMaterialRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=50"`
	Date        *dbtime.DateOnly `json:"date"`
	AssocExamID *uint            `json:"assocExamID"`
}

// Missing enumerates required body fields that were absent.
func (r CreateMaterialRequest) Missing() []string {
	m := make([]string, 0, 1)
	if r.Name == nil {
		m = append(m, "name")
	}
	return m
}

func (r CreateMaterialRequest) Validate() error {
	return validate.Struct(r)
}

/* ===============================
   Responses
================================*/

type MaterialResponse struct {
	CourseMaterialID uint             `json:"courseMaterialID"`
	Type             string           `json:"type"`
	Name             string           `json:"name"`
	Date             *dbtime.DateOnly `json:"date"`
	AssocExamID      *uint            `json:"assocExamID"`
	CourseID         uint             `json:"courseID"`
}

func FromModel(m *materialModel.CourseMaterialModel) MaterialResponse {
	return MaterialResponse{
		CourseMaterialID: m.CourseMaterialID,
		Type:             m.CourseMaterialType,
		Name:             m.CourseMaterialName,
		Date:             m.CourseMaterialDate,
		AssocExamID:      m.CourseMaterialExamID,
		CourseID:         m.CourseMaterialCourseID,
	}
}

func FromModels(ms []materialModel.CourseMaterialModel) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
