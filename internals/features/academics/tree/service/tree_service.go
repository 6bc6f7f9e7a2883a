// file: internals/features/academics/tree/service/tree_service.go
//
// Aggregation layer: shapes flat repository rows into the nested views the
// client renders (course -> exams -> assignments/notes, plus the course's
// materials that hang off no exam). Read-only.
package service

import (
	"gorm.io/gorm"

	courseDTO "swimmingfish_backend/internals/features/academics/courses/dto"
	courseModel "swimmingfish_backend/internals/features/academics/courses/model"
	courseRepo "swimmingfish_backend/internals/features/academics/courses/repository"
	examDTO "swimmingfish_backend/internals/features/academics/exams/dto"
	examModel "swimmingfish_backend/internals/features/academics/exams/model"
	examRepo "swimmingfish_backend/internals/features/academics/exams/repository"
	materialDTO "swimmingfish_backend/internals/features/academics/materials/dto"
	materialModel "swimmingfish_backend/internals/features/academics/materials/model"
	materialRepo "swimmingfish_backend/internals/features/academics/materials/repository"
)

// CourseTree returns every course the user owns, fully nested.
func CourseTree(db *gorm.DB, userID uint) ([]courseDTO.CourseTreeResponse, error) {
	courses, err := courseRepo.FindCoursesByUser(db, userID)
	if err != nil {
		return nil, err
	}

	out := make([]courseDTO.CourseTreeResponse, 0, len(courses))
	for i := range courses {
		tree, err := buildCourseTree(db, &courses[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *tree)
	}
	return out, nil
}

// SingleCourseTree is one element of CourseTree; a miss propagates as
// gorm.ErrRecordNotFound.
func SingleCourseTree(db *gorm.DB, courseID, userID uint) (*courseDTO.CourseTreeResponse, error) {
	course, err := courseRepo.FindCourseByIDAndUser(db, courseID, userID)
	if err != nil {
		return nil, err
	}
	return buildCourseTree(db, course)
}

// ExamTree returns one course's exams with partitioned materials, without
// the outer course wrapper.
func ExamTree(db *gorm.DB, courseID, userID uint) ([]examDTO.ExamTreeResponse, error) {
	exams, err := examRepo.FindExamsByCourseAndUser(db, courseID, userID)
	if err != nil {
		return nil, err
	}

	out := make([]examDTO.ExamTreeResponse, 0, len(exams))
	for i := range exams {
		tree, err := buildExamTree(db, &exams[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *tree)
	}
	return out, nil
}

func SingleExamTree(db *gorm.DB, examID, userID uint) (*examDTO.ExamTreeResponse, error) {
	exam, err := examRepo.FindExamByIDAndUser(db, examID, userID)
	if err != nil {
		return nil, err
	}
	return buildExamTree(db, exam)
}

func buildCourseTree(db *gorm.DB, course *courseModel.CourseModel) (*courseDTO.CourseTreeResponse, error) {
	exams, err := examRepo.FindExamsByCourseAndUser(db, course.CourseID, course.CourseUserID)
	if err != nil {
		return nil, err
	}

	examTrees := make([]examDTO.ExamTreeResponse, 0, len(exams))
	for i := range exams {
		tree, err := buildExamTree(db, &exams[i])
		if err != nil {
			return nil, err
		}
		examTrees = append(examTrees, *tree)
	}

	unassociated, err := materialRepo.FindUnassociatedByCourse(db, course.CourseID)
	if err != nil {
		return nil, err
	}

	return &courseDTO.CourseTreeResponse{
		CourseResponse:      courseDTO.FromModel(course),
		Exams:               examTrees,
		MaterialWithoutExam: materialDTO.FromModels(unassociated),
	}, nil
}

func buildExamTree(db *gorm.DB, exam *examModel.ExamModel) (*examDTO.ExamTreeResponse, error) {
	materials, err := materialRepo.FindMaterialsByExam(db, exam.ExamID)
	if err != nil {
		return nil, err
	}

	assignments, notes := partitionByType(materials)
	return &examDTO.ExamTreeResponse{
		ExamResponse: examDTO.FromModel(exam),
		Assignments:  assignments,
		Notes:        notes,
	}, nil
}

// partitionByType puts each material in exactly one bucket, decided solely
// by its type field. Anything that is not a note counts as an assignment,
// matching the default the write path applies.
func partitionByType(materials []materialModel.CourseMaterialModel) (assignments, notes []materialDTO.MaterialResponse) {
	assignments = make([]materialDTO.MaterialResponse, 0, len(materials))
	notes = make([]materialDTO.MaterialResponse, 0)
	for i := range materials {
		if materials[i].CourseMaterialType == materialModel.TypeNote {
			notes = append(notes, materialDTO.FromModel(&materials[i]))
		} else {
			assignments = append(assignments, materialDTO.FromModel(&materials[i]))
		}
	}
	return assignments, notes
}
