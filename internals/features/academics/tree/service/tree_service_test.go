package service_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "swimmingfish_backend/internals/databases"
	courseModel "swimmingfish_backend/internals/features/academics/courses/model"
	examModel "swimmingfish_backend/internals/features/academics/exams/model"
	materialModel "swimmingfish_backend/internals/features/academics/materials/model"
	treeService "swimmingfish_backend/internals/features/academics/tree/service"
	userModel "swimmingfish_backend/internals/features/users/auth/model"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	u := userModel.UserModel{UserName: name, UserPassword: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u.UserID
}

func seedCourse(t *testing.T, db *gorm.DB, userID uint, name string) uint {
	t.Helper()
	c := courseModel.CourseModel{CourseUserID: userID, CourseName: name, CourseColor: "039BE5"}
	require.NoError(t, db.Create(&c).Error)
	return c.CourseID
}

func seedExam(t *testing.T, db *gorm.DB, courseID uint, name string) uint {
	t.Helper()
	e := examModel.ExamModel{ExamCourseID: courseID, ExamName: name}
	require.NoError(t, db.Create(&e).Error)
	return e.ExamID
}

func seedMaterial(t *testing.T, db *gorm.DB, courseID uint, examID *uint, materialType, name string) {
	t.Helper()
	m := materialModel.CourseMaterialModel{
		CourseMaterialCourseID: courseID,
		CourseMaterialExamID:   examID,
		CourseMaterialType:     materialType,
		CourseMaterialName:     name,
	}
	require.NoError(t, db.Create(&m).Error)
}

func TestCourseTreeEmptyUser(t *testing.T) {
	db := newDB(t)
	userID := seedUser(t, db, "fish")

	tree, err := treeService.CourseTree(db, userID)
	require.NoError(t, err)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}

func TestCourseTreeNestsAndPartitions(t *testing.T) {
	db := newDB(t)
	userID := seedUser(t, db, "fish")
	courseID := seedCourse(t, db, userID, "Biology")
	examID := seedExam(t, db, courseID, "Midterm")
	seedMaterial(t, db, courseID, &examID, materialModel.TypeAssignment, "Study guide")
	seedMaterial(t, db, courseID, &examID, materialModel.TypeNote, "Lecture 4")
	seedMaterial(t, db, courseID, nil, materialModel.TypeNote, "Syllabus notes")

	tree, err := treeService.CourseTree(db, userID)
	require.NoError(t, err)
	require.Len(t, tree, 1)

	course := tree[0]
	require.Len(t, course.Exams, 1)
	exam := course.Exams[0]
	assert.Equal(t, "Midterm", exam.Name)
	require.Len(t, exam.Assignments, 1)
	assert.Equal(t, "Study guide", exam.Assignments[0].Name)
	require.Len(t, exam.Notes, 1)
	assert.Equal(t, "Lecture 4", exam.Notes[0].Name)

	require.Len(t, course.MaterialWithoutExam, 1)
	assert.Equal(t, "Syllabus notes", course.MaterialWithoutExam[0].Name)
}

func TestCourseTreeSkipsOtherUsers(t *testing.T) {
	db := newDB(t)
	fishID := seedUser(t, db, "fish")
	sharkID := seedUser(t, db, "shark")
	seedCourse(t, db, fishID, "Biology")
	seedCourse(t, db, sharkID, "Hunting")

	tree, err := treeService.CourseTree(db, fishID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Biology", tree[0].CourseName)
}

func TestExamTreeEmptySlicesStayNonNil(t *testing.T) {
	db := newDB(t)
	userID := seedUser(t, db, "fish")
	courseID := seedCourse(t, db, userID, "Biology")
	seedExam(t, db, courseID, "Final")

	exams, err := treeService.ExamTree(db, courseID, userID)
	require.NoError(t, err)
	require.Len(t, exams, 1)
	// non-nil so clients always see [] instead of null
	assert.NotNil(t, exams[0].Assignments)
	assert.NotNil(t, exams[0].Notes)
	assert.Empty(t, exams[0].Assignments)
	assert.Empty(t, exams[0].Notes)
}

func TestSingleExamTreeHidesForeignExams(t *testing.T) {
	db := newDB(t)
	fishID := seedUser(t, db, "fish")
	sharkID := seedUser(t, db, "shark")
	sharkCourseID := seedCourse(t, db, sharkID, "Hunting")
	sharkExamID := seedExam(t, db, sharkCourseID, "Ambush practical")

	_, err := treeService.SingleExamTree(db, sharkExamID, fishID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
