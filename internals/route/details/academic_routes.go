// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swimmingfish_backend/internals/configs"
	courseController "swimmingfish_backend/internals/features/academics/courses/controller"
	examController "swimmingfish_backend/internals/features/academics/exams/controller"
	uploadController "swimmingfish_backend/internals/features/academics/files/controller"
	materialController "swimmingfish_backend/internals/features/academics/materials/controller"
	materialModel "swimmingfish_backend/internals/features/academics/materials/model"
	helper "swimmingfish_backend/internals/helpers"
	ossHelper "swimmingfish_backend/internals/helpers/oss"
	authMiddleware "swimmingfish_backend/internals/middlewares/auth"
)

/* =======================================================
   ACADEMIC ROUTES
   Everything below /users/:userID requires a valid session.
   Resource routes additionally require the session user to
   match the path owner. Upload routes skip the owner check:
   any authenticated user may attach files to a material it
   can name.
   ======================================================= */

// AcademicRoutes mounts the per-user course tree and its nested
// exam/material/upload endpoints. Middleware is attached per route, not per
// group, so the owner check never leaks onto the upload paths.
func AcademicRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, blob ossHelper.BlobService) {
	authMW := authMiddleware.AuthRequired(db, cfg)
	ownerMW := authMiddleware.RequirePathOwner()

	courses := courseController.NewCourseController(db, cfg)
	exams := examController.NewExamController(db)
	assignments := materialController.NewMaterialController(db, materialModel.TypeAssignment)
	notes := materialController.NewMaterialController(db, materialModel.TypeNote)
	uploads := uploadController.NewUploadController(db, blob)

	// ---- Courses ----
	app.Get("/users/:userID/classes", authMW, ownerMW, courses.ListClasses)
	app.Post("/users/:userID/classes", authMW, ownerMW, courses.CreateClass)
	app.Get("/users/:userID/classes/:classID", authMW, ownerMW, courses.GetClass)
	app.All("/users/:userID/classes/:classID", authMW, ownerMW, helper.NotImplemented)

	// ---- Exams ----
	app.Get("/users/:userID/classes/:classID/exams", authMW, ownerMW, exams.ListExams)
	app.Post("/users/:userID/classes/:classID/exams", authMW, ownerMW, exams.CreateExam)
	app.Get("/users/:userID/classes/:classID/exams/:examID", authMW, ownerMW, exams.GetExam)
	app.All("/users/:userID/classes/:classID/exams/:examID", authMW, ownerMW, helper.NotImplemented)

	// ---- Assignments ----
	app.Get("/users/:userID/classes/:classID/assignments", authMW, ownerMW, assignments.ListMaterials)
	app.Post("/users/:userID/classes/:classID/assignments", authMW, ownerMW, assignments.CreateMaterial)
	app.Get("/users/:userID/classes/:classID/assignments/:materialID", authMW, ownerMW, assignments.GetMaterial)

	// ---- Notes ----
	app.Get("/users/:userID/classes/:classID/notes", authMW, ownerMW, notes.ListMaterials)
	app.Post("/users/:userID/classes/:classID/notes", authMW, ownerMW, notes.CreateMaterial)
	app.Get("/users/:userID/classes/:classID/notes/:materialID", authMW, ownerMW, notes.GetMaterial)

	// ---- Uploads (session only, no owner check) ----
	app.Post("/users/:userID/classes/:classID/assignments/:materialID/upload", authMW, uploads.UploadFiles)
	app.Get("/users/:userID/classes/:classID/assignments/:materialID/upload", authMW, helper.NotFoundRoute)
	app.Post("/users/:userID/classes/:classID/notes/:materialID/upload", authMW, uploads.UploadFiles)
	app.Get("/users/:userID/classes/:classID/notes/:materialID/upload", authMW, helper.NotFoundRoute)

	// unimplemented verbs on detail material endpoints
	app.All("/users/:userID/classes/:classID/assignments/:materialID", authMW, ownerMW, helper.NotImplemented)
	app.All("/users/:userID/classes/:classID/notes/:materialID", authMW, ownerMW, helper.NotImplemented)
}
