package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "swimmingfish_backend/internals/databases"
	courseModel "swimmingfish_backend/internals/features/academics/courses/model"
	uploadController "swimmingfish_backend/internals/features/academics/files/controller"
	fileRepo "swimmingfish_backend/internals/features/academics/files/repository"
	materialModel "swimmingfish_backend/internals/features/academics/materials/model"
	userModel "swimmingfish_backend/internals/features/users/auth/model"
	ossHelper "swimmingfish_backend/internals/helpers/oss"
)

type fakeBlob struct {
	keys  []string
	types []string
}

func (f *fakeBlob) UploadStream(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	f.keys = append(f.keys, key)
	f.types = append(f.types, contentType)
	return "https://blob.test/" + key, nil
}

func newUploadApp(t *testing.T, blob ossHelper.BlobService) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	uc := uploadController.NewUploadController(db, blob)
	app := fiber.New()
	app.Post("/users/:userID/classes/:classID/assignments/:materialID/upload", uc.UploadFiles)
	return app, db
}

func seedMaterial(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	user := userModel.UserModel{UserName: "fish", UserPassword: "x"}
	require.NoError(t, db.Create(&user).Error)
	course := courseModel.CourseModel{CourseUserID: user.UserID, CourseName: "Biology", CourseColor: "039BE5"}
	require.NoError(t, db.Create(&course).Error)
	material := materialModel.CourseMaterialModel{
		CourseMaterialCourseID: course.CourseID,
		CourseMaterialType:     materialModel.TypeAssignment,
		CourseMaterialName:     "Worksheet",
	}
	require.NoError(t, db.Create(&material).Error)
	return material.CourseMaterialID
}

func multipartBody(t *testing.T, files map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, content := range files {
		fw, err := w.CreateFormFile(field, field+".txt")
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadStoresEveryField(t *testing.T) {
	blob := &fakeBlob{}
	app, db := newUploadApp(t, blob)
	materialID := seedMaterial(t, db)

	body, contentType := multipartBody(t, map[string]string{
		"alpha": "first file",
		"beta":  "second file",
	})
	req := httptest.NewRequest(http.MethodPost, "/users/1/classes/1/assignments/1/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		Link  string   `json:"link"`
		Links []string `json:"links"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))

	// field names sort, so beta's URL is the last link
	require.Equal(t, []string{
		"https://blob.test/1/1/1/alpha",
		"https://blob.test/1/1/1/beta",
	}, payload.Links)
	assert.Equal(t, "https://blob.test/1/1/1/beta", payload.Link)
	assert.Equal(t, []string{"1/1/1/alpha", "1/1/1/beta"}, blob.keys)

	rows, err := fileRepo.FindUserFilesByMaterial(db, materialID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1/1/1/alpha", rows[0].UserFileLabel)
	assert.Equal(t, "https://blob.test/1/1/1/alpha", rows[0].UserFileURL)
}

func TestUploadUnknownMaterial(t *testing.T) {
	app, _ := newUploadApp(t, &fakeBlob{})

	body, contentType := multipartBody(t, map[string]string{"alpha": "data"})
	req := httptest.NewRequest(http.MethodPost, "/users/1/classes/1/assignments/99/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUploadWithoutFiles(t *testing.T) {
	app, db := newUploadApp(t, &fakeBlob{})
	seedMaterial(t, db)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("note", "no file here"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/users/1/classes/1/assignments/1/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadWithoutBlobStore(t *testing.T) {
	app, db := newUploadApp(t, nil)
	seedMaterial(t, db)

	body, contentType := multipartBody(t, map[string]string{"alpha": "data"})
	req := httptest.NewRequest(http.MethodPost, "/users/1/classes/1/assignments/1/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
