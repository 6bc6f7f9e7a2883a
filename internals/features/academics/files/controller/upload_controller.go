package controller

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path"
	"sort"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fileModel "swimmingfish_backend/internals/features/academics/files/model"
	fileRepo "swimmingfish_backend/internals/features/academics/files/repository"
	materialRepo "swimmingfish_backend/internals/features/academics/materials/repository"
	helper "swimmingfish_backend/internals/helpers"
	ossHelper "swimmingfish_backend/internals/helpers/oss"
)

// UploadController forwards multipart attachments to the blob store and
// records a row per stored file. Blob may be nil when the store is not
// configured; uploads then answer 503 instead of failing at boot.
type UploadController struct {
	DB   *gorm.DB
	Blob ossHelper.BlobService
}

func NewUploadController(db *gorm.DB, blob ossHelper.BlobService) *UploadController {
	return &UploadController{DB: db, Blob: blob}
}

func (uc *UploadController) UploadFiles(c *fiber.Ctx) error {
	if uc.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "File storage is not configured")
	}

	userID, err := helper.ParamUint(c, "userID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParamUint(c, "classID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	materialID, err := helper.ParamUint(c, "materialID")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := materialRepo.FindMaterialByID(uc.DB, materialID); err != nil {
		return helper.FromLookupError(c, err, "Material")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid multipart form")
	}
	if len(form.File) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No files attached")
	}

	// deterministic ordering across form fields
	fields := make([]string, 0, len(form.File))
	for name := range form.File {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	var links []string
	for _, field := range fields {
		headers := form.File[field]
		if len(headers) == 0 {
			continue
		}
		fh := headers[0]

		f, err := fh.Open()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not read uploaded file")
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not read uploaded file")
		}

		body, contentType, converted := ossHelper.NormalizeImage(data, fh.Filename)
		if converted {
			log.Printf("[INFO] upload: converted %q to webp (%d -> %d bytes)", fh.Filename, len(data), len(body))
		}

		key := fmt.Sprintf("%d/%d/%d/%s", userID, classID, materialID, path.Base(field))
		url, err := uc.Blob.UploadStream(c.Context(), key, bytes.NewReader(body), contentType)
		if err != nil {
			log.Printf("[ERROR] upload: store %q failed: %v", key, err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Failed to store file")
		}

		mid := materialID
		row := fileModel.UserFileModel{
			UserFileMaterialID: &mid,
			UserFileURL:        url,
			UserFileLabel:      key,
		}
		if err := fileRepo.CreateUserFile(uc.DB, &row); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record file")
		}
		links = append(links, url)
	}

	if len(links) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No files attached")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"link":  links[len(links)-1],
		"links": links,
	})
}
