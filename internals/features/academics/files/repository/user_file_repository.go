package repository

import (
	"gorm.io/gorm"

	fileModel "swimmingfish_backend/internals/features/academics/files/model"
)

func CreateUserFile(db *gorm.DB, file *fileModel.UserFileModel) error {
	return db.Create(file).Error
}

func FindUserFilesByMaterial(db *gorm.DB, materialID uint) ([]fileModel.UserFileModel, error) {
	var files []fileModel.UserFileModel
	err := db.Where("user_file_material_id = ?", materialID).
		Order("user_file_id ASC").
		Find(&files).Error
	return files, err
}
