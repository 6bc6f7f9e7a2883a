// file: internals/features/academics/files/model/user_file_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// UserFileModel records one stored attachment. The url points into the blob
// store; the label is the object key it was stored under.
type UserFileModel struct {
	UserFileID         uint   `gorm:"column:user_file_id;primaryKey;autoIncrement"`
	UserFileMaterialID *uint  `gorm:"column:user_file_material_id;index"`
	UserFileURL        string `gorm:"column:user_file_url;size:2000;not null"`
	UserFileLabel      string `gorm:"column:user_file_label;size:255;not null"`

	UserFileCreatedAt time.Time      `gorm:"column:user_file_created_at;autoCreateTime"`
	UserFileUpdatedAt time.Time      `gorm:"column:user_file_updated_at;autoUpdateTime"`
	UserFileDeletedAt gorm.DeletedAt `gorm:"column:user_file_deleted_at;index"`
}

func (UserFileModel) TableName() string { return "user_files" }
