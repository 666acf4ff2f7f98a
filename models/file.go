package model

import (
	"time"

	"github.com/lensvault/lensvault/pkg/util"

	"github.com/jinzhu/gorm"
)

// File 文件（资产）模型
type File struct {
	gorm.Model
	Name        string `gorm:"unique_index:idx_only_one"`
	Extension   string `gorm:"type:varchar(32)"`
	Description string `gorm:"type:text"`
	Size        uint64

	// 三份物理副本的存储路径
	OriginalPath  string `gorm:"type:text"`
	ViewPath      string `gorm:"type:text"`
	ThumbnailPath string `gorm:"type:text"`

	// EXIF 提取结果，缺失的字段保持为 NULL
	DateTimeOriginal *time.Time
	PixelWidth       int
	PixelHeight      int
	CameraMake       *string `gorm:"type:varchar(191)"`
	CameraModel      *string `gorm:"type:varchar(191)"`
	Copyright        *string `gorm:"type:varchar(191)"`
	FocalLength      *int
	Aperture         *float64
	GPSLat           *float64
	GPSLng           *float64
	GPSAlt           *float64

	// Palette 为真时文件尚未提交到任何项目
	Palette   bool  `gorm:"index:palette"`
	UserID    uint  `gorm:"index:user_id;unique_index:idx_only_one"`
	ProjectID *uint `gorm:"index:project_id;unique_index:idx_only_one"`

	Tags     []Tag         `gorm:"many2many:file_tags;PRELOAD:false"`
	Metadata []MetadataTag `gorm:"PRELOAD:false"`
}

// Create 创建文件记录
func (file *File) Create() (uint, error) {
	if err := DB.Create(file).Error; err != nil {
		util.Log().Warning("无法插入文件记录, %s", err)
		return 0, err
	}
	return file.ID, nil
}

// GetFileByID 用 ID 查找文件
func GetFileByID(ID interface{}) (File, error) {
	var file File
	result := DB.First(&file, ID)
	return file, result.Error
}

// GetFileByIDAndUser 用 ID 和所属用户查找文件
func GetFileByIDAndUser(ID, uid uint) (File, error) {
	var file File
	result := DB.Where("id = ? AND user_id = ?", ID, uid).First(&file)
	return file, result.Error
}

// GetFilesByIDs 批量查找文件并预加载标签
func GetFilesByIDs(ids []uint) ([]File, error) {
	var files []File
	result := DB.Preload("Tags").Where("id in (?)", ids).Find(&files)
	return files, result.Error
}

// GetPaletteFiles 查找用户调色板中尚未提交的全部文件
func GetPaletteFiles(uid uint) ([]File, error) {
	var files []File
	result := DB.Where("user_id = ? AND palette = ?", uid, true).Find(&files)
	return files, result.Error
}

// GetFilesByProjectID 查找项目下的全部文件并预加载标签
func GetFilesByProjectID(pid uint) ([]File, error) {
	var files []File
	result := DB.Preload("Tags").Where("project_id = ?", pid).Find(&files)
	return files, result.Error
}

// GetStaleFiles 查找用户在指定项目下不在 excludeIDs 范围内的旧文件，
// 供提交协调器在插入新批次后清理前一批次使用
func GetStaleFiles(uid, pid uint, excludeIDs []uint) ([]File, error) {
	var files []File
	result := DB.Where("user_id = ? AND project_id = ? AND id not in (?)", uid, pid, excludeIDs).
		Find(&files)
	return files, result.Error
}

// AppendTags 将标签关联到文件
func (file *File) AppendTags(tags []Tag) error {
	return DB.Model(file).Association("Tags").Append(tags).Error
}

// UpdateDescription 更新文件描述
func (file *File) UpdateDescription(value string) error {
	return DB.Model(file).Update("description", value).Error
}

// UpdateTakenAt 更新文件拍摄时间
func (file *File) UpdateTakenAt(value *time.Time) error {
	return DB.Model(file).Update("date_time_original", value).Error
}

// Submit 将调色板文件挂到项目下并写入三份副本的最终路径
func (file *File) Submit(pid uint, originalPath, viewPath, thumbnailPath string) error {
	return DB.Model(file).Updates(map[string]interface{}{
		"palette":        false,
		"project_id":     pid,
		"original_path":  originalPath,
		"view_path":      viewPath,
		"thumbnail_path": thumbnailPath,
	}).Error
}

// Delete 删除文件记录及其元数据标签和标签关联
func (file *File) Delete() error {
	if err := DB.Where("file_id = ?", file.ID).Delete(&MetadataTag{}).Error; err != nil {
		return err
	}
	if err := DB.Model(file).Association("Tags").Clear().Error; err != nil {
		return err
	}
	return DB.Delete(file).Error
}

// DeleteFiles 批量删除文件记录及其关联，返回成功删除的文件
func DeleteFiles(files []File) ([]File, error) {
	deleted := make([]File, 0, len(files))
	for i := range files {
		if err := files[i].Delete(); err != nil {
			return deleted, err
		}
		deleted = append(deleted, files[i])
	}
	return deleted, nil
}
