package explorer

import (
	"context"
	"time"

	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/filesystem"
	"github.com/lensvault/lensvault/pkg/serializer"
	"github.com/lensvault/lensvault/pkg/util"

	"github.com/gin-gonic/gin"
)

// FileService 单文件操作服务
type FileService struct {
	UserID string `form:"user_id" json:"user_id" binding:"required"`
}

// PaletteListService 调色板列表服务
type PaletteListService struct {
	UserID string `form:"user_id" binding:"required"`
}

// UpdateFileService 文件属性更新服务
type UpdateFileService struct {
	UserID      string     `json:"user_id" binding:"required"`
	Description string     `json:"description"`
	TakenAt     *time.Time `json:"taken_at"`
}

// Delete 删除调色板中的文件记录和物理副本
func (service *FileService) Delete(c *gin.Context) serializer.Response {
	user, errResp := resolveUser(service.UserID)
	if errResp != nil {
		return *errResp
	}

	fileID := c.MustGet("object_id").(uint)
	file, err := model.GetFileByIDAndUser(fileID, user.ID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "File not found", err)
	}

	if err := file.Delete(); err != nil {
		return serializer.DBErr("Failed to delete file record", err)
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	// 物理副本清理失败不回滚记录删除，仅记录日志
	paths := filePaths(&file)
	if failed, err := fs.Handler.Delete(context.Background(), paths); err != nil {
		util.Log().Warning("无法删除文件物理副本 %v, %s", failed, err)
	}

	return serializer.Response{}
}

// List 列出用户调色板中的全部文件
func (service *PaletteListService) List() serializer.Response {
	user, errResp := resolveUser(service.UserID)
	if errResp != nil {
		return *errResp
	}

	files, err := model.GetPaletteFiles(user.ID)
	if err != nil {
		return serializer.DBErr("Failed to list palette files", err)
	}

	return serializer.BuildAssetListResponse(files)
}

// Update 更新文件描述
func (service *UpdateFileService) Update(c *gin.Context) serializer.Response {
	user, errResp := resolveUser(service.UserID)
	if errResp != nil {
		return *errResp
	}

	fileID := c.MustGet("object_id").(uint)
	file, err := model.GetFileByIDAndUser(fileID, user.ID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "File not found", err)
	}

	if err := file.UpdateDescription(service.Description); err != nil {
		return serializer.DBErr("Failed to update file", err)
	}
	file.Description = service.Description

	if service.TakenAt != nil {
		if err := file.UpdateTakenAt(service.TakenAt); err != nil {
			return serializer.DBErr("Failed to update file", err)
		}
		file.DateTimeOriginal = service.TakenAt
	}

	return serializer.BuildAssetResponse(file)
}

// filePaths 收集文件占用的物理路径，去重后用于清理
func filePaths(file *model.File) []string {
	paths := make([]string, 0, 3)
	seen := make(map[string]bool)
	for _, path := range []string{file.OriginalPath, file.ViewPath, file.ThumbnailPath} {
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}
	return paths
}
