package filesystem

import (
	"context"
	"path"

	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/util"
)

// Relocate 将调色板文件的全部物理副本移动到项目目录下，
// 返回各副本的最终存储路径。预览图复用原图时不产生额外移动
func (fs *FileSystem) Relocate(ctx context.Context, file *model.File, pid uint) (originalPath, viewPath, thumbnailPath string, err error) {
	blobName := path.Base(file.OriginalPath)

	originalPath = ProjectPath(pid, file.UserID, originalFolder, blobName)
	if err = fs.Handler.Move(ctx, file.OriginalPath, originalPath); err != nil {
		return "", "", "", ErrIO.WithError(err)
	}

	viewPath = originalPath
	if file.ViewPath != "" && file.ViewPath != file.OriginalPath {
		viewPath = ProjectPath(pid, file.UserID, viewFolder, blobName)
		if err = fs.Handler.Move(ctx, file.ViewPath, viewPath); err != nil {
			fs.rollbackRelocate(ctx, file, originalPath, "", "")
			return "", "", "", ErrIO.WithError(err)
		}
	}

	// 没有独立缩略图时复用预览图路径，三份路径均不为空
	thumbnailPath = viewPath
	if file.ThumbnailPath != "" && file.ThumbnailPath != file.OriginalPath && file.ThumbnailPath != file.ViewPath {
		thumbnailPath = ProjectPath(pid, file.UserID, thumbnailFolder, blobName)
		if err = fs.Handler.Move(ctx, file.ThumbnailPath, thumbnailPath); err != nil {
			fs.rollbackRelocate(ctx, file, originalPath, viewPath, "")
			return "", "", "", ErrIO.WithError(err)
		}
	}

	return originalPath, viewPath, thumbnailPath, nil
}

// rollbackRelocate 移动中途失败时把已移动的副本搬回原位
func (fs *FileSystem) rollbackRelocate(ctx context.Context, file *model.File, movedOriginal, movedView, movedThumb string) {
	if movedOriginal != "" {
		if err := fs.Handler.Move(ctx, movedOriginal, file.OriginalPath); err != nil {
			util.Log().Warning("无法回滚原始文件 %q: %s", movedOriginal, err)
		}
	}
	if movedView != "" && movedView != movedOriginal {
		if err := fs.Handler.Move(ctx, movedView, file.ViewPath); err != nil {
			util.Log().Warning("无法回滚预览图 %q: %s", movedView, err)
		}
	}
	if movedThumb != "" {
		if err := fs.Handler.Move(ctx, movedThumb, file.ThumbnailPath); err != nil {
			util.Log().Warning("无法回滚缩略图 %q: %s", movedThumb, err)
		}
	}
}
