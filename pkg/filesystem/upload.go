package filesystem

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"path"

	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/filesystem/fsctx"
	"github.com/lensvault/lensvault/pkg/mediameta"
	"github.com/lensvault/lensvault/pkg/thumb"
	"github.com/lensvault/lensvault/pkg/util"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

const (
	paletteRoot     = "palette"
	projectRoot     = "projects"
	originalFolder  = "originals"
	viewFolder      = "views"
	thumbnailFolder = "thumbnails"
)

// GenerateBlobName 为上传的文件生成唯一存储名
func GenerateBlobName(fileName string) string {
	ext := util.Ext(fileName)
	id := uuid.Must(uuid.NewV4()).String()
	if ext == "" {
		return "original_" + id
	}
	return fmt.Sprintf("original_%s.%s", id, ext)
}

// PalettePath 拼接调色板内某一副本的存储路径
func PalettePath(uid uint, folder, blobName string) string {
	return path.Join(paletteRoot, fmt.Sprintf("user%d", uid), folder, blobName)
}

// ProjectPath 拼接项目内某一副本的存储路径
func ProjectPath(pid, uid uint, folder, blobName string) string {
	return path.Join(projectRoot, fmt.Sprintf("project%d", pid), fmt.Sprintf("user%d", uid), folder, blobName)
}

// Upload 将上传的文件保存到当前用户的调色板，提取其元数据并生成
// 预览图和缩略图副本，最后写入文件记录
func (fs *FileSystem) Upload(ctx context.Context, file *fsctx.FileStream) (*model.File, error) {
	// 准入校验
	if err := fs.ValidateFile(ctx, file.Name, file.Size); err != nil {
		return nil, err
	}

	// 保存原始文件
	blobName := GenerateBlobName(file.Name)
	file.SavePath = PalettePath(fs.User.ID, originalFolder, blobName)
	if err := fs.Handler.Put(ctx, file); err != nil {
		return nil, ErrIO.WithError(err)
	}

	fileModel := &model.File{
		Name:         file.Name,
		Extension:    util.Ext(file.Name),
		Size:         file.Size,
		OriginalPath: file.SavePath,
		Palette:      true,
		UserID:       fs.User.ID,
	}

	// 回读原始文件提取元数据、生成各尺寸副本
	if err := fs.composeRenditions(ctx, fileModel, blobName); err != nil {
		// 清理已写入的物理文件，保持上传操作原子
		fs.cleanupPaths(ctx, fileModel)
		return nil, err
	}

	if _, err := fileModel.Create(); err != nil {
		fs.cleanupPaths(ctx, fileModel)
		return nil, ErrInsertFileRecord.WithError(err)
	}

	return fileModel, nil
}

// composeRenditions 从已保存的原始文件提取EXIF元数据并生成预览图、
// 缩略图副本。无法解码的格式复用原图作为预览，跳过缩略图
func (fs *FileSystem) composeRenditions(ctx context.Context, fileModel *model.File, blobName string) error {
	source, err := fs.Handler.Get(ctx, fileModel.OriginalPath)
	if err != nil {
		return ErrIO.WithError(err)
	}
	defer source.Close()

	// 视频不携带EXIF，三份副本路径均复用原始文件
	if fileModel.Extension == "mp4" {
		fileModel.ViewPath = fileModel.OriginalPath
		fileModel.ThumbnailPath = fileModel.OriginalPath
		return nil
	}

	meta, err := mediameta.Extract(fileModel.Extension, source, int64(fileModel.Size))
	if err != nil {
		util.Log().Warning("无法提取 %q 的EXIF元数据: %s", fileModel.Name, err)
		meta = &mediameta.Meta{}
	}

	// EXIF 未携带尺寸时解码图像头
	if meta.Width == 0 || meta.Height == 0 {
		if w, h, err := mediameta.ProbeDimensions(source); err == nil && w > 0 {
			meta.Width, meta.Height = w, h
		}
	}

	fileModel.DateTimeOriginal = meta.TakenAt
	fileModel.PixelWidth = meta.Width
	fileModel.PixelHeight = meta.Height
	fileModel.CameraMake = meta.CameraMake
	fileModel.CameraModel = meta.CameraModel
	fileModel.Copyright = meta.Copyright
	fileModel.FocalLength = meta.FocalLength
	fileModel.Aperture = meta.Aperture
	fileModel.GPSLat = meta.Latitude
	fileModel.GPSLng = meta.Longitude
	fileModel.GPSAlt = meta.Altitude

	return fs.generateRenditions(ctx, fileModel, source, blobName)
}

// generateRenditions 生成预览图和缩略图两份降采样副本
func (fs *FileSystem) generateRenditions(ctx context.Context, fileModel *model.File, source io.ReadSeeker, blobName string) error {
	if _, err := source.Seek(0, io.SeekStart); err != nil {
		return ErrIO.WithError(err)
	}

	image, err := thumb.NewThumbFromFile(source, fileModel.Extension)
	if err != nil {
		// 无法解码的格式没有独立副本，三份路径均指向原始文件
		if errors.Is(err, thumb.ErrUnsupportedFormat) {
			fileModel.ViewPath = fileModel.OriginalPath
			fileModel.ThumbnailPath = fileModel.OriginalPath
			return nil
		}
		return ErrIO.WithError(err)
	}

	// 预览图
	view := *image
	view.GetThumb(thumb.ViewMaxWidth, thumb.ViewMaxHeight)
	fileModel.ViewPath = PalettePath(fs.User.ID, viewFolder, blobName)
	if err := fs.saveRendition(ctx, &view, fileModel.ViewPath); err != nil {
		return err
	}

	// 缩略图
	image.GetThumb(thumb.ThumbMaxWidth, thumb.ThumbMaxHeight)
	fileModel.ThumbnailPath = PalettePath(fs.User.ID, thumbnailFolder, blobName)
	if err := fs.saveRendition(ctx, image, fileModel.ThumbnailPath); err != nil {
		return err
	}

	return nil
}

// saveRendition 编码副本并交给存储适配器保存
func (fs *FileSystem) saveRendition(ctx context.Context, image *thumb.Thumb, dst string) error {
	var buf bytes.Buffer
	if err := image.Save(&buf); err != nil {
		return ErrIO.WithError(err)
	}

	stream := &fsctx.FileStream{
		File:     ioutil.NopCloser(&buf),
		Size:     uint64(buf.Len()),
		SavePath: dst,
	}
	if err := fs.Handler.Put(ctx, stream); err != nil {
		return ErrIO.WithError(err)
	}
	return nil
}

// cleanupPaths 清理一个文件已写入的全部物理副本
func (fs *FileSystem) cleanupPaths(ctx context.Context, fileModel *model.File) {
	paths := make([]string, 0, 3)
	for _, p := range []string{fileModel.OriginalPath, fileModel.ViewPath, fileModel.ThumbnailPath} {
		if p != "" && !util.ContainsString(paths, p) {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return
	}
	if failed, err := fs.Handler.Delete(ctx, paths); err != nil {
		util.Log().Warning("无法清理物理文件 %v: %s", failed, err)
	}
}
