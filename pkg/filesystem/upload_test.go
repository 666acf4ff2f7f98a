package filesystem

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/filesystem/driver/local"
	"github.com/lensvault/lensvault/pkg/filesystem/fsctx"
	"github.com/lensvault/lensvault/pkg/serializer"
	"github.com/lensvault/lensvault/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestGenerateBlobName(t *testing.T) {
	asserts := assert.New(t)

	name := GenerateBlobName("IMG_0001.JPG")
	asserts.True(strings.HasPrefix(name, "original_"))
	asserts.True(strings.HasSuffix(name, ".jpg"))
	asserts.NotEqual(name, GenerateBlobName("IMG_0001.JPG"))

	asserts.False(strings.Contains(GenerateBlobName("noext"), "."))
}

func TestPalettePath(t *testing.T) {
	asserts := assert.New(t)
	asserts.Equal("palette/user1/originals/a.jpg", PalettePath(1, originalFolder, "a.jpg"))
	asserts.Equal("palette/user2/thumbnails/a.jpg", PalettePath(2, thumbnailFolder, "a.jpg"))
}

func TestProjectPath(t *testing.T) {
	asserts := assert.New(t)
	asserts.Equal("projects/project3/user1/views/a.jpg", ProjectPath(3, 1, viewFolder, "a.jpg"))
}

func TestFileSystem_Upload(t *testing.T) {
	asserts := assert.New(t)
	ctx := context.Background()
	user := &model.User{}
	user.ID = 1

	base := t.TempDir()
	fs := FileSystem{User: user, Handler: local.NewDriver(base)}

	// png 上传成功，生成预览图和缩略图
	{
		var buf bytes.Buffer
		asserts.NoError(png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 48))))
		size := uint64(buf.Len())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		file, err := fs.Upload(ctx, &fsctx.FileStream{
			File: ioutil.NopCloser(&buf),
			Size: size,
			Name: "shot.png",
		})
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.NoError(err)
		asserts.True(file.Palette)
		asserts.Equal("png", file.Extension)
		asserts.Equal(64, file.PixelWidth)
		asserts.Equal(48, file.PixelHeight)
		asserts.True(util.Exists(filepath.Join(base, filepath.FromSlash(file.OriginalPath))))
		asserts.True(util.Exists(filepath.Join(base, filepath.FromSlash(file.ViewPath))))
		asserts.True(util.Exists(filepath.Join(base, filepath.FromSlash(file.ThumbnailPath))))
	}

	// mp4 没有独立副本，三份路径均指向原始文件
	{
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		file, err := fs.Upload(ctx, &fsctx.FileStream{
			File: ioutil.NopCloser(bytes.NewReader([]byte("ftypisom"))),
			Size: 8,
			Name: "clip.mp4",
		})
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.NoError(err)
		asserts.NotEmpty(file.OriginalPath)
		asserts.Equal(file.OriginalPath, file.ViewPath)
		asserts.Equal(file.OriginalPath, file.ThumbnailPath)
	}

	// 扩展名不允许
	{
		file, err := fs.Upload(ctx, &fsctx.FileStream{
			File: ioutil.NopCloser(bytes.NewReader([]byte("x"))),
			Size: 1,
			Name: "malware.exe",
		})
		asserts.Error(err)
		appErr, ok := err.(serializer.AppError)
		asserts.True(ok)
		asserts.Equal(serializer.CodeFileTypeNotAllowed, appErr.Code)
		asserts.Contains(appErr.Msg, "malware.exe")
		asserts.Nil(file)
	}

	// 记录插入失败时清理物理文件
	{
		var buf bytes.Buffer
		asserts.NoError(png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
		size := uint64(buf.Len())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		file, err := fs.Upload(ctx, &fsctx.FileStream{
			File: ioutil.NopCloser(&buf),
			Size: size,
			Name: "shot2.png",
		})
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Error(err)
		asserts.Nil(file)

		// 调色板目录内只留下先前两次成功上传的副本
		matches, _ := filepath.Glob(filepath.Join(base, "palette", "user1", "originals", "*"))
		asserts.Len(matches, 2)
	}
}
