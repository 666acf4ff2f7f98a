package local

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/lensvault/lensvault/pkg/filesystem/fsctx"
	"github.com/lensvault/lensvault/pkg/filesystem/response"
	"github.com/lensvault/lensvault/pkg/util"

	"github.com/pkg/errors"
)

const (
	Perm = 0744
)

// Driver 本地存储适配器
type Driver struct {
	// BasePath 所有物理路径的根目录
	BasePath string
}

// NewDriver 初始化本地存储适配器
func NewDriver(basePath string) Driver {
	return Driver{BasePath: basePath}
}

func (handler Driver) absPath(path string) string {
	return filepath.Join(handler.BasePath, filepath.FromSlash(path))
}

// Put 将文件流保存到指定路径
func (handler Driver) Put(ctx context.Context, file fsctx.FileHeader) error {
	defer file.Close()
	dst := handler.absPath(file.GetSavePath())

	if ctx.Value(fsctx.DisableOverwrite) != nil && util.Exists(dst) {
		util.Log().Warning("物理同名文件已存在或不可用: %s", dst)
		return errors.New("physical file with the same name exists")
	}

	out, err := util.CreatNestedFile(dst)
	if err != nil {
		util.Log().Warning("无法打开或创建文件, %s", err)
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, file)
	return err
}

// Delete 删除一个或多个文件，返回未删除的文件及遇到的最后一个错误
func (handler Driver) Delete(ctx context.Context, files []string) ([]string, error) {
	deleteFailed := make([]string, 0, len(files))
	var retErr error

	for _, value := range files {
		filePath := handler.absPath(value)
		if util.Exists(filePath) {
			err := os.Remove(filePath)
			if err != nil {
				util.Log().Warning("无法删除文件, %s", err)
				retErr = err
				deleteFailed = append(deleteFailed, value)
			}
		}
	}

	return deleteFailed, retErr
}

// Get 获取文件内容
func (handler Driver) Get(ctx context.Context, path string) (response.RSCloser, error) {
	file, err := os.Open(handler.absPath(path))
	if err != nil {
		util.Log().Debug("无法打开文件: %s", err)
		return nil, err
	}

	return file, nil
}

// Move 将文件从 src 移动到 dst
func (handler Driver) Move(ctx context.Context, src, dst string) error {
	dstPath := handler.absPath(dst)
	basePath := filepath.Dir(dstPath)
	if !util.Exists(basePath) {
		if err := os.MkdirAll(basePath, Perm); err != nil {
			util.Log().Warning("无法创建目录, %s", err)
			return err
		}
	}

	return os.Rename(handler.absPath(src), dstPath)
}

// Source 本地存储不提供外链，返回相对存储路径
func (handler Driver) Source(ctx context.Context, path string, ttl int64) (string, error) {
	return "/" + path, nil
}
