package filesystem

import (
	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/conf"
	"github.com/lensvault/lensvault/pkg/filesystem/driver"
	"github.com/lensvault/lensvault/pkg/filesystem/driver/local"
	"github.com/lensvault/lensvault/pkg/filesystem/driver/s3"
)

// FileSystem 管理文件的文件系统
type FileSystem struct {
	// 文件系统所有者
	User *model.User

	// 文件系统处理适配器
	Handler driver.Handler
}

// NewFileSystem 根据站点存储配置初始化一个文件系统
func NewFileSystem(user *model.User) (*FileSystem, error) {
	fs := &FileSystem{
		User: user,
	}

	err := fs.DispatchHandler()
	return fs, err
}

// DispatchHandler 根据存储配置分发文件系统处理适配器
func (fs *FileSystem) DispatchHandler() error {
	switch conf.StorageConfig.Type {
	case "local":
		fs.Handler = local.NewDriver(conf.StorageConfig.BasePath)
		return nil
	case "s3":
		handler, err := s3.NewDriver(
			conf.StorageConfig.Bucket,
			conf.StorageConfig.Region,
			conf.StorageConfig.Endpoint,
			conf.StorageConfig.AccessKey,
			conf.StorageConfig.SecretKey,
		)
		if err != nil {
			return err
		}
		fs.Handler = handler
		return nil
	default:
		return ErrUnknownStorageType
	}
}
