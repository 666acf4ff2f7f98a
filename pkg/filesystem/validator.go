package filesystem

import (
	"context"
	"fmt"

	"github.com/lensvault/lensvault/pkg/serializer"
	"github.com/lensvault/lensvault/pkg/util"
)

const (
	// MaxBatchFiles 单批次允许的最大文件数
	MaxBatchFiles = 100
	// MaxFileSize 单文件大小上限
	MaxFileSize = 500 << 20
)

// 允许入库的文件扩展名
var allowedExtensions = []string{"jpg", "jpeg", "png", "raw", "arw", "mp4"}

// ValidateBatchCount 验证批次内文件数量是否超出限制
func (fs *FileSystem) ValidateBatchCount(ctx context.Context, count int) error {
	if count == 0 {
		return ErrEmptyBatch
	}
	if count > MaxBatchFiles {
		return ErrBatchTooLarge
	}
	return nil
}

// ValidateFileSize 验证上传的文件大小是否超出限制
func (fs *FileSystem) ValidateFileSize(ctx context.Context, size uint64) bool {
	return size <= MaxFileSize
}

// ValidateExtension 验证文件扩展名
func (fs *FileSystem) ValidateExtension(ctx context.Context, fileName string) bool {
	ext := util.Ext(fileName)
	// 无扩展名时
	if len(ext) == 0 {
		return false
	}

	return util.ContainsString(allowedExtensions, ext)
}

// ValidateFile 依次执行单文件的全部准入校验，错误信息中带上文件名
// 以便客户端定位批次中未通过校验的文件
func (fs *FileSystem) ValidateFile(ctx context.Context, fileName string, size uint64) error {
	if !fs.ValidateExtension(ctx, fileName) {
		return serializer.NewError(serializer.CodeFileTypeNotAllowed,
			fmt.Sprintf("File %q has an unsupported file type", fileName), nil)
	}
	if !fs.ValidateFileSize(ctx, size) {
		return serializer.NewError(serializer.CodeFileTooLarge,
			fmt.Sprintf("File %q exceeds the size limit", fileName), nil)
	}
	return nil
}
