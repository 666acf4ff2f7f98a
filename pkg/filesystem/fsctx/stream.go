package fsctx

import (
	"io"
)

// FileStream 用户上传来的文件
type FileStream struct {
	File     io.ReadCloser
	Size     uint64
	Name     string
	MIMEType string
	SavePath string
}

func (file *FileStream) Read(p []byte) (n int, err error) {
	return file.File.Read(p)
}

func (file *FileStream) Close() error {
	return file.File.Close()
}

func (file *FileStream) GetSize() uint64 {
	return file.Size
}

func (file *FileStream) GetFileName() string {
	return file.Name
}

func (file *FileStream) GetMIMEType() string {
	return file.MIMEType
}

func (file *FileStream) GetSavePath() string {
	return file.SavePath
}

// FileHeader 上传来的文件数据处理器
type FileHeader interface {
	io.Reader
	io.Closer
	GetSize() uint64
	GetFileName() string
	GetMIMEType() string
	GetSavePath() string
}
