package driver

import (
	"context"

	"github.com/lensvault/lensvault/pkg/filesystem/fsctx"
	"github.com/lensvault/lensvault/pkg/filesystem/response"
)

// Handler 存储策略适配器
type Handler interface {
	// 将文件流保存到 file.GetSavePath() 指定的存储路径
	Put(ctx context.Context, file fsctx.FileHeader) error

	// 删除一个或多个给定路径的文件，返回删除失败的文件路径列表及错误
	Delete(ctx context.Context, files []string) ([]string, error)

	// 获取文件内容
	Get(ctx context.Context, path string) (response.RSCloser, error)

	// 将文件从 src 移动到 dst，随后 src 不再可用
	Move(ctx context.Context, src, dst string) error

	// 获取外界可访问的文件来源地址，有效期由 ttl 指定
	Source(ctx context.Context, path string, ttl int64) (string, error)
}
