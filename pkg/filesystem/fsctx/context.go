package fsctx

type key int

const (
	// UserCtx 当前操作用户
	UserCtx key = iota
	// FileModelCtx 文件数据库模型
	FileModelCtx
	// DisableOverwrite 写入时禁止覆盖已有物理文件
	DisableOverwrite
)
