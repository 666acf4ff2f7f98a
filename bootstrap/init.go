package bootstrap

import (
	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/cache"
	"github.com/lensvault/lensvault/pkg/conf"
)

// Init 初始化启动
func Init(path string) {
	InitApplication()
	conf.Init(path)
	cache.Init()
	model.Init()
}
