package main

import (
	"flag"

	"github.com/lensvault/lensvault/bootstrap"
	"github.com/lensvault/lensvault/pkg/conf"
	"github.com/lensvault/lensvault/pkg/util"
	"github.com/lensvault/lensvault/routers"

	"github.com/gin-gonic/gin"
)

var confPath string

func init() {
	flag.StringVar(&confPath, "c", util.RelativePath("conf.ini"), "配置文件路径")
	flag.Parse()
	bootstrap.Init(confPath)

	// Debug 关闭时，切换为生产模式
	if !conf.SystemConfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
}

func main() {
	api := routers.InitRouter()

	util.Log().Info("开始监听 %s", conf.SystemConfig.Listen)
	if err := api.Run(conf.SystemConfig.Listen); err != nil {
		util.Log().Error("无法监听[%s]，%s", conf.SystemConfig.Listen, err)
	}
}
