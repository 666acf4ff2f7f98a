package routers

import (
	"github.com/lensvault/lensvault/middleware"
	"github.com/lensvault/lensvault/pkg/conf"
	"github.com/lensvault/lensvault/pkg/hashid"
	"github.com/lensvault/lensvault/routers/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitRouter 初始化路由
func InitRouter() *gin.Engine {
	r := gin.Default()

	// 中间件
	if conf.CORSConfig.AllowOrigins[0] != "UNSET" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     conf.CORSConfig.AllowOrigins,
			AllowMethods:     conf.CORSConfig.AllowMethods,
			AllowHeaders:     conf.CORSConfig.AllowHeaders,
			AllowCredentials: conf.CORSConfig.AllowCredentials,
			ExposeHeaders:    conf.CORSConfig.ExposeHeaders,
		}))
	}
	r.Use(middleware.CacheControl())

	// 顶层路由分组
	v3 := r.Group("/api/v3")
	{
		// 全局相关
		site := v3.Group("site")
		{
			// 测试用路由
			site.GET("ping", controllers.Ping)
		}

		// 文件
		file := v3.Group("file")
		{
			// 上传一批文件到调色板
			file.POST("upload", controllers.FileUpload)
			// 调色板文件列表
			file.GET("palette", controllers.FilePalette)
			// 批量提交到项目
			file.POST("batch", controllers.FileBatchCommit)

			// 操作单个文件
			object := file.Group("", middleware.HashID(hashid.FileID))
			{
				// 删除调色板文件
				object.DELETE(":id", controllers.FileDelete)
				// 更新文件描述
				object.PUT(":id", controllers.FileUpdate)
				// 追加元数据标签
				object.POST(":id/metadata", controllers.FileAddMetadata)
			}
		}

		// 项目
		project := v3.Group("project")
		{
			// 创建项目
			project.POST("", controllers.ProjectCreate)
			// 项目详情
			project.GET(":id", middleware.HashID(hashid.ProjectID), controllers.ProjectGet)
		}
	}
	return r
}
