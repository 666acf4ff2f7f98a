package controllers

import (
	"github.com/lensvault/lensvault/service/explorer"

	"github.com/gin-gonic/gin"
)

// FileUpload 上传一批文件到调色板
func FileUpload(c *gin.Context) {
	var service explorer.UploadService
	if err := c.ShouldBind(&service); err == nil {
		res := service.Upload(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// FileBatchCommit 将调色板中的一批文件提交到项目
func FileBatchCommit(c *gin.Context) {
	var service explorer.BatchService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Commit()
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// FileDelete 删除调色板文件
func FileDelete(c *gin.Context) {
	var service explorer.FileService
	if err := c.ShouldBind(&service); err == nil {
		res := service.Delete(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// FilePalette 列出用户调色板
func FilePalette(c *gin.Context) {
	var service explorer.PaletteListService
	if err := c.ShouldBindQuery(&service); err == nil {
		res := service.List()
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// FileUpdate 更新文件描述
func FileUpdate(c *gin.Context) {
	var service explorer.UpdateFileService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Update(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// FileAddMetadata 向文件追加元数据标签
func FileAddMetadata(c *gin.Context) {
	var service explorer.AddMetadataService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Add(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}
