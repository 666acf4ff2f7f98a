package controllers

import (
	"github.com/lensvault/lensvault/service/project"

	"github.com/gin-gonic/gin"
)

// ProjectCreate 创建项目
func ProjectCreate(c *gin.Context) {
	var service project.ProjectCreateService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Create()
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ProjectGet 查询项目详情
func ProjectGet(c *gin.Context) {
	var service project.ProjectService
	if err := c.ShouldBindQuery(&service); err == nil {
		res := service.Get(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}
