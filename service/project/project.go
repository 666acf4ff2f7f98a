package project

import (
	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/hashid"
	"github.com/lensvault/lensvault/pkg/serializer"
	"github.com/lensvault/lensvault/pkg/util"

	"github.com/gin-gonic/gin"
)

// ProjectCreateService 项目创建服务
type ProjectCreateService struct {
	UserID      string `json:"user_id" binding:"required"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"max=50"`
	Phase       string `json:"phase" binding:"max=50"`
	Location    string `json:"location" binding:"max=255"`
	AccessLevel int    `json:"access_level" binding:"gte=0,lte=2"`
}

// ProjectService 项目查询服务
type ProjectService struct {
	UserID string `form:"user_id" binding:"required"`
}

// Create 创建项目并把创建者加入项目成员
func (service *ProjectCreateService) Create() serializer.Response {
	user, err := resolveUser(service.UserID)
	if err != nil {
		return serializer.Err(serializer.CodeUserNotFound, "Unknown user", err)
	}

	project := model.Project{
		Name:        service.Name,
		Description: service.Description,
		Status:      service.Status,
		Phase:       service.Phase,
		Location:    service.Location,
		AccessLevel: service.AccessLevel,
	}
	if _, err := project.Create(); err != nil {
		return serializer.DBErr("Failed to insert project record", err)
	}

	relation := model.ProjectUser{
		ProjectID: project.ID,
		UserID:    user.ID,
	}
	if _, err := relation.Create(); err != nil {
		util.Log().Warning("无法插入项目成员关联, %s", err)
	}

	if err := project.Touch(); err != nil {
		util.Log().Warning("无法更新项目时间戳, %s", err)
	}

	return serializer.BuildProjectResponse(project, &relation)
}

// Get 查询单个项目的详情和成员个性化标记
func (service *ProjectService) Get(c *gin.Context) serializer.Response {
	user, err := resolveUser(service.UserID)
	if err != nil {
		return serializer.Err(serializer.CodeUserNotFound, "Unknown user", err)
	}

	projectID := c.MustGet("object_id").(uint)
	project, err := model.GetProjectByID(projectID)
	if err != nil {
		return serializer.Err(serializer.CodeProjectNotFound, "Project not found", err)
	}

	var relation *model.ProjectUser
	if rel, err := model.GetProjectUser(project.ID, user.ID); err == nil {
		relation = &rel
	}

	return serializer.BuildProjectResponse(project, relation)
}

// resolveUser 解码用户HashID并验证用户存在
func resolveUser(hashedID string) (*model.User, error) {
	uid, err := hashid.DecodeHashID(hashedID, hashid.UserID)
	if err != nil {
		return nil, err
	}
	user, err := model.GetUserByID(uid)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
