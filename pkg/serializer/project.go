package serializer

import (
	"time"

	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/hashid"
)

// ProjectSummary 项目序列化器
type ProjectSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Phase       string    `json:"phase"`
	Location    string    `json:"location"`
	ImagePath   string    `json:"image_path"`
	AccessLevel int       `json:"access_level"`
	LastUpdate  time.Time `json:"last_update"`
	Tags        []string  `json:"tags"`
	Favourite   bool      `json:"favourite"`
	WorkingOn   bool      `json:"working_on"`
}

func buildProject(project model.Project, relation *model.ProjectUser) ProjectSummary {
	res := ProjectSummary{
		ID:          hashid.HashID(project.ID, hashid.ProjectID),
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		Phase:       project.Phase,
		Location:    project.Location,
		ImagePath:   project.ImagePath,
		AccessLevel: project.AccessLevel,
		LastUpdate:  project.LastUpdate,
		Tags:        make([]string, 0, len(project.Tags)),
	}
	for _, tag := range project.Tags {
		res.Tags = append(res.Tags, tag.Value)
	}
	if relation != nil {
		res.Favourite = relation.Favourite
		res.WorkingOn = relation.WorkingOn
	}
	return res
}

// BuildProjectResponse 构建单个项目响应
func BuildProjectResponse(project model.Project, relation *model.ProjectUser) Response {
	return Response{
		Data: buildProject(project, relation),
	}
}

// BuildProjectListResponse 构建项目列表响应
func BuildProjectListResponse(projects []model.Project, relations map[uint]*model.ProjectUser) Response {
	res := make([]ProjectSummary, 0, len(projects))
	for _, project := range projects {
		res = append(res, buildProject(project, relations[project.ID]))
	}
	return Response{
		Data: map[string]interface{}{
			"projects": res,
		},
	}
}
