package model

import (
	"time"

	"github.com/lensvault/lensvault/pkg/util"

	"github.com/jinzhu/gorm"
)

const (
	// AccessLevelAdmin 仅管理员可见
	AccessLevelAdmin = iota
	// AccessLevelEveryone 所有成员可见
	AccessLevelEveryone
	// AccessLevelSelected 仅指定成员可见
	AccessLevelSelected
)

// Project 项目模型
type Project struct {
	// 表字段
	gorm.Model
	Name        string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:50"`
	Phase       string `gorm:"size:50"`
	Location    string `gorm:"size:255"`
	ImagePath   string `gorm:"size:1024"`
	AccessLevel int
	LastUpdate  time.Time

	// 关联模型
	Files []File `gorm:"PRELOAD:false"`
	Tags  []Tag  `gorm:"many2many:project_tags;association_autoupdate:false"`
}

// Create 创建项目记录
func (project *Project) Create() (uint, error) {
	if err := DB.Create(project).Error; err != nil {
		util.Log().Warning("无法插入项目记录, %s", err)
		return 0, err
	}
	return project.ID, nil
}

// GetProjectByID 用ID获取项目
func GetProjectByID(ID interface{}) (Project, error) {
	var project Project
	result := DB.First(&project, ID)
	return project, result.Error
}

// Touch 更新项目的最后变更时间
func (project *Project) Touch() error {
	return DB.Model(project).Update("last_update", time.Now()).Error
}

// Delete 删除项目，级联清理项目标签关联。
// 项目与文件的关联有意不做级联，归属项目被删除的文件仍保留记录。
func (project *Project) Delete() error {
	if err := DB.Model(project).Association("Tags").Clear().Error; err != nil {
		return err
	}
	return DB.Unscoped().Delete(project).Error
}
