package model

import (
	"github.com/jinzhu/gorm"
)

// ProjectUser 项目与用户的关联模型，携带成员个性化标记
type ProjectUser struct {
	gorm.Model
	ProjectID uint `gorm:"index:project_id;unique_index:idx_project_user"`
	UserID    uint `gorm:"index:user_id;unique_index:idx_project_user"`
	// Favourite 是否星标
	Favourite bool
	// WorkingOn 是否为当前正在进行的项目
	WorkingOn bool
}

// Create 创建项目成员关联
func (relation *ProjectUser) Create() (uint, error) {
	if err := DB.Create(relation).Error; err != nil {
		return 0, err
	}
	return relation.ID, nil
}

// GetProjectUser 查找给定项目和用户间的关联
func GetProjectUser(projectID, userID uint) (ProjectUser, error) {
	var relation ProjectUser
	result := DB.Where("project_id = ? and user_id = ?", projectID, userID).First(&relation)
	return relation, result.Error
}

// GetProjectsByUserID 查找用户参与的全部项目关联
func GetProjectsByUserID(userID uint) ([]ProjectUser, error) {
	var relations []ProjectUser
	result := DB.Where("user_id = ?", userID).Find(&relations)
	return relations, result.Error
}

// SetFlags 更新关联上的个性化标记
func (relation *ProjectUser) SetFlags(favourite, workingOn bool) error {
	return DB.Model(relation).Updates(map[string]interface{}{
		"favourite":  favourite,
		"working_on": workingOn,
	}).Error
}
