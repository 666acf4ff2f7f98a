package model

import (
	"github.com/lensvault/lensvault/pkg/util"

	"github.com/jinzhu/gorm"
)

// Tag 全局标签词表中的自由文本标签。
// Value 全局唯一，首次使用时延迟创建，绝不重复插入。
type Tag struct {
	gorm.Model
	Value string `gorm:"type:varchar(191);unique_index"`
}

// Create 创建标签记录
func (tag *Tag) Create() (uint, error) {
	if err := DB.Create(tag).Error; err != nil {
		util.Log().Warning("无法插入标签记录, %s", err)
		return 0, err
	}
	return tag.ID, nil
}

// GetTagByValue 根据标签值查找标签
func GetTagByValue(value string) (Tag, error) {
	var tag Tag
	result := DB.Where("value = ?", value).First(&tag)
	return tag, result.Error
}

// GetTagsByValues 批量查找已存在的标签，整批一次查询
func GetTagsByValues(values []string) ([]Tag, error) {
	var tags []Tag
	result := DB.Where("value in (?)", values).Find(&tags)
	return tags, result.Error
}
