package model

import (
	"github.com/lensvault/lensvault/pkg/util"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

const (
	// MetadataTypeString 字符串类型元数据
	MetadataTypeString = iota
	// MetadataTypeInteger 整数类型元数据
	MetadataTypeInteger
)

var (
	// ErrMetadataTypeMismatch 元数据值与声明的类型不符
	ErrMetadataTypeMismatch = errors.New("metadata value does not match declared type")
	// ErrMetadataKeyConflict 同一文件下元数据键重复
	ErrMetadataKeyConflict = errors.New("metadata key already exists for this file")
)

// MetadataTag 单个文件上键值类型的元数据标签，键在文件内唯一
type MetadataTag struct {
	gorm.Model
	FileID uint   `gorm:"index:file_id;unique_index:idx_file_key"`
	Key    string `gorm:"type:varchar(191);unique_index:idx_file_key"`
	Type   int
	SValue string `gorm:"size:1024"`
	IValue int
}

// NewMetadataTag 根据声明类型校验并构建元数据标签，类型与值不匹配时拒绝
func NewMetadataTag(fileID uint, key string, value interface{}, valueType int) (*MetadataTag, error) {
	tag := &MetadataTag{
		FileID: fileID,
		Key:    key,
		Type:   valueType,
	}

	switch valueType {
	case MetadataTypeString:
		s, ok := value.(string)
		if !ok {
			return nil, errors.Wrapf(ErrMetadataTypeMismatch, "key %q", key)
		}
		tag.SValue = s
	case MetadataTypeInteger:
		switch v := value.(type) {
		case int:
			tag.IValue = v
		case float64:
			// JSON 数字解码为 float64，仅接受整数值
			if v != float64(int(v)) {
				return nil, errors.Wrapf(ErrMetadataTypeMismatch, "key %q", key)
			}
			tag.IValue = int(v)
		default:
			return nil, errors.Wrapf(ErrMetadataTypeMismatch, "key %q", key)
		}
	default:
		return nil, errors.Wrapf(ErrMetadataTypeMismatch, "key %q", key)
	}

	return tag, nil
}

// Create 创建元数据标签记录
func (tag *MetadataTag) Create() (uint, error) {
	if err := DB.Create(tag).Error; err != nil {
		util.Log().Warning("无法插入元数据标签记录, %s", err)
		return 0, err
	}
	return tag.ID, nil
}

// GetMetadataTagsByFileID 查找文件的全部元数据标签
func GetMetadataTagsByFileID(fileID uint) ([]MetadataTag, error) {
	var tags []MetadataTag
	result := DB.Where("file_id = ?", fileID).Find(&tags)
	return tags, result.Error
}
