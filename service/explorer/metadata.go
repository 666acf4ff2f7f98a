package explorer

import (
	"github.com/pkg/errors"

	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// AddMetadataService 元数据追加服务
type AddMetadataService struct {
	UserID string      `json:"user_id" binding:"required"`
	Key    string      `json:"key" binding:"required"`
	Type   int         `json:"type"`
	Value  interface{} `json:"value"`
}

// Add 向已提交的文件追加一条类型化元数据。键在文件内唯一，类型与值
// 不匹配或键冲突时拒绝写入
func (service *AddMetadataService) Add(c *gin.Context) serializer.Response {
	user, errResp := resolveUser(service.UserID)
	if errResp != nil {
		return *errResp
	}

	fileID := c.MustGet("object_id").(uint)
	file, err := model.GetFileByIDAndUser(fileID, user.ID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "File not found", err)
	}

	existing, err := model.GetMetadataTagsByFileID(file.ID)
	if err != nil {
		return serializer.DBErr("Failed to list metadata records", err)
	}
	for _, item := range existing {
		if item.Key == service.Key {
			return serializer.Err(serializer.CodeMetadataTypeMismatch, "Metadata key already exists",
				errors.Wrapf(model.ErrMetadataKeyConflict, "key %q", service.Key))
		}
	}

	tag, err := model.NewMetadataTag(file.ID, service.Key, service.Value, service.Type)
	if err != nil {
		return serializer.Err(serializer.CodeMetadataTypeMismatch, err.Error(), err)
	}

	if _, err := tag.Create(); err != nil {
		return serializer.DBErr("Failed to insert metadata record", err)
	}

	return serializer.Response{}
}
