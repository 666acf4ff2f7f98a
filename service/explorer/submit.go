package explorer

import (
	"context"

	"github.com/lensvault/lensvault/pkg/filesystem"
	"github.com/lensvault/lensvault/pkg/hashid"
	"github.com/lensvault/lensvault/pkg/serializer"
	"github.com/lensvault/lensvault/pkg/util"

	model "github.com/lensvault/lensvault/models"
)

// MetadataItem 单条待写入的元数据
type MetadataItem struct {
	Key   string      `json:"key" binding:"required"`
	Type  int         `json:"type"`
	Value interface{} `json:"value"`
}

// BatchItem 批次中单个文件的提交内容
type BatchItem struct {
	ID          string         `json:"id" binding:"required"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	Metadata    []MetadataItem `json:"metadata"`
}

// BatchService 批量提交服务
type BatchService struct {
	UserID    string      `json:"user_id" binding:"required"`
	ProjectID string      `json:"project_id" binding:"required"`
	Files     []BatchItem `json:"files" binding:"required,min=1,max=100,dive"`
}

// Commit 将调色板中的一批文件连同描述、标签和元数据一次性提交到目标
// 项目。批次先整体校验组装，组装无误后才开始落库，任何一个文件
// 不合法则整批拒绝
func (service *BatchService) Commit() serializer.Response {
	user, errResp := resolveUser(service.UserID)
	if errResp != nil {
		return *errResp
	}

	pid, err := hashid.DecodeHashID(service.ProjectID, hashid.ProjectID)
	if err != nil {
		return serializer.Err(serializer.CodeProjectNotFound, "Unknown project", err)
	}
	project, err := model.GetProjectByID(pid)
	if err != nil {
		return serializer.Err(serializer.CodeProjectNotFound, "Unknown project", err)
	}

	entries := make([]filesystem.BatchEntry, 0, len(service.Files))
	for _, item := range service.Files {
		fileID, err := hashid.DecodeHashID(item.ID, hashid.FileID)
		if err != nil {
			return serializer.Err(serializer.CodeNotFound, "Unknown file "+item.ID, err)
		}

		metadata := make([]filesystem.MetadataEntry, 0, len(item.Metadata))
		for _, meta := range item.Metadata {
			metadata = append(metadata, filesystem.MetadataEntry{
				Key:   meta.Key,
				Type:  meta.Type,
				Value: meta.Value,
			})
		}

		entries = append(entries, filesystem.BatchEntry{
			FileID:      fileID,
			Description: item.Description,
			Tags:        item.Tags,
			Metadata:    metadata,
		})
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	ctx := context.Background()
	composed, err := fs.BuildBatch(ctx, entries)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	result, err := fs.CommitBatch(ctx, project.ID, composed)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	if err := project.Touch(); err != nil {
		util.Log().Warning("无法更新项目时间戳, %s", err)
	}

	return serializer.BuildBatchResponse(result.Files, result.Purged)
}
