package filesystem

import (
	"context"
	"fmt"

	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/hashid"
	"github.com/lensvault/lensvault/pkg/serializer"
)

// MetadataEntry 批次提交时随文件给出的一条类型化元数据
type MetadataEntry struct {
	Key   string
	Type  int
	Value interface{}
}

// BatchEntry 批次提交中的一个文件及其随附信息
type BatchEntry struct {
	FileID      uint
	Description string
	Tags        []string
	Metadata    []MetadataEntry
}

// ComposedFile 组装完成、可提交的文件记录及其关联
type ComposedFile struct {
	File     *model.File
	Tags     []model.Tag
	Metadata []model.MetadataTag
}

// BuildBatch 将批次提交的全部条目组装为可持久化的记录。任何一个
// 条目组装失败都会使整批失败，不产生部分提交。组装过程不修改任何
// 已有记录，标签词表的延迟创建除外
func (fs *FileSystem) BuildBatch(ctx context.Context, entries []BatchEntry) ([]*ComposedFile, error) {
	if err := fs.ValidateBatchCount(ctx, len(entries)); err != nil {
		return nil, err
	}

	// 整批加载调色板文件
	ids := make([]uint, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.FileID)
	}
	files, err := model.GetFilesByIDs(ids)
	if err != nil {
		return nil, serializer.NewError(serializer.CodeDBError, "Failed to list file records", err)
	}
	byID := make(map[uint]*model.File, len(files))
	for i := range files {
		byID[files[i].ID] = &files[i]
	}

	// 批次范围内整批对齐标签词表
	values := make([]string, 0)
	for _, entry := range entries {
		values = append(values, entry.Tags...)
	}
	reconciled, err := fs.ReconcileTags(ctx, values)
	if err != nil {
		return nil, err
	}

	composed := make([]*ComposedFile, 0, len(entries))
	for _, entry := range entries {
		// 缺失、归属他人或已提交的文件都视为不在调色板中，
		// 错误信息带上对外的文件ID以便客户端定位批次中的条目
		file, ok := byID[entry.FileID]
		if !ok || file.UserID != fs.User.ID || !file.Palette {
			return nil, serializer.NewError(serializer.CodeNotFound,
				fmt.Sprintf("File %s is not in the palette", hashid.HashID(entry.FileID, hashid.FileID)), nil)
		}

		item := &ComposedFile{File: file}
		if entry.Description != "" {
			file.Description = entry.Description
		}

		for _, value := range NormalizeTagValues(entry.Tags) {
			if tag, ok := reconciled[value]; ok {
				item.Tags = append(item.Tags, tag)
			}
		}

		for _, meta := range entry.Metadata {
			tag, err := model.NewMetadataTag(file.ID, meta.Key, meta.Value, meta.Type)
			if err != nil {
				return nil, ErrMetadataInvalid.WithError(err)
			}
			item.Metadata = append(item.Metadata, *tag)
		}

		composed = append(composed, item)
	}

	return composed, nil
}
