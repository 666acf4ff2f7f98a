package filesystem

import (
	"context"
	"strings"

	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/cache"

	"github.com/samber/lo"
)

const tagCachePrefix = "tag_"

// NormalizeTagValues 去除批次内标签值的首尾空白并去重，保持原有顺序
func NormalizeTagValues(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		if v := strings.TrimSpace(value); v != "" {
			trimmed = append(trimmed, v)
		}
	}
	return lo.Uniq(trimmed)
}

// ReconcileTags 将一个批次内出现的全部标签值整批对齐到全局标签词表：
// 已存在的标签直接复用，缺失的延迟创建。标签词表的唯一索引是最终
// 事实来源，并发提交导致的插入冲突按已存在处理
func (fs *FileSystem) ReconcileTags(ctx context.Context, values []string) (map[string]model.Tag, error) {
	values = NormalizeTagValues(values)
	reconciled := make(map[string]model.Tag, len(values))
	if len(values) == 0 {
		return reconciled, nil
	}

	// 缓存快速路径
	missing := make([]string, 0, len(values))
	for _, value := range values {
		if cached, ok := cache.Get(tagCachePrefix + value); ok {
			if tag, ok := cached.(model.Tag); ok {
				reconciled[value] = tag
				continue
			}
		}
		missing = append(missing, value)
	}
	if len(missing) == 0 {
		return reconciled, nil
	}

	// 整批一次查询已存在的标签
	existing, err := model.GetTagsByValues(missing)
	if err != nil {
		return nil, ErrTagReconcile.WithError(err)
	}
	for _, tag := range existing {
		reconciled[tag.Value] = tag
		_ = cache.Set(tagCachePrefix+tag.Value, tag)
	}

	// 延迟创建缺失的标签
	for _, value := range missing {
		if _, ok := reconciled[value]; ok {
			continue
		}

		tag := model.Tag{Value: value}
		if _, err := tag.Create(); err != nil {
			// 并发提交可能已抢先插入同名标签，重查后按已存在复用
			if refetched, ferr := model.GetTagByValue(value); ferr == nil {
				tag = refetched
			} else {
				return nil, ErrTagReconcile.WithError(err)
			}
		}

		reconciled[value] = tag
		_ = cache.Set(tagCachePrefix+value, tag)
	}

	return reconciled, nil
}
