package filesystem

import (
	"context"
	"fmt"
	"sync"

	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/util"
)

// commitLocks 以 (用户, 项目) 为粒度串行化批次提交，
// 防止同一批次的并发重放交错执行
var commitLocks sync.Map

func commitLock(uid, pid uint) *sync.Mutex {
	actual, _ := commitLocks.LoadOrStore(fmt.Sprintf("%d-%d", uid, pid), &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// CommitResult 批次提交的结果
type CommitResult struct {
	Files  []model.File
	Purged int
}

// CommitBatch 将组装好的批次提交到目标项目。提交顺序为：先把新批
// 次的文件挂到项目下，再清理该用户在此项目中上一批次留下的旧文件，
// 最后链接标签与元数据。新记录先于旧记录落库，项目在任何时刻都不
// 会出现空窗。跨过第一步之后的失败意味着新旧批次可能同时可见，此
// 类失败用单独的错误码上报，绝不静默吞掉
func (fs *FileSystem) CommitBatch(ctx context.Context, pid uint, composed []*ComposedFile) (*CommitResult, error) {
	lock := commitLock(fs.User.ID, pid)
	lock.Lock()
	defer lock.Unlock()

	// 第一步：迁移物理副本并更新文件记录
	submitted := make([]uint, 0, len(composed))
	for _, item := range composed {
		originalPath, viewPath, thumbnailPath, err := fs.Relocate(ctx, item.File, pid)
		if err != nil {
			if len(submitted) == 0 {
				// 尚未提交任何记录，整批安全中止
				return nil, err
			}
			return nil, ErrPersistInconsistent.WithError(err)
		}

		if err := item.File.Submit(pid, originalPath, viewPath, thumbnailPath); err != nil {
			if len(submitted) == 0 {
				return nil, ErrInsertFileRecord.WithError(err)
			}
			return nil, ErrPersistInconsistent.WithError(err)
		}
		item.File.Palette = false
		item.File.ProjectID = &pid
		item.File.OriginalPath = originalPath
		item.File.ViewPath = viewPath
		item.File.ThumbnailPath = thumbnailPath
		submitted = append(submitted, item.File.ID)
	}

	// 第二步：清理上一批次留下的旧文件，刚提交的记录除外
	purged, err := fs.purgeStale(ctx, pid, submitted)
	if err != nil {
		return nil, ErrPersistInconsistent.WithError(err)
	}

	// 第三步：链接标签与元数据
	result := &CommitResult{Purged: purged}
	for _, item := range composed {
		if len(item.Tags) > 0 {
			if err := item.File.AppendTags(item.Tags); err != nil {
				return nil, ErrPersistInconsistent.WithError(err)
			}
			item.File.Tags = item.Tags
		}
		for i := range item.Metadata {
			if _, err := item.Metadata[i].Create(); err != nil {
				return nil, ErrPersistInconsistent.WithError(err)
			}
		}
		item.File.Metadata = item.Metadata
		result.Files = append(result.Files, *item.File)
	}

	return result, nil
}

// purgeStale 删除该用户在项目中不属于本批次的旧文件记录及物理副本
func (fs *FileSystem) purgeStale(ctx context.Context, pid uint, excludeIDs []uint) (int, error) {
	stale, err := model.GetStaleFiles(fs.User.ID, pid, excludeIDs)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	deleted, err := model.DeleteFiles(stale)

	// 记录删除成功后再清理物理副本，物理清理失败只告警
	for i := range deleted {
		fs.cleanupPaths(ctx, &deleted[i])
	}
	if err != nil {
		util.Log().Warning("无法清理旧批次文件记录, %s", err)
		return len(deleted), err
	}

	return len(deleted), nil
}
