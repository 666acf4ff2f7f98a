package filesystem

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lensvault/lensvault/pkg/cache"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTagValues(t *testing.T) {
	asserts := assert.New(t)

	asserts.Equal([]string{"sunset", "beach"},
		NormalizeTagValues([]string{" sunset ", "beach", "sunset", "", "  "}))
	asserts.Empty(NormalizeTagValues(nil))
}

func TestFileSystem_ReconcileTags(t *testing.T) {
	asserts := assert.New(t)
	ctx := context.Background()
	fs := FileSystem{}

	// 空批次
	{
		cache.Init()
		res, err := fs.ReconcileTags(ctx, nil)
		asserts.NoError(err)
		asserts.Empty(res)
	}

	// 已存在与新建各一个
	{
		cache.Init()
		mock.ExpectQuery("SELECT(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "value"}).AddRow(1, "sunset"))
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		res, err := fs.ReconcileTags(ctx, []string{"sunset", "beach"})
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.NoError(err)
		asserts.Len(res, 2)
		asserts.EqualValues(1, res["sunset"].ID)
		asserts.EqualValues(2, res["beach"].ID)
	}

	// 缓存快速路径，不再查询数据库
	{
		res, err := fs.ReconcileTags(ctx, []string{"sunset", "beach"})
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.NoError(err)
		asserts.Len(res, 2)
	}

	// 插入冲突按已存在处理
	{
		cache.Init()
		mock.ExpectQuery("SELECT(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "value"}))
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnError(errors.New("Duplicate entry"))
		mock.ExpectRollback()
		mock.ExpectQuery("SELECT(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "value"}).AddRow(9, "dawn"))

		res, err := fs.ReconcileTags(ctx, []string{"dawn"})
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.NoError(err)
		asserts.EqualValues(9, res["dawn"].ID)
	}

	// 查询失败
	{
		cache.Init()
		mock.ExpectQuery("SELECT(.+)").WillReturnError(errors.New("error"))
		res, err := fs.ReconcileTags(ctx, []string{"dusk"})
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Error(err)
		asserts.Nil(res)
	}
}
