package model

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewMetadataTag(t *testing.T) {
	asserts := assert.New(t)

	// 字符串类型
	{
		tag, err := NewMetadataTag(1, "shoot", "studio A", MetadataTypeString)
		asserts.NoError(err)
		asserts.Equal("studio A", tag.SValue)
		asserts.Equal(MetadataTypeString, tag.Type)
	}

	// 整数类型
	{
		tag, err := NewMetadataTag(1, "rating", 5, MetadataTypeInteger)
		asserts.NoError(err)
		asserts.Equal(5, tag.IValue)
	}

	// JSON 解码的整数值
	{
		tag, err := NewMetadataTag(1, "rating", float64(5), MetadataTypeInteger)
		asserts.NoError(err)
		asserts.Equal(5, tag.IValue)
	}

	// 声明整数但给定小数
	{
		tag, err := NewMetadataTag(1, "rating", 5.5, MetadataTypeInteger)
		asserts.Error(err)
		asserts.True(errors.Is(err, ErrMetadataTypeMismatch))
		asserts.Nil(tag)
	}

	// 声明字符串但给定数字
	{
		tag, err := NewMetadataTag(1, "shoot", 233, MetadataTypeString)
		asserts.Error(err)
		asserts.Nil(tag)
	}

	// 未知类型
	{
		tag, err := NewMetadataTag(1, "shoot", "studio A", 233)
		asserts.Error(err)
		asserts.Nil(tag)
	}
}

func TestMetadataTag_Create(t *testing.T) {
	asserts := assert.New(t)
	tag := MetadataTag{FileID: 1, Key: "rating", Type: MetadataTypeInteger, IValue: 5}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	id, err := tag.Create()
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.EqualValues(1, id)
}

func TestGetMetadataTagsByFileID(t *testing.T) {
	asserts := assert.New(t)
	rows := sqlmock.NewRows([]string{"id", "file_id", "key"}).
		AddRow(1, 1, "rating").
		AddRow(2, 1, "shoot")
	mock.ExpectQuery("SELECT(.+)").WithArgs(1).WillReturnRows(rows)
	tags, err := GetMetadataTagsByFileID(1)
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.Len(tags, 2)
}
