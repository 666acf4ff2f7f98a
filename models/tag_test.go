package model

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestTag_Create(t *testing.T) {
	asserts := assert.New(t)
	tag := Tag{Value: "sunset"}

	// 成功
	{
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
		id, err := tag.Create()
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.NoError(err)
		asserts.EqualValues(1, id)
	}

	// 失败
	{
		tag := Tag{Value: "sunset"}
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnError(errors.New("error"))
		mock.ExpectRollback()
		id, err := tag.Create()
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Error(err)
		asserts.EqualValues(0, id)
	}
}

func TestGetTagByValue(t *testing.T) {
	asserts := assert.New(t)
	mock.ExpectQuery("SELECT(.+)").
		WithArgs("sunset").
		WillReturnRows(sqlmock.NewRows([]string{"id", "value"}).AddRow(1, "sunset"))
	res, err := GetTagByValue("sunset")
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.Equal("sunset", res.Value)
}

func TestGetTagsByValues(t *testing.T) {
	asserts := assert.New(t)
	mock.ExpectQuery("SELECT(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "value"}).
			AddRow(1, "sunset").
			AddRow(2, "beach"))
	res, err := GetTagsByValues([]string{"sunset", "beach", "missing"})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.Len(res, 2)
}
