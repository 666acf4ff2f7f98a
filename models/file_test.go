package model

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestFile_Create(t *testing.T) {
	asserts := assert.New(t)
	file := File{Name: "IMG_0001.jpg", Extension: "jpg", UserID: 1, Palette: true}

	// 成功
	{
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(5, 1))
		mock.ExpectCommit()
		id, err := file.Create()
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.NoError(err)
		asserts.EqualValues(5, id)
	}

	// 失败
	{
		file := File{Name: "IMG_0001.jpg", UserID: 1}
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnError(errors.New("error"))
		mock.ExpectRollback()
		id, err := file.Create()
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Error(err)
		asserts.EqualValues(0, id)
	}
}

func TestGetFileByID(t *testing.T) {
	asserts := assert.New(t)
	fileRows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "IMG_0001.jpg")
	mock.ExpectQuery("SELECT(.+)").WillReturnRows(fileRows)
	file, err := GetFileByID(1)
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.Equal("IMG_0001.jpg", file.Name)
}

func TestGetFileByIDAndUser(t *testing.T) {
	asserts := assert.New(t)
	fileRows := sqlmock.NewRows([]string{"id", "name", "user_id"}).
		AddRow(1, "IMG_0001.jpg", 1)
	mock.ExpectQuery("SELECT(.+)").WithArgs(1, 1).WillReturnRows(fileRows)
	file, err := GetFileByIDAndUser(1, 1)
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.Equal("IMG_0001.jpg", file.Name)
}

func TestGetPaletteFiles(t *testing.T) {
	asserts := assert.New(t)
	fileRows := sqlmock.NewRows([]string{"id", "name", "palette"}).
		AddRow(1, "IMG_0001.jpg", true).
		AddRow(2, "IMG_0002.jpg", true)
	mock.ExpectQuery("SELECT(.+)").WithArgs(1, true).WillReturnRows(fileRows)
	files, err := GetPaletteFiles(1)
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.Len(files, 2)
}

func TestGetStaleFiles(t *testing.T) {
	asserts := assert.New(t)

	// 存在上一批次的旧文件
	fileRows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "IMG_0001.jpg")
	mock.ExpectQuery("SELECT(.+)").WillReturnRows(fileRows)
	files, err := GetStaleFiles(1, 2, []uint{3, 4})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.Len(files, 1)

	// 没有旧文件
	mock.ExpectQuery("SELECT(.+)").WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	files, err = GetStaleFiles(1, 2, []uint{3, 4})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.Len(files, 0)
}

func TestFile_Submit(t *testing.T) {
	asserts := assert.New(t)
	file := File{}
	file.ID = 1
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	err := file.Submit(2, "o", "v", "t")
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
}

func TestFile_Delete(t *testing.T) {
	asserts := assert.New(t)
	file := File{}
	file.ID = 1

	// 成功
	{
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
		mock.ExpectExec("DELETE(.+)").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
		err := file.Delete()
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.NoError(err)
	}

	// 元数据删除失败
	{
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE(.+)").WillReturnError(errors.New("error"))
		mock.ExpectRollback()
		err := file.Delete()
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Error(err)
	}
}
