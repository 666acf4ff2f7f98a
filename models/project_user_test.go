package model

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestProjectUser_Create(t *testing.T) {
	asserts := assert.New(t)
	relation := ProjectUser{ProjectID: 1, UserID: 2}
	mock.ExpectBegin()
	mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	id, err := relation.Create()
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.EqualValues(1, id)
}

func TestGetProjectUser(t *testing.T) {
	asserts := assert.New(t)
	rows := sqlmock.NewRows([]string{"id", "project_id", "user_id", "favourite"}).
		AddRow(1, 1, 2, true)
	mock.ExpectQuery("SELECT(.+)").WithArgs(1, 2).WillReturnRows(rows)
	relation, err := GetProjectUser(1, 2)
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.True(relation.Favourite)
}

func TestGetProjectsByUserID(t *testing.T) {
	asserts := assert.New(t)
	rows := sqlmock.NewRows([]string{"id", "project_id", "user_id"}).
		AddRow(1, 1, 2).
		AddRow(2, 3, 2)
	mock.ExpectQuery("SELECT(.+)").WithArgs(2).WillReturnRows(rows)
	relations, err := GetProjectsByUserID(2)
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.Len(relations, 2)
}

func TestProjectUser_SetFlags(t *testing.T) {
	asserts := assert.New(t)
	relation := ProjectUser{ProjectID: 1, UserID: 2}
	relation.ID = 1
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	err := relation.SetFlags(true, false)
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
}
