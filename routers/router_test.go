package routers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/conf"
	"github.com/lensvault/lensvault/pkg/hashid"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
)

var mock sqlmock.Sqlmock

// TestMain 初始化数据库Mock
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	var db *sql.DB
	var err error
	db, mock, err = sqlmock.New()
	if err != nil {
		panic("An error was not expected when opening a stub database connection")
	}
	model.DB, _ = gorm.Open("mysql", db)
	defer db.Close()
	m.Run()
}

func TestPing(t *testing.T) {
	asserts := assert.New(t)
	router := InitRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v3/site/ping", nil)
	router.ServeHTTP(w, req)

	asserts.Equal(200, w.Code)
	asserts.Contains(w.Body.String(), conf.BackendVersion)
}

func TestFilePalette(t *testing.T) {
	asserts := assert.New(t)
	router := InitRouter()
	uid := hashid.HashID(1, hashid.UserID)

	// 正常
	{
		mock.ExpectQuery("SELECT(.+)users(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "alice@lensvault.org"))
		mock.ExpectQuery("SELECT(.+)files(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "palette"}).
				AddRow(3, "shot.jpg", 1, true))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v3/file/palette?user_id="+uid, nil)
		router.ServeHTTP(w, req)

		asserts.Equal(200, w.Code)
		asserts.Contains(w.Body.String(), "shot.jpg")
		asserts.NoError(mock.ExpectationsWereMet())
	}

	// 缺少用户参数
	{
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v3/file/palette", nil)
		router.ServeHTTP(w, req)

		asserts.Equal(200, w.Code)
		asserts.Contains(w.Body.String(), "40099")
	}

	// 用户不存在
	{
		mock.ExpectQuery("SELECT(.+)users(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v3/file/palette?user_id="+uid, nil)
		router.ServeHTTP(w, req)

		asserts.Equal(200, w.Code)
		asserts.Contains(w.Body.String(), "40004")
		asserts.NoError(mock.ExpectationsWereMet())
	}
}

func TestProjectGet(t *testing.T) {
	asserts := assert.New(t)
	router := InitRouter()
	uid := hashid.HashID(1, hashid.UserID)
	pid := hashid.HashID(2, hashid.ProjectID)

	// 正常
	{
		mock.ExpectQuery("SELECT(.+)users(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "alice@lensvault.org"))
		mock.ExpectQuery("SELECT(.+)projects(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Iceland"))
		mock.ExpectQuery("SELECT(.+)project_users(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "user_id", "favourite"}).
				AddRow(9, 2, 1, true))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v3/project/"+pid+"?user_id="+uid, nil)
		router.ServeHTTP(w, req)

		asserts.Equal(200, w.Code)
		asserts.Contains(w.Body.String(), "Iceland")
		asserts.NoError(mock.ExpectationsWereMet())
	}

	// 项目HashID无法解码
	{
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v3/project/not-a-hashid?user_id="+uid, nil)
		router.ServeHTTP(w, req)

		asserts.Equal(200, w.Code)
		asserts.Contains(w.Body.String(), "40099")
	}
}

func TestProjectCreate(t *testing.T) {
	asserts := assert.New(t)
	router := InitRouter()
	uid := hashid.HashID(1, hashid.UserID)

	// 缺少项目名
	{
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v3/project",
			strings.NewReader(`{"user_id":"`+uid+`"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		asserts.Equal(200, w.Code)
		asserts.Contains(w.Body.String(), "40099")
	}

	// 正常
	{
		mock.ExpectQuery("SELECT(.+)users(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "alice@lensvault.org"))
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)projects(.+)").
			WillReturnResult(sqlmock.NewResult(5, 1))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)project_users(.+)").
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE(.+)projects(.+)").
			WillReturnResult(sqlmock.NewResult(5, 1))
		mock.ExpectCommit()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v3/project",
			strings.NewReader(`{"user_id":"`+uid+`","name":"Iceland"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		asserts.Equal(200, w.Code)
		asserts.Contains(w.Body.String(), "Iceland")
		asserts.NoError(mock.ExpectationsWereMet())
	}
}
