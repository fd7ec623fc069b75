package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geronimocrm/internal/database"
	"geronimocrm/internal/repositories"
	"geronimocrm/internal/services"
)

func newLoginRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	auth := services.NewAuthService(repositories.NewUserRepository(database.NewStore(db)))
	h := NewAuthHandler(auth)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", h.Login)
	return r, mock
}

func postLogin(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	userCols := []string{"id", "username", "password_hash", "role", "created_at"}
	seeded := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid credentials return a token and session", func(t *testing.T) {
		r, mock := newLoginRouter(t)
		mock.ExpectQuery("FROM users").WithArgs("admin").WillReturnRows(
			sqlmock.NewRows(userCols).AddRow(1, "admin", services.HashPassword("password123"), "Admin", seeded),
		)

		w := postLogin(t, r, gin.H{"username": "admin", "password": "password123"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token   string `json:"token"`
			Session struct {
				UserID   int    `json:"user_id"`
				Username string `json:"username"`
				Role     string `json:"role"`
			} `json:"session"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, 1, resp.Session.UserID)
		assert.Equal(t, "Admin", resp.Session.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		r, mock := newLoginRouter(t)
		mock.ExpectQuery("FROM users").WithArgs("admin").WillReturnRows(
			sqlmock.NewRows(userCols).AddRow(1, "admin", services.HashPassword("password123"), "Admin", seeded),
		)

		w := postLogin(t, r, gin.H{"username": "admin", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"incorrect password"}`, w.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		r, mock := newLoginRouter(t)
		mock.ExpectQuery("FROM users").WithArgs("ghost").WillReturnRows(sqlmock.NewRows(userCols))

		w := postLogin(t, r, gin.H{"username": "ghost", "password": "x"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"user not found"}`, w.Body.String())
	})

	t.Run("missing fields fail binding", func(t *testing.T) {
		r, _ := newLoginRouter(t)
		w := postLogin(t, r, gin.H{"username": "admin"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("username is trimmed before lookup", func(t *testing.T) {
		r, mock := newLoginRouter(t)
		mock.ExpectQuery("FROM users").WithArgs("admin").WillReturnRows(
			sqlmock.NewRows(userCols).AddRow(1, "admin", services.HashPassword("password123"), "Admin", seeded),
		)

		w := postLogin(t, r, gin.H{"username": "  admin  ", "password": "password123"})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
