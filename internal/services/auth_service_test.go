package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geronimocrm/internal/database"
	"geronimocrm/internal/middleware"
	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

var userCols = []string{"id", "username", "password_hash", "role", "created_at"}

func TestHashPassword(t *testing.T) {
	// fixed salt, so hashes are stable across processes
	assert.Equal(t, "93863b69d47a36c0755b7bbc739fe6347ec743ffd2c4f7693e93abcdffb29d43", HashPassword("password123"))
	assert.Equal(t, "e6dd5e9535f86bf31ce69ed82e6a730a15a34d1f6841e661196d76babddbdab1", HashPassword("hunter2"))
	assert.NotEqual(t, HashPassword("a"), HashPassword("b"))
}

func newAuthFixture(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAuthService(repositories.NewUserRepository(database.NewStore(db))), mock
}

func TestAuthService_Authenticate(t *testing.T) {
	seeded := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("default admin signs in", func(t *testing.T) {
		auth, mock := newAuthFixture(t)
		mock.ExpectQuery("FROM users").WithArgs("admin").WillReturnRows(
			sqlmock.NewRows(userCols).AddRow(1, "admin", HashPassword("password123"), "Admin", seeded),
		)

		sess, err := auth.Authenticate("admin", "password123")
		require.NoError(t, err)
		assert.Equal(t, 1, sess.UserID)
		assert.Equal(t, "admin", sess.Username)
		assert.Equal(t, "Admin", sess.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong password", func(t *testing.T) {
		auth, mock := newAuthFixture(t)
		mock.ExpectQuery("FROM users").WithArgs("admin").WillReturnRows(
			sqlmock.NewRows(userCols).AddRow(1, "admin", HashPassword("password123"), "Admin", seeded),
		)

		sess, err := auth.Authenticate("admin", "letmein")
		assert.Nil(t, sess)
		assert.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("unknown username", func(t *testing.T) {
		auth, mock := newAuthFixture(t)
		mock.ExpectQuery("FROM users").WithArgs("ghost").WillReturnRows(sqlmock.NewRows(userCols))

		sess, err := auth.Authenticate("ghost", "whatever")
		assert.Nil(t, sess)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_IssueToken(t *testing.T) {
	auth, _ := newAuthFixture(t)
	sess := &models.Session{UserID: 3, Username: "kwame", Role: "Sales Rep"}

	signed, err := auth.IssueToken(sess)
	require.NoError(t, err)

	var claims middleware.Claims
	parsed, err := jwt.ParseWithClaims(signed, &claims, func(tok *jwt.Token) (any, error) {
		return middleware.JWTKey, nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "kwame", claims.Username)
	assert.Equal(t, "Sales Rep", claims.Role)
}
