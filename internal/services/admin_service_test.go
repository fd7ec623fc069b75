package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geronimocrm/internal/database"
)

func newAdminFixture(t *testing.T) (*AdminService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAdminService(database.NewStore(db)), mock
}

func TestAdminService_ResetGuards(t *testing.T) {
	t.Run("confirm flag is mandatory", func(t *testing.T) {
		svc, mock := newAdminFixture(t)
		token := svc.RequestReset()

		err := svc.Reset(token, false)
		assert.ErrorIs(t, err, ErrResetNotConfirmed)
		// the declined reset must not have touched the database
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		svc, mock := newAdminFixture(t)
		svc.RequestReset()

		err := svc.Reset("not-a-token", true)
		assert.ErrorIs(t, err, ErrResetTokenInvalid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		svc, _ := newAdminFixture(t)
		svc.ttl = -time.Minute
		token := svc.RequestReset()

		err := svc.Reset(token, true)
		assert.ErrorIs(t, err, ErrResetTokenInvalid)
	})
}

func TestAdminService_TokensAreSingleUse(t *testing.T) {
	svc, _ := newAdminFixture(t)
	token := svc.RequestReset()

	assert.True(t, svc.consumeToken(token))
	assert.False(t, svc.consumeToken(token))
}

func TestAdminService_TokensAreUnique(t *testing.T) {
	svc, _ := newAdminFixture(t)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		tok := svc.RequestReset()
		assert.False(t, seen[tok])
		seen[tok] = true
	}
}
