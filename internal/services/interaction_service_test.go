package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

func newInteractionFixture(t *testing.T) (*InteractionService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store := database.NewStore(db)
	return NewInteractionService(repositories.NewInteractionRepository(store), repositories.NewClientRepository(store)), mock
}

func TestInteractionService_Create(t *testing.T) {
	created := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	t.Run("valid interaction is stored", func(t *testing.T) {
		svc, mock := newInteractionFixture(t)
		mock.ExpectQuery("FROM clients").WithArgs(4).WillReturnRows(
			sqlmock.NewRows(clientCols).
				AddRow(4, "Tema Oil", "", "", "", "", 0.0, 0.0, "", created),
		)
		mock.ExpectQuery("INSERT INTO interactions").WillReturnRows(
			sqlmock.NewRows([]string{"id", "created_at"}).AddRow(21, created),
		)

		in := &models.Interaction{
			ClientID:        4,
			ActionType:      "Proposal",
			InteractionDate: "2026-02-10",
		}
		require.NoError(t, svc.Create(in))
		assert.Equal(t, 21, in.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("action type must be a known option", func(t *testing.T) {
		svc, mock := newInteractionFixture(t)
		err := svc.Create(&models.Interaction{ClientID: 4, ActionType: "Fax", InteractionDate: "2026-02-10"})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dates must be ISO", func(t *testing.T) {
		svc, mock := newInteractionFixture(t)

		err := svc.Create(&models.Interaction{ClientID: 4, ActionType: "Call", InteractionDate: "10/02/2026"})
		assert.Error(t, err)

		err = svc.Create(&models.Interaction{
			ClientID: 4, ActionType: "Call",
			InteractionDate: "2026-02-10", NextActionDate: "soon",
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown client is rejected", func(t *testing.T) {
		svc, mock := newInteractionFixture(t)
		mock.ExpectQuery("FROM clients").WithArgs(99).WillReturnRows(sqlmock.NewRows(clientCols))

		err := svc.Create(&models.Interaction{ClientID: 99, ActionType: "Call", InteractionDate: "2026-02-10"})
		assert.EqualError(t, err, "client not found")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
