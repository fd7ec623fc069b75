package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
)

var clientCols = []string{
	"id", "company_name", "sector", "region", "location",
	"size", "revenue", "potential_value", "notes", "created_at",
}

func TestClientRepository_ListOrderingAndCache(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := database.NewStore(db)
	repo := NewClientRepository(store)

	older := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("ORDER BY created_at DESC").WillReturnRows(
		sqlmock.NewRows(clientCols).
			AddRow(2, "Volta Steel", "Steel & Metal Processing", "Volta", "Ho", "Large", 0.0, 50000.0, "", newer).
			AddRow(1, "Tema Oil", "Oil & Gas / Petroleum Refining & Storage", "Greater Accra", "Tema", "Large", 0.0, 80000.0, "", older),
	)

	clients, err := repo.List()
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Volta Steel", clients[0].CompanyName)
	assert.Equal(t, "Tema Oil", clients[1].CompanyName)

	// second read is served from the cache, no further DB traffic
	again, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, clients, again)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_WriteInvalidatesCache(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := database.NewStore(db)
	repo := NewClientRepository(store)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("ORDER BY created_at DESC").WillReturnRows(sqlmock.NewRows(clientCols))

	empty, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, 1, store.Cache.Len())

	mock.ExpectQuery("INSERT INTO clients").
		WithArgs("Ada Cement", "Cement & Building Materials", "Greater Accra", "Ada", "", 0.0, 12000.0, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, created))

	id, err := repo.Create(&models.Client{
		CompanyName:    "Ada Cement",
		Sector:         "Cement & Building Materials",
		Region:         "Greater Accra",
		Location:       "Ada",
		PotentialValue: 12000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, 0, store.Cache.Len())

	// the next read goes back to the database and sees the new row
	mock.ExpectQuery("ORDER BY created_at DESC").WillReturnRows(
		sqlmock.NewRows(clientCols).
			AddRow(7, "Ada Cement", "Cement & Building Materials", "Greater Accra", "Ada", "", 0.0, 12000.0, "", created),
	)
	clients, err := repo.List()
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ada Cement", clients[0].CompanyName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_GetByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewClientRepository(database.NewStore(db))

	mock.ExpectQuery("FROM clients").WithArgs(99).
		WillReturnRows(sqlmock.NewRows(clientCols))

	c, err := repo.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}
