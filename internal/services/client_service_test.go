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

var clientCols = []string{
	"id", "company_name", "sector", "region", "location",
	"size", "revenue", "potential_value", "notes", "created_at",
}

func newClientFixture(t *testing.T) (*ClientService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store := database.NewStore(db)
	return NewClientService(repositories.NewClientRepository(store), repositories.NewContactRepository(store)), mock
}

func TestClientService_CreateRequiresName(t *testing.T) {
	svc, mock := newClientFixture(t)

	for _, name := range []string{"", "   ", "\t"} {
		_, err := svc.Create(&models.Client{CompanyName: name})
		assert.Error(t, err)
	}
	// no statement may have reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientService_CreateChecksOptionSets(t *testing.T) {
	t.Run("unknown sector is rejected", func(t *testing.T) {
		svc, mock := newClientFixture(t)

		_, err := svc.Create(&models.Client{CompanyName: "Tarkwa Gold", Sector: "Alchemy"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown sector")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown region is rejected", func(t *testing.T) {
		svc, mock := newClientFixture(t)

		_, err := svc.Create(&models.Client{CompanyName: "Tarkwa Gold", Region: "Atlantis"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown region")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("listed sector and region pass through", func(t *testing.T) {
		svc, mock := newClientFixture(t)
		mock.ExpectQuery("INSERT INTO clients").
			WithArgs("Tarkwa Gold", "Mining & Mineral Processing", "Western", "", "", 0.0, 0.0, "").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(9, time.Now()))

		id, err := svc.Create(&models.Client{
			CompanyName: "Tarkwa Gold",
			Sector:      "Mining & Mineral Processing",
			Region:      "Western",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("blank sector and region are allowed", func(t *testing.T) {
		svc, mock := newClientFixture(t)
		mock.ExpectQuery("INSERT INTO clients").
			WithArgs("Tarkwa Gold", "", "", "", "", 0.0, 0.0, "").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(10, time.Now()))

		id, err := svc.Create(&models.Client{CompanyName: "Tarkwa Gold"})
		require.NoError(t, err)
		assert.Equal(t, int64(10), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClientService_Search(t *testing.T) {
	ts := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows(clientCols).
			AddRow(3, "Takoradi Shipyard", "Shipyards & Marine", "Western", "Takoradi", "", 0.0, 0.0, "", ts).
			AddRow(2, "Accra Foods", "Food & Beverage Manufacturing", "Greater Accra", "", "", 0.0, 0.0, "", ts).
			AddRow(1, "Kumasi Textiles", "Textiles & Light Manufacturing", "Ashanti", "Kumasi", "", 0.0, 0.0, "", ts)
	}

	t.Run("empty query returns everything", func(t *testing.T) {
		svc, mock := newClientFixture(t)
		mock.ExpectQuery("FROM clients").WillReturnRows(rows())

		got, err := svc.Search("  ")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("matches region case-insensitively", func(t *testing.T) {
		svc, mock := newClientFixture(t)
		mock.ExpectQuery("FROM clients").WillReturnRows(rows())

		got, err := svc.Search("wEsTeRn")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Takoradi Shipyard", got[0].CompanyName)
	})

	t.Run("substring can hit several fields", func(t *testing.T) {
		svc, mock := newClientFixture(t)
		mock.ExpectQuery("FROM clients").WillReturnRows(rows())

		// "accra" matches a company name and a region
		got, err := svc.Search("accra")
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Accra Foods", got[0].CompanyName)
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		svc, mock := newClientFixture(t)
		mock.ExpectQuery("FROM clients").WillReturnRows(rows())

		got, err := svc.Search("zzz")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestClientService_AddContactChecksClient(t *testing.T) {
	svc, mock := newClientFixture(t)

	mock.ExpectQuery("FROM clients").WithArgs(42).WillReturnRows(sqlmock.NewRows(clientCols))

	_, err := svc.AddContact(&models.Contact{ClientID: 42, Name: "Ama Mensah"})
	assert.EqualError(t, err, "client not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
