package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geronimocrm/internal/database"
	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

func newCampaignFixture(t *testing.T) (*CampaignService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCampaignService(repositories.NewCampaignRepository(database.NewStore(db))), mock
}

func TestValidateDateOrder(t *testing.T) {
	assert.NoError(t, validateDateOrder("", ""))
	assert.NoError(t, validateDateOrder("2026-01-01", ""))
	assert.NoError(t, validateDateOrder("", "2026-01-01"))
	assert.NoError(t, validateDateOrder("2026-01-01", "2026-01-01"))
	assert.NoError(t, validateDateOrder("2026-01-01", "2026-06-30"))
	assert.Error(t, validateDateOrder("2026-06-30", "2026-01-01"))
}

func TestCampaignService_CreateValidation(t *testing.T) {
	t.Run("name is required", func(t *testing.T) {
		svc, mock := newCampaignFixture(t)
		_, err := svc.Create(&models.Campaign{Name: "  "})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("type must be a known option when set", func(t *testing.T) {
		svc, mock := newCampaignFixture(t)
		_, err := svc.Create(&models.Campaign{Name: "Q3 Push", CType: "Carrier Pigeon"})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		svc, mock := newCampaignFixture(t)
		_, err := svc.Create(&models.Campaign{
			Name:      "Q3 Push",
			StartDate: "2026-09-30",
			EndDate:   "2026-07-01",
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestValidISODate(t *testing.T) {
	assert.NoError(t, validISODate("2026-02-28"))
	assert.Error(t, validISODate("2026-02-30"))
	assert.Error(t, validISODate("28/02/2026"))
	assert.Error(t, validISODate(""))
}
