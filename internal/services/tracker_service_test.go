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

func newTrackerFixture(t *testing.T) (*TrackerService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTrackerService(repositories.NewTrackerRepository(database.NewStore(db))), mock
}

func TestTrackerService_ImportRejectsBadRowBeforeAnyWrite(t *testing.T) {
	svc, mock := newTrackerFixture(t)

	err := svc.Import([]*models.TrackerEntry{
		{Week: "W1", CompanyName: "Tema Oil"},
		{Week: "W1", CompanyName: "   "},
		{Week: "W1", CompanyName: "Volta Steel"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
	// validation failed before the batch started, nothing was written
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackerService_ImportRunsAsOneTransaction(t *testing.T) {
	svc, mock := newTrackerFixture(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO sales_campaign_tracker")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := svc.Import([]*models.TrackerEntry{
		{Week: "W1", CompanyName: "Tema Oil", ProposalStatus: "Sent"},
		{Week: "W2", CompanyName: "Volta Steel", SiteVisit: "Yes"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackerService_ImportEmptyBatch(t *testing.T) {
	svc, _ := newTrackerFixture(t)
	assert.Error(t, svc.Import(nil))
}

func TestTrackerService_CreateRequiresCompany(t *testing.T) {
	svc, mock := newTrackerFixture(t)
	_, err := svc.Create(&models.TrackerEntry{Week: "W1"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
