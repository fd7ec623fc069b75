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

func newDashboardFixture(t *testing.T) (*DashboardService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store := database.NewStore(db)
	return NewDashboardService(
		repositories.NewClientRepository(store),
		repositories.NewInteractionRepository(store),
		repositories.NewLeadRepository(store),
	), mock
}

func TestDashboardService_Funnel(t *testing.T) {
	t.Run("fixed stage order with zero fill", func(t *testing.T) {
		svc, mock := newDashboardFixture(t)
		mock.ExpectQuery("FROM leads GROUP BY stage").WillReturnRows(
			sqlmock.NewRows([]string{"stage", "count"}).
				AddRow("Lost", 1).
				AddRow("Lead", 5).
				AddRow("Opportunity", 2),
		)

		stages, err := svc.Funnel()
		require.NoError(t, err)
		assert.Equal(t, []models.FunnelStage{
			{Stage: "Lead", Count: 5},
			{Stage: "Opportunity", Count: 2},
			{Stage: "Client", Count: 0},
			{Stage: "Lost", Count: 1},
		}, stages)
	})

	t.Run("stray stage values are dropped", func(t *testing.T) {
		svc, mock := newDashboardFixture(t)
		mock.ExpectQuery("FROM leads GROUP BY stage").WillReturnRows(
			sqlmock.NewRows([]string{"stage", "count"}).
				AddRow("Lead", 2).
				AddRow("Bogus", 9),
		)

		stages, err := svc.Funnel()
		require.NoError(t, err)
		require.Len(t, stages, 4)
		for _, s := range stages {
			assert.NotEqual(t, "Bogus", s.Stage)
		}
		assert.Equal(t, models.FunnelStage{Stage: "Lead", Count: 2}, stages[0])
	})

	t.Run("empty table still yields all four stages", func(t *testing.T) {
		svc, mock := newDashboardFixture(t)
		mock.ExpectQuery("FROM leads GROUP BY stage").WillReturnRows(
			sqlmock.NewRows([]string{"stage", "count"}),
		)

		stages, err := svc.Funnel()
		require.NoError(t, err)
		assert.Equal(t, []models.FunnelStage{
			{Stage: "Lead"}, {Stage: "Opportunity"}, {Stage: "Client"}, {Stage: "Lost"},
		}, stages)
	})
}

func TestDashboardService_Summary(t *testing.T) {
	svc, mock := newDashboardFixture(t)

	mock.ExpectQuery("FROM clients").WillReturnRows(
		sqlmock.NewRows([]string{"companies", "sectors"}).AddRow(12, 5),
	)
	mock.ExpectQuery("FROM interactions").WithArgs("2026-01-01", "2026-03-31").WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(40),
	)

	sum, err := svc.Summary(models.FilterSet{Start: "2026-01-01", End: "2026-03-31"})
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardSummary{
		CompaniesReached:   12,
		InteractionsLogged: 40,
		SectorsCovered:     5,
	}, sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}
