package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostline/infras/otel/mocks"
	"hostline/infras/postgres"
	"hostline/internal/domains/week/model"
	"hostline/internal/domains/week/repository"
	gModel "hostline/shared/model"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, repository.Week) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return mock, repository.New(conn, mocks.NewOtel())
}

func weekColumns() []string {
	return []string{"id", "start_date", "end_date", "is_current", "created_at", "modified_at"}
}

func TestWeekRepository_GetContaining(t *testing.T) {
	containingQuery := `SELECT \* FROM weeks WHERE start_date <= \$1 AND \$1 < end_date \+ interval '1 day' ORDER BY start_date DESC LIMIT 1`

	t.Run("returns the covering week", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		start := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
		day := start.AddDate(0, 0, 6).Add(15 * time.Hour)
		rows := sqlmock.NewRows(weekColumns()).
			AddRow("week-1", start, start.AddDate(0, 0, 6), true, start, start)

		mock.ExpectQuery(containingQuery).
			WithArgs(day).
			WillReturnRows(rows)

		week, err := repo.GetContaining(context.Background(), day)

		require.NoError(t, err)
		assert.Equal(t, "week-1", week.ID)
		assert.True(t, week.IsCurrent)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no covering week yields a zero week without error", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		mock.ExpectQuery(containingQuery).
			WillReturnRows(sqlmock.NewRows(weekColumns()))

		week, err := repo.GetContaining(context.Background(), time.Now())

		require.NoError(t, err)
		assert.Empty(t, week.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWeekRepository_CreateCurrent(t *testing.T) {
	now := time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC)
	week := model.Week{
		ID:        "week-2",
		StartDate: now,
		EndDate:   now.AddDate(0, 0, 6),
		IsCurrent: true,
		Metadata:  gModel.Metadata{CreatedAt: now, ModifiedAt: now},
	}
	tracking := model.BedTracking{
		WeekID:   week.ID,
		Metadata: gModel.Metadata{CreatedAt: now, ModifiedAt: now},
	}

	t.Run("retires the previous current flag before inserting", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		// Expectation order matters: the flag clear must land inside the
		// transaction before either insert, or the single-current unique
		// index rejects every rollover after the first week.
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE weeks SET is_current = false, modified_at = \$1 WHERE is_current`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO weeks`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO bed_tracking`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateCurrent(context.Background(), week, tracking)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a failed insert rolls the whole creation back", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE weeks SET is_current = false`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO weeks`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.CreateCurrent(context.Background(), week, tracking)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
