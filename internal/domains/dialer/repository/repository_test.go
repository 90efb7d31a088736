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
	"hostline/internal/domains/dialer/model"
	"hostline/internal/domains/dialer/repository"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, repository.Dialer) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return mock, repository.New(conn, mocks.NewOtel())
}

func queueColumns() []string {
	return []string{
		"id", "week_id", "apartment_id", "host_name", "phone_number",
		"priority", "status", "call_sid", "created_at", "modified_at",
	}
}

func TestDialerRepository_NextPending(t *testing.T) {
	t.Run("returns the highest priority pending entry", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		now := time.Now()
		rows := sqlmock.NewRows(queueColumns()).
			AddRow("queue-1", "week-1", "apt-1", "First Host", "+15550000001",
				1, model.StatusPending, nil, now, now)

		mock.ExpectQuery(`SELECT \* FROM call_queue WHERE week_id = \$1 AND status = \$2 ORDER BY priority ASC LIMIT 1`).
			WithArgs("week-1", model.StatusPending).
			WillReturnRows(rows)

		entry, err := repo.NextPending(context.Background(), "week-1")

		require.NoError(t, err)
		assert.Equal(t, "queue-1", entry.ID)
		assert.Equal(t, 1, entry.Priority)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty queue is not an error", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM call_queue WHERE week_id = \$1 AND status = \$2`).
			WithArgs("week-1", model.StatusPending).
			WillReturnRows(sqlmock.NewRows(queueColumns()))

		entry, err := repo.NextPending(context.Background(), "week-1")

		require.NoError(t, err)
		assert.Empty(t, entry.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDialerRepository_InFlight(t *testing.T) {
	mock, repo := setupMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows(queueColumns()).
		AddRow("queue-2", "week-1", "apt-2", "Second Host", "+15550000002",
			2, model.StatusCalling, "CA002", now, now)

	mock.ExpectQuery(`SELECT \* FROM call_queue WHERE week_id = \$1 AND status IN \(\$2, \$3\) LIMIT 1`).
		WithArgs("week-1", model.StatusCalling, model.StatusInProgress).
		WillReturnRows(rows)

	entry, err := repo.InFlight(context.Background(), "week-1")

	require.NoError(t, err)
	assert.Equal(t, "queue-2", entry.ID)
	assert.True(t, entry.InFlight())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDialerRepository_SetStatus(t *testing.T) {
	t.Run("stores the call sid alongside the status", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		mock.ExpectExec(`UPDATE call_queue SET status = \$1, call_sid = COALESCE\(NULLIF\(\$2, ''\), call_sid\), modified_at = \$3 WHERE id = \$4`).
			WithArgs(model.StatusCalling, "CA001", sqlmock.AnyArg(), "queue-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetStatus(context.Background(), "queue-1", model.StatusCalling, "CA001")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty sid keeps the stored one", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		mock.ExpectExec(`UPDATE call_queue SET status = \$1`).
			WithArgs(model.StatusCompleted, "", sqlmock.AnyArg(), "queue-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetStatus(context.Background(), "queue-1", model.StatusCompleted, "")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDialerRepository_ClearWeek(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(`DELETE FROM call_queue WHERE week_id = \$1`).
		WithArgs("week-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.ClearWeek(context.Background(), "week-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDialerRepository_ListWeek(t *testing.T) {
	mock, repo := setupMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows(queueColumns()).
		AddRow("queue-1", "week-1", "apt-1", "First Host", "+15550000001",
			1, model.StatusCompleted, "CA001", now, now).
		AddRow("queue-2", "week-1", "apt-2", "Second Host", "+15550000002",
			2, model.StatusPending, nil, now, now)

	mock.ExpectQuery(`SELECT \* FROM call_queue WHERE week_id = \$1 ORDER BY priority ASC`).
		WithArgs("week-1").
		WillReturnRows(rows)

	entries, err := repo.ListWeek(context.Background(), "week-1")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Terminal())
	assert.Equal(t, model.StatusPending, entries[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
