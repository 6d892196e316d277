package store

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-app/ascent-sync/internal/logger"
	"github.com/ascent-app/ascent-sync/models"
)

var pendingColumns = []string{
	"id", "entity_type", "entity_id", "operation",
	"payload", "created_at", "revision", "retry_count", "failed",
}

func newOutboxRepo(t *testing.T, db *sql.DB) *outboxRepository {
	t.Helper()
	repo := NewOutboxRepository(newDBFromSQL(db), logger.Nop()).(*outboxRepository)
	repo.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return repo
}

func expectNoPendingRow(m sqlmock.Sqlmock, kind models.EntityKind, entityID string) {
	m.ExpectQuery("SELECT .* FROM pending_changes").
		WithArgs(kind, entityID).
		WillReturnRows(sqlmock.NewRows(pendingColumns))
}

func expectPendingRow(m sqlmock.Sqlmock, kind models.EntityKind, entityID string, op models.ChangeOperation) {
	rows := sqlmock.NewRows(pendingColumns).
		AddRow("01ARZ3NDEKTSV4RRFFQ69G5FAV", kind, entityID, op, `{}`, time.Now().UTC(), 0, 0, false)
	m.ExpectQuery("SELECT .* FROM pending_changes").
		WithArgs(kind, entityID).
		WillReturnRows(rows)
}

// ── AppendPendingChange ───────────────────────────────────────────────────────

func TestAppendPendingChange_InsertsFreshEntry(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	expectNoPendingRow(mock, models.KindHabit, "h1")
	mock.ExpectExec("INSERT INTO pending_changes").
		WithArgs(
			sqlmock.AnyArg(), // minted ULID
			models.KindHabit,
			"h1",
			models.OperationCreate,
			`{"name":"run"}`,
			repo.now(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendPendingChange(testContext(), models.PendingChange{
		EntityKind: models.KindHabit,
		EntityID:   "h1",
		Operation:  models.OperationCreate,
		Payload:    json.RawMessage(`{"name":"run"}`),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendPendingChange_CoalescesUpdateIntoUpdate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	expectPendingRow(mock, models.KindGoal, "g1", models.OperationUpdate)
	mock.ExpectExec("UPDATE pending_changes SET").
		WithArgs(models.OperationUpdate, `{"title":"latest"}`, models.KindGoal, "g1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendPendingChange(testContext(), models.PendingChange{
		EntityKind: models.KindGoal,
		EntityID:   "g1",
		Operation:  models.OperationUpdate,
		Payload:    json.RawMessage(`{"title":"latest"}`),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendPendingChange_UpdateOntoCreateStaysCreate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	expectPendingRow(mock, models.KindGoal, "g1", models.OperationCreate)
	// server has never seen the entity, so the coalesced row must stay a create
	mock.ExpectExec("UPDATE pending_changes SET").
		WithArgs(models.OperationCreate, `{"title":"v2"}`, models.KindGoal, "g1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendPendingChange(testContext(), models.PendingChange{
		EntityKind: models.KindGoal,
		EntityID:   "g1",
		Operation:  models.OperationUpdate,
		Payload:    json.RawMessage(`{"title":"v2"}`),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendPendingChange_UpdateAfterDeleteRejected(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	expectPendingRow(mock, models.KindHabit, "h1", models.OperationDelete)

	err := repo.AppendPendingChange(testContext(), models.PendingChange{
		EntityKind: models.KindHabit,
		EntityID:   "h1",
		Operation:  models.OperationUpdate,
	})
	assert.ErrorIs(t, err, ErrDeleteIsPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendPendingChange_DeleteOverridesUpdate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	expectPendingRow(mock, models.KindHabit, "h1", models.OperationUpdate)
	mock.ExpectExec("UPDATE pending_changes SET").
		WithArgs(models.OperationDelete, ``, models.KindHabit, "h1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendPendingChange(testContext(), models.PendingChange{
		EntityKind: models.KindHabit,
		EntityID:   "h1",
		Operation:  models.OperationDelete,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── ListPendingChanges ────────────────────────────────────────────────────────

func TestListPendingChanges_FIFOOrder(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	early := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	late := early.Add(time.Minute)

	rows := sqlmock.NewRows(pendingColumns).
		AddRow(ulid.Make().String(), "habit", "h1", "create", `{"name":"a"}`, early, 0, 0, false).
		AddRow(ulid.Make().String(), "goal", "g1", "update", `{"title":"b"}`, late, 1, 2, false)
	mock.ExpectQuery("SELECT .* FROM pending_changes").WillReturnRows(rows)

	got, err := repo.ListPendingChanges(testContext())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "h1", got[0].EntityID)
	assert.Equal(t, "g1", got[1].EntityID)
	assert.Equal(t, 2, got[1].RetryCount)
}

// ── RemovePendingChange / IncrementRetry / MarkFailed ─────────────────────────

func TestRemovePendingChange_MatchingRevision(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	mock.ExpectExec("DELETE FROM pending_changes").
		WithArgs("c1", int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RemovePendingChange(testContext(), "c1", 0))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemovePendingChange_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	mock.ExpectExec("DELETE FROM pending_changes").
		WithArgs("nope", int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT revision FROM pending_changes").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"revision"}))

	err := repo.RemovePendingChange(testContext(), "nope", 0)
	assert.ErrorIs(t, err, ErrPendingChangeNotFound)
}

// An acknowledgement for a payload that was replaced mid-upload must not
// consume the replacement: the edit recorded while the row was in flight
// stays queued for the next cycle.
func TestRemovePendingChange_KeepsEditCoalescedMidUpload(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	// the coalesced edit bumped the revision from 0 to 1
	mock.ExpectExec("DELETE FROM pending_changes").
		WithArgs("c1", int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT revision FROM pending_changes").
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"revision"}).AddRow(1))

	err := repo.RemovePendingChange(testContext(), "c1", 0)
	assert.ErrorIs(t, err, ErrChangeSuperseded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementRetry_OK(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	mock.ExpectExec("UPDATE pending_changes").
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementRetry(testContext(), "c1"))
}

func TestMarkFailed_RespectsRetryBudget(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	mock.ExpectExec("UPDATE pending_changes").
		WithArgs("c1", 5).
		WillReturnResult(sqlmock.NewResult(0, 0)) // still under budget, no-op

	require.NoError(t, repo.MarkFailed(testContext(), "c1", 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── CountUnsynced / ListFailedIDs ─────────────────────────────────────────────

func TestCountUnsynced(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUnsynced(testContext())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestListFailedIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newOutboxRepo(t, db)

	mock.ExpectQuery("SELECT id FROM pending_changes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c1").AddRow("c2"))

	ids, err := repo.ListFailedIDs(testContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, ids)
}
