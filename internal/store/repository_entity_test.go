package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-app/ascent-sync/internal/logger"
	"github.com/ascent-app/ascent-sync/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL creates a DB from an existing *sql.DB (for tests).
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var entityColumns = []string{
	"type", "id", "owner_id", "payload",
	"created_at", "updated_at", "deleted", "synced",
}

func goalPayload(t *testing.T, title string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(models.GoalPayload{Title: title})
	require.NoError(t, err)
	return raw
}

func newEntityRepo(t *testing.T, db *sql.DB) *entityRepository {
	t.Helper()
	repo := NewEntityRepository(newDBFromSQL(db), logger.Nop()).(*entityRepository)
	repo.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return repo
}

// ── UpsertEntity ──────────────────────────────────────────────────────────────

func TestUpsertEntity_StampsUpdatedAtAndClearsSynced(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newEntityRepo(t, db)

	entity := models.Entity{
		ID:        "g1",
		OwnerID:   "user-1",
		Kind:      models.KindGoal,
		Payload:   goalPayload(t, "read more"),
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO entities").
		WithArgs(
			models.KindGoal,
			"g1",
			"user-1",
			string(entity.Payload),
			entity.CreatedAt,
			repo.now(),
			false,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertEntity(testContext(), entity)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertEntity_StorageErrorPropagated(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newEntityRepo(t, db)

	mock.ExpectExec("INSERT INTO entities").
		WillReturnError(assert.AnError)

	err := repo.UpsertEntity(testContext(), models.Entity{ID: "g1", Kind: models.KindGoal})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageFailure)
}

// ── ApplyServerEntity ─────────────────────────────────────────────────────────

func TestApplyServerEntity_KeepsServerTimestamp(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newEntityRepo(t, db)

	serverTime := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	entity := models.Entity{
		ID:        "h1",
		OwnerID:   "user-1",
		Kind:      models.KindHabit,
		Payload:   json.RawMessage(`{"name":"meditate"}`),
		UpdatedAt: serverTime,
	}

	mock.ExpectExec("INSERT INTO entities").
		WithArgs(
			models.KindHabit,
			"h1",
			"user-1",
			`{"name":"meditate"}`,
			serverTime, // created_at falls back to server updated_at
			serverTime,
			false,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ApplyServerEntity(testContext(), entity)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── GetEntity ─────────────────────────────────────────────────────────────────

func TestGetEntity(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)

	tests := []struct {
		name      string
		setupMock func(m sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(entityColumns).
					AddRow("goal", "g1", "user-1", `{"title":"A"}`, now, now, false, true)
				m.ExpectQuery("SELECT").WithArgs(models.KindGoal, "g1").WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT").WithArgs(models.KindGoal, "g1").
					WillReturnRows(sqlmock.NewRows(entityColumns))
			},
			wantErr: ErrEntityNotFound,
		},
		{
			name: "query error",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT").WithArgs(models.KindGoal, "g1").
					WillReturnError(assert.AnError)
			},
			wantErr: ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newEntityRepo(t, db)
			tt.setupMock(mock)

			got, err := repo.GetEntity(testContext(), models.KindGoal, "g1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "g1", got.ID)
			assert.Equal(t, models.KindGoal, got.Kind)
			assert.True(t, got.Synced)
			assert.JSONEq(t, `{"title":"A"}`, string(got.Payload))
		})
	}
}

// ── QueryEntities ─────────────────────────────────────────────────────────────

func TestQueryEntities_ExcludesDeletedByDefault(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newEntityRepo(t, db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(entityColumns).
		AddRow("habit", "h2", "user-1", `{"name":"b"}`, now, now, false, true).
		AddRow("habit", "h1", "user-1", `{"name":"a"}`, now.Add(-time.Hour), now, false, false)

	// deleted filter must be part of the generated query
	mock.ExpectQuery(`SELECT .* FROM entities WHERE .*deleted.*ORDER BY created_at DESC`).
		WithArgs("user-1", models.KindHabit, false).
		WillReturnRows(rows)

	got, err := repo.QueryEntities(testContext(), EntityQuery{OwnerID: "user-1", Kind: models.KindHabit})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "h2", got[0].ID)
	assert.Equal(t, "h1", got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryEntities_IncludeDeleted(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newEntityRepo(t, db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(entityColumns).
		AddRow("goal", "g1", "user-1", `{"title":"x"}`, now, now, true, true)

	mock.ExpectQuery(`SELECT .* FROM entities`).
		WithArgs("user-1", models.KindGoal).
		WillReturnRows(rows)

	got, err := repo.QueryEntities(testContext(), EntityQuery{
		OwnerID:        "user-1",
		Kind:           models.KindGoal,
		IncludeDeleted: true,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Deleted)
}

// ── SoftDeleteEntity / MarkSynced ─────────────────────────────────────────────

func TestSoftDeleteEntity_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newEntityRepo(t, db)

	mock.ExpectExec("UPDATE entities SET").
		WithArgs(repo.now(), models.KindGoal, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDeleteEntity(testContext(), models.KindGoal, "missing")
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestMarkSynced_OK(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newEntityRepo(t, db)

	mock.ExpectExec("UPDATE entities SET").
		WithArgs(models.KindHabit, "h1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSynced(testContext(), models.KindHabit, "h1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
