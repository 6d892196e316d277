package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-app/ascent-sync/internal/logger"
	"github.com/ascent-app/ascent-sync/models"
)

func newTestResolver(policies map[models.EntityKind]models.ResolutionPolicy) ConflictResolver {
	return NewConflictResolver(policies, logger.Nop())
}

func habitConflict(local, server string, localTS, serverTS time.Time) models.Conflict {
	return models.Conflict{
		EntityKind:      models.KindHabit,
		EntityID:        "h1",
		LocalData:       json.RawMessage(local),
		ServerData:      json.RawMessage(server),
		LocalTimestamp:  localTS,
		ServerTimestamp: serverTS,
	}
}

func TestResolver_LastWriteWins(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	r := newTestResolver(map[models.EntityKind]models.ResolutionPolicy{
		models.KindHabit: models.PolicyLastWriteWins,
	})

	tests := []struct {
		name     string
		localTS  time.Time
		serverTS time.Time
		want     string
	}{
		{name: "local newer", localTS: base.Add(time.Minute), serverTS: base, want: `{"name":"local"}`},
		{name: "server newer", localTS: base, serverTS: base.Add(time.Minute), want: `{"name":"server"}`},
		{name: "tie goes to server", localTS: base, serverTS: base, want: `{"name":"server"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(context.Background(), habitConflict(`{"name":"local"}`, `{"name":"server"}`, tt.localTS, tt.serverTS))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestResolver_UnknownKindDefaultsToLastWriteWins(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	r := newTestResolver(nil)

	got, err := r.Resolve(context.Background(), habitConflict(`{"name":"local"}`, `{"name":"server"}`, base.Add(time.Hour), base))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"local"}`, string(got))
}

func TestResolver_ServerWins(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	r := newTestResolver(map[models.EntityKind]models.ResolutionPolicy{
		models.KindHabit: models.PolicyServerWins,
	})

	// local is newer, server still wins
	got, err := r.Resolve(context.Background(), habitConflict(`{"name":"local"}`, `{"name":"server"}`, base.Add(time.Hour), base))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"server"}`, string(got))
}

func TestResolver_FieldMerge(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	r := newTestResolver(map[models.EntityKind]models.ResolutionPolicy{
		models.KindHabit: models.PolicyFieldMerge,
	})

	local := `{"name":"morning run","note":"before work"}`
	server := `{"name":"evening run","color":"#ff8800"}`

	// server edited later: its fields win, local-only fields survive
	got, err := r.Resolve(context.Background(), habitConflict(local, server, base, base.Add(time.Minute)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"evening run","note":"before work","color":"#ff8800"}`, string(got))

	// local edited later: mirror image
	got, err = r.Resolve(context.Background(), habitConflict(local, server, base.Add(time.Minute), base))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"morning run","note":"before work","color":"#ff8800"}`, string(got))
}

func TestResolver_FieldMergeIsDeterministic(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	r := newTestResolver(map[models.EntityKind]models.ResolutionPolicy{
		models.KindHabit: models.PolicyFieldMerge,
	})
	conflict := habitConflict(`{"name":"a","note":"n"}`, `{"name":"b"}`, base, base.Add(time.Second))

	first, err := r.Resolve(context.Background(), conflict)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), conflict)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}

func TestResolver_FieldMergeFallsBackOnMalformedPayload(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	r := newTestResolver(map[models.EntityKind]models.ResolutionPolicy{
		models.KindHabit: models.PolicyFieldMerge,
	})

	// local payload is not an object: merge is impossible, last-write-wins
	// applies and the newer server copy survives
	got, err := r.Resolve(context.Background(), habitConflict(`[1,2]`, `{"name":"server"}`, base, base.Add(time.Minute)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"server"}`, string(got))
}

func TestResolver_UnknownPolicyFallsBack(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	r := newTestResolver(map[models.EntityKind]models.ResolutionPolicy{
		models.KindHabit: models.ResolutionPolicy("vote"),
	})

	got, err := r.Resolve(context.Background(), habitConflict(`{"name":"local"}`, `{"name":"server"}`, base.Add(time.Hour), base))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"local"}`, string(got))
}
