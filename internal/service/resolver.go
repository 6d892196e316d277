// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ascent Labs

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"dario.cat/mergo"

	"github.com/ascent-app/ascent-sync/internal/logger"
	"github.com/ascent-app/ascent-sync/models"
)

type conflictResolver struct {
	policies map[models.EntityKind]models.ResolutionPolicy
	logger   *logger.Logger
}

// NewConflictResolver builds a resolver with a fixed per-kind policy table.
// Kinds absent from the table resolve with last-write-wins.
func NewConflictResolver(policies map[models.EntityKind]models.ResolutionPolicy, log *logger.Logger) ConflictResolver {
	if policies == nil {
		policies = make(map[models.EntityKind]models.ResolutionPolicy)
	}
	return &conflictResolver{policies: policies, logger: log}
}

// Resolve picks the surviving payload for the conflict. It is deterministic
// (same inputs, same output) and total: any failure inside a policy degrades
// to last-write-wins instead of failing the sync cycle.
func (r *conflictResolver) Resolve(ctx context.Context, conflict models.Conflict) ([]byte, error) {
	policy, ok := r.policies[conflict.EntityKind]
	if !ok {
		policy = models.PolicyLastWriteWins
	}

	switch policy {
	case models.PolicyServerWins:
		return conflict.ServerData, nil
	case models.PolicyFieldMerge:
		merged, err := r.fieldMerge(conflict)
		if err != nil {
			r.logger.Warn().
				Str("func", "conflictResolver.Resolve").
				Str("entity_type", string(conflict.EntityKind)).
				Str("entity_id", conflict.EntityID).
				Err(err).
				Msg("field merge failed, falling back to last-write-wins")
			return lastWriteWins(conflict), nil
		}
		return merged, nil
	case models.PolicyLastWriteWins:
		return lastWriteWins(conflict), nil
	default:
		r.logger.Warn().
			Str("func", "conflictResolver.Resolve").
			Str("policy", string(policy)).
			Msg("unknown resolution policy, falling back to last-write-wins")
		return lastWriteWins(conflict), nil
	}
}

// lastWriteWins picks the side with the later UpdatedAt. A tie goes to the
// server so that both devices converge on the same copy.
func lastWriteWins(conflict models.Conflict) []byte {
	if conflict.LocalTimestamp.After(conflict.ServerTimestamp) {
		return conflict.LocalData
	}
	return conflict.ServerData
}

// fieldMerge unions the top-level JSON fields of both payloads. The side
// with the later timestamp wins every key it carries; keys only the other
// side carries are kept.
func (r *conflictResolver) fieldMerge(conflict models.Conflict) ([]byte, error) {
	winner, loser := conflict.ServerData, conflict.LocalData
	if conflict.LocalTimestamp.After(conflict.ServerTimestamp) {
		winner, loser = conflict.LocalData, conflict.ServerData
	}

	var winnerFields, loserFields map[string]any
	if err := json.Unmarshal(winner, &winnerFields); err != nil {
		return nil, fmt.Errorf("unmarshal winning payload: %w", err)
	}
	if err := json.Unmarshal(loser, &loserFields); err != nil {
		return nil, fmt.Errorf("unmarshal losing payload: %w", err)
	}

	// mergo keeps existing keys in the destination, so the winner's values
	// survive and the loser only contributes keys the winner lacks
	if err := mergo.Merge(&winnerFields, loserFields); err != nil {
		return nil, fmt.Errorf("merge payload fields: %w", err)
	}

	merged, err := json.Marshal(winnerFields)
	if err != nil {
		return nil, fmt.Errorf("marshal merged payload: %w", err)
	}
	return merged, nil
}
