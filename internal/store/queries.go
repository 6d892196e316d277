// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ascent Labs

package store

const (
	upsertLocalEntity = `
		INSERT INTO entities (
			type,
			id,
			owner_id,
			payload,
			created_at,
			updated_at,
			deleted,
			synced
		) VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		ON CONFLICT (type, id) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = excluded.updated_at,
			deleted    = excluded.deleted,
			synced     = FALSE;`

	upsertServerEntity = `
		INSERT INTO entities (
			type,
			id,
			owner_id,
			payload,
			created_at,
			updated_at,
			deleted,
			synced
		) VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		ON CONFLICT (type, id) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = excluded.updated_at,
			deleted    = excluded.deleted,
			synced     = TRUE;`

	getSingleEntity = `
		SELECT
			type,
			id,
			owner_id,
			payload,
			created_at,
			updated_at,
			deleted,
			synced
		FROM entities
		WHERE type = $1 AND id = $2;`

	softDeleteEntity = `
		UPDATE entities SET
			deleted    = TRUE,
			synced     = FALSE,
			updated_at = $1
		WHERE type = $2 AND id = $3;`

	markEntitySynced = `
		UPDATE entities SET
			synced = TRUE
		WHERE type = $1 AND id = $2;`

	getPendingByEntity = `
		SELECT
			id,
			entity_type,
			entity_id,
			operation,
			payload,
			created_at,
			revision,
			retry_count,
			failed
		FROM pending_changes
		WHERE entity_type = $1 AND entity_id = $2;`

	insertPendingChange = `
		INSERT INTO pending_changes (
			id,
			entity_type,
			entity_id,
			operation,
			payload,
			created_at,
			revision,
			retry_count,
			failed
		) VALUES ($1, $2, $3, $4, $5, $6, 0, 0, FALSE);`

	coalescePendingChange = `
		UPDATE pending_changes SET
			operation = $1,
			payload   = $2,
			revision  = revision + 1
		WHERE entity_type = $3 AND entity_id = $4;`

	listPendingChanges = `
		SELECT
			id,
			entity_type,
			entity_id,
			operation,
			payload,
			created_at,
			revision,
			retry_count,
			failed
		FROM pending_changes
		WHERE failed = FALSE
		ORDER BY created_at ASC;`

	removePendingChange = `
		DELETE FROM pending_changes
		WHERE id = $1 AND revision = $2;`

	getPendingRevision = `
		SELECT revision FROM pending_changes
		WHERE id = $1;`

	incrementRetryCount = `
		UPDATE pending_changes
		SET retry_count = retry_count + 1
		WHERE id = $1;`

	markPendingFailed = `
		UPDATE pending_changes
		SET failed = TRUE
		WHERE id = $1 AND retry_count >= $2;`

	countPendingChanges = `
		SELECT COUNT(*) FROM pending_changes;`

	listFailedChangeIDs = `
		SELECT id FROM pending_changes
		WHERE failed = TRUE
		ORDER BY created_at ASC;`

	getWatermark = `
		SELECT last_sync_time FROM sync_state
		WHERE owner_id = $1;`

	advanceWatermark = `
		INSERT INTO sync_state (owner_id, last_sync_time)
		VALUES ($1, $2)
		ON CONFLICT (owner_id) DO UPDATE SET
			last_sync_time = excluded.last_sync_time
		WHERE excluded.last_sync_time > sync_state.last_sync_time;`

	getSettingValue = `
		SELECT value FROM settings
		WHERE key = $1;`

	putSettingValue = `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value;`

	totalPayloadBytes = `
		SELECT COALESCE(SUM(LENGTH(payload)), 0) FROM entities;`

	reclaimableBytes = `
		SELECT COALESCE(SUM(LENGTH(payload)), 0) FROM entities
		WHERE deleted = TRUE AND synced = TRUE AND updated_at < $1;`

	cleanupDeletedEntities = `
		DELETE FROM entities
		WHERE deleted = TRUE AND synced = TRUE AND updated_at < $1;`

	cleanupOrphanedHabitEntries = `
		DELETE FROM entities
		WHERE type = 'habit_entry'
		  AND synced = TRUE
		  AND updated_at < $1
		  AND json_extract(payload, '$.habit_id') NOT IN (
			SELECT id FROM entities WHERE type = 'habit'
		  );`

	evictOldestSynced = `
		DELETE FROM entities
		WHERE rowid IN (
			SELECT rowid FROM entities
			WHERE synced = TRUE AND deleted = FALSE
			ORDER BY updated_at ASC
			LIMIT $1
		);`
)
