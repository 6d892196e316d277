package service

import "errors"

var (
	// ErrSyncInProgress is returned by Sync when another cycle already
	// holds the in-flight flag. The caller should wait for the status
	// stream rather than retry in a loop.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrOffline is returned by the preflight check when no network is
	// available. Transient: the next connectivity transition or scheduled
	// tick retries.
	ErrOffline = errors.New("device is offline")
)
