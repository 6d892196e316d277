// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ascent Labs

// Package netmon exposes the device's connectivity as a three-state signal
// (none / metered / unmetered) with transition events.
//
// The monitor holds no persisted state. The platform layer feeds raw
// transitions into Set; subscribers (the sync engine and its background job)
// receive debounced transitions. Flaps shorter than the debounce window are
// ignored so the engine is not thrashed by transient signal loss.
package netmon

import (
	"sync"
	"time"

	"github.com/ascent-app/ascent-sync/internal/logger"
	"github.com/ascent-app/ascent-sync/models"
)

// DefaultDebounce is the window under which connectivity flaps are ignored.
const DefaultDebounce = 2 * time.Second

// Transition is delivered to subscribers on every debounced state change.
type Transition struct {
	From models.Connectivity
	To   models.Connectivity
	At   time.Time
}

// Monitor is a thin, in-process connectivity signal.
type Monitor struct {
	logger   *logger.Logger
	debounce time.Duration

	mu        sync.Mutex
	state     models.Connectivity
	pending   models.Connectivity
	timer     *time.Timer
	nextSubID int
	subs      map[int]chan Transition

	now func() time.Time
}

// NewMonitor constructs a Monitor starting in the given state. A
// non-positive debounce falls back to DefaultDebounce.
func NewMonitor(initial models.Connectivity, debounce time.Duration, log *logger.Logger) *Monitor {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if initial == "" {
		initial = models.ConnectivityNone
	}

	return &Monitor{
		logger:   log,
		debounce: debounce,
		state:    initial,
		pending:  initial,
		subs:     make(map[int]chan Transition),
		now:      time.Now,
	}
}

// Current returns the point-in-time connectivity state.
func (m *Monitor) Current() models.Connectivity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Set feeds a raw connectivity reading from the platform layer. The change
// is committed and fanned out to subscribers only if it survives the
// debounce window; a reading that reverts within the window cancels the
// pending transition.
func (m *Monitor) Set(state models.Connectivity) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state == m.pending {
		return
	}
	m.pending = state

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}

	if state == m.state {
		// reverted inside the debounce window, treat as a flap
		return
	}

	m.timer = time.AfterFunc(m.debounce, func() { m.commit(state) })
}

func (m *Monitor) commit(state models.Connectivity) {
	m.mu.Lock()

	if m.pending != state || m.state == state {
		m.mu.Unlock()
		return
	}

	tr := Transition{From: m.state, To: state, At: m.now()}
	m.state = state
	m.timer = nil

	// fan out under the mutex: Unsubscribe closes channels under the same
	// lock, so a concurrent unsubscribe can never close one mid-send. Sends
	// are non-blocking, the lock is held only briefly.
	for _, ch := range m.subs {
		select {
		case ch <- tr:
		default:
			// slow subscriber drops the event rather than blocking the monitor
		}
	}
	m.mu.Unlock()

	m.logger.Debug().
		Str("func", "Monitor.commit").
		Str("from", string(tr.From)).
		Str("to", string(tr.To)).
		Msg("connectivity transition")
}

// Subscribe registers a transition listener and returns its channel together
// with an id for Unsubscribe. The channel is buffered; events are dropped
// for subscribers that do not keep up.
func (m *Monitor) Subscribe() (int, <-chan Transition) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++

	ch := make(chan Transition, 8)
	m.subs[id] = ch
	return id, ch
}

// Unsubscribe removes the listener and closes its channel. Safe to call with
// an unknown id (no-op).
func (m *Monitor) Unsubscribe(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ch, ok := m.subs[id]; ok {
		delete(m.subs, id)
		close(ch)
	}
}
