// Package engine provides the frame drivers that tick the interpreter: a
// headless fixed-step ticker for tests and CI, an ebiten adapter for GUI
// hosts, the script manager that owns the foreground and parallel
// executors, and the MIDI music backend.
package engine

import (
	"log/slog"

	"github.com/wqhan/jxscript/pkg/logger"
	"github.com/wqhan/jxscript/pkg/vm"
)

// Manager owns the foreground executor plus any parallel background
// executors and ticks them all once per frame. Parallel scripts run
// independently; finished ones are dropped on the next tick. Executors never
// share execution state, only the variable store and program cache behind
// them.
type Manager struct {
	foreground *vm.Executor
	parallel   []*vm.Executor
	log        *slog.Logger
}

// NewManager creates a manager around the foreground executor.
func NewManager(foreground *vm.Executor) *Manager {
	return &Manager{
		foreground: foreground,
		log:        logger.GetLogger(),
	}
}

// Foreground returns the foreground executor.
func (m *Manager) Foreground() *vm.Executor { return m.foreground }

// AddParallel registers a background executor to be ticked alongside the
// foreground one.
func (m *Manager) AddParallel(e *vm.Executor) {
	m.parallel = append(m.parallel, e)
}

// ParallelCount returns the number of live background executors.
func (m *Manager) ParallelCount() int { return len(m.parallel) }

// UpdateAll ticks the foreground executor and every parallel executor with
// the frame's elapsed time, in registration order, then drops finished
// parallels.
func (m *Manager) UpdateAll(deltaMs float64) {
	m.foreground.Update(deltaMs)

	live := m.parallel[:0]
	for _, e := range m.parallel {
		e.Update(deltaMs)
		if e.IsRunning() {
			live = append(live, e)
		}
	}
	m.parallel = live
}

// Busy reports whether any executor still has a script running.
func (m *Manager) Busy() bool {
	if m.foreground.IsRunning() {
		return true
	}
	for _, e := range m.parallel {
		if e.IsRunning() {
			return true
		}
	}
	return false
}

// StopAll hard-stops every executor, discarding pending suspensions. Used
// when a save is loaded over a mid-cutscene state.
func (m *Manager) StopAll() {
	m.log.Debug("stopping all scripts")
	m.foreground.Stop()
	for _, e := range m.parallel {
		e.Stop()
	}
	m.parallel = nil
}
