package engine

import (
	"context"
	"time"

	"github.com/wqhan/jxscript/pkg/logger"
)

// StepMs is the fixed simulated frame time, matching a 60fps host.
const StepMs = 1000.0 / 60.0

// Ticker drives a Manager headlessly with fixed 16.7ms steps: tests, CI and
// the demo runner. With AutoInput set it dismisses dialogues and answers
// selections with option zero, so content scripts run to completion without
// a user.
type Ticker struct {
	manager *Manager

	// Interval is the wall-clock delay between steps. Zero means step as
	// fast as possible (the simulated delta stays StepMs either way).
	Interval time.Duration

	// AutoInput answers dialogue and selection prompts automatically.
	AutoInput bool
}

// NewTicker creates a headless driver over the manager.
func NewTicker(m *Manager) *Ticker {
	return &Ticker{manager: m}
}

// Step advances the world by one fixed frame.
func (t *Ticker) Step() {
	if t.AutoInput {
		t.answerInput()
	}
	t.manager.UpdateAll(StepMs)
}

func (t *Ticker) answerInput() {
	fg := t.manager.Foreground()
	if !fg.WaitingInput() {
		return
	}
	if fg.SelectionPending() {
		fg.OnSelectionMade(0)
		return
	}
	fg.OnDialogClosed()
}

// Run steps the manager until every script is idle, the context is
// cancelled, or the timeout elapses (zero means no timeout). Returns the
// context error on cancellation, nil on normal completion.
func (t *Ticker) Run(ctx context.Context, timeout time.Duration) error {
	log := logger.GetLogger()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	for t.manager.Busy() {
		select {
		case <-ctx.Done():
			log.Warn("headless run interrupted", "reason", ctx.Err())
			t.manager.StopAll()
			return ctx.Err()
		default:
		}
		t.Step()
		if t.Interval > 0 {
			time.Sleep(t.Interval)
		}
	}
	log.Debug("headless run complete")
	return nil
}
