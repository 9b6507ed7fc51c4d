package vm

import (
	"fmt"
	"log/slog"

	"github.com/wqhan/jxscript/pkg/logger"
	"github.com/wqhan/jxscript/pkg/script"
)

// SuspendKind identifies which blocking command family an executor is
// suspended on. The set is closed: no command outside these families may
// suspend, which is what keeps "at most one active suspension" structural.
type SuspendKind int

const (
	SuspendNone SuspendKind = iota
	SuspendPointWalk
	SuspendDirWalk
	SuspendRun
	SuspendFadeIn
	SuspendFadeOut
	SuspendSpecialAction
	SuspendCameraPan
)

// Suspension is the data needed to re-test a blocking command's completion
// predicate each frame. Kind == SuspendNone means the executor is runnable.
// An empty Actor targets the player; the walk families carry the destination
// tile in X, Y.
type Suspension struct {
	Kind  SuspendKind
	Actor string
	X, Y  int
}

type dialogLine struct {
	text     string
	portrait int
}

// frame is one saved caller on the nested-script call stack.
type frame struct {
	program *script.Program
	pc      int
}

// Executor drives one running script instance: fetch, dispatch, suspend,
// resume. It is single-threaded and never blocks the caller; waiting is
// represented as data (Suspension, wait timer, input flag) re-checked when
// the frame driver calls Update or an input callback.
type Executor struct {
	loader   *script.Loader
	registry *Registry
	helpers  *Helpers
	log      *slog.Logger

	program *script.Program
	pc      int
	running bool
	paused  bool

	waitMs float64
	susp   Suspension

	waitingInput bool
	selecting    bool
	dialogQueue  []dialogLine
	selectionVar string

	stack []frame
}

// NewExecutor creates an idle executor over the loader, context and shared
// variable store.
func NewExecutor(loader *script.Loader, ctx GameContext, vars *VarStore) *Executor {
	log := logger.GetLogger()
	e := &Executor{
		loader:   loader,
		registry: NewRegistry(log),
		log:      log,
	}
	e.helpers = &Helpers{Ctx: ctx, Vars: vars, Exec: e, log: log}
	return e
}

// Vars returns the executor's variable store.
func (e *Executor) Vars() *VarStore { return e.helpers.Vars }

// Registry returns the command registry, letting a host register extra
// commands before running scripts.
func (e *Executor) Registry() *Registry { return e.registry }

// IsRunning reports whether a script is loaded and not yet ended.
func (e *Executor) IsRunning() bool { return e.running }

// IsSuspended reports whether the executor is waiting on a timer, a blocking
// predicate, or UI input.
func (e *Executor) IsSuspended() bool {
	return e.running && (e.waitMs > 0 || e.susp.Kind != SuspendNone || e.waitingInput)
}

// PC returns the current program counter.
func (e *Executor) PC() int { return e.pc }

// WaitingInput reports whether a dialogue or selection is pending.
func (e *Executor) WaitingInput() bool { return e.waitingInput }

// SelectionPending reports whether the pending input is a selection rather
// than a dialogue, so the frame driver knows which completion event to send.
func (e *Executor) SelectionPending() bool { return e.selecting }

// WaitRemaining returns the milliseconds left on the sleep timer.
func (e *Executor) WaitRemaining() float64 { return e.waitMs }

// Suspended returns the active suspension record.
func (e *Executor) Suspended() Suspension { return e.susp }

// RunScript loads the named script and runs it until it first suspends or
// ends. The running flag is raised before the load so a re-entrant run
// request issued during the load observes a busy executor. A load failure
// logs the error and leaves the executor idle.
func (e *Executor) RunScript(name string) error {
	e.running = true
	prog, err := e.loader.Load(name)
	if err != nil {
		e.log.Error("failed to load script", "name", name, "error", err)
		e.reset()
		return fmt.Errorf("run %s: %w", name, err)
	}
	e.program = prog
	e.pc = 0
	e.clearSuspensions()
	e.execute()
	return nil
}

// RunProgram runs an already parsed program. Mainly for tests and hosts
// that synthesize scripts.
func (e *Executor) RunProgram(prog *script.Program) {
	e.running = true
	e.program = prog
	e.pc = 0
	e.clearSuspensions()
	e.execute()
}

// execute is the fetch loop. It runs commands in program order until a
// suspension condition is raised or the program ends, then returns control
// to the caller. The program counter is advanced past a command before
// dispatch so that jumps and nested-script swaps see the return point; a
// handler that suspends gets the counter moved back onto its command, to be
// advanced by Update once the predicate holds.
func (e *Executor) execute() {
	for e.running && e.program != nil {
		if e.paused || e.waitingInput || e.waitMs > 0 || e.susp.Kind != SuspendNone {
			return
		}
		if e.pc >= e.program.Len() {
			if n := len(e.stack); n > 0 {
				fr := e.stack[n-1]
				e.stack = e.stack[:n-1]
				e.program, e.pc = fr.program, fr.pc
				continue
			}
			e.log.Debug("script finished", "name", e.program.Name)
			e.reset()
			return
		}

		cmd := e.program.Commands[e.pc]
		if cmd.IsLabel {
			e.pc++
			continue
		}

		e.pc++
		if !e.registry.Dispatch(cmd, e.helpers) {
			if e.running {
				// Suspended: the command is re-completed, not re-dispatched.
				e.pc--
			}
			return
		}
	}
}

// Update is the per-frame tick. It burns down the wait timer, re-evaluates
// the active blocking predicate, and resumes the fetch loop when either
// clears. At most one resumption step happens per call, though a resumed
// fetch loop may run any number of synchronously-satisfied commands.
func (e *Executor) Update(deltaMs float64) {
	if !e.running {
		return
	}

	if e.waitMs > 0 {
		e.waitMs -= deltaMs
		if e.waitMs > 0 {
			return
		}
		e.waitMs = 0
		e.execute()
		return
	}

	if e.susp.Kind != SuspendNone {
		if !e.suspensionDone() {
			return
		}
		e.susp = Suspension{}
		e.pc++
		e.execute()
	}
}

// suspensionDone re-evaluates the active blocking predicate. Predicates are
// idempotent; polling must not change game state.
func (e *Executor) suspensionDone() bool {
	ctx := e.helpers.Ctx
	s := e.susp
	switch s.Kind {
	case SuspendPointWalk, SuspendRun:
		if s.Actor == "" {
			return ctx.PlayerArrived(s.X, s.Y) && ctx.PlayerStanding()
		}
		return ctx.NpcArrived(s.Actor, s.X, s.Y) && ctx.NpcStanding(s.Actor)
	case SuspendDirWalk:
		if s.Actor == "" {
			return ctx.PlayerStanding()
		}
		return ctx.NpcStanding(s.Actor)
	case SuspendFadeIn:
		return ctx.FadeInFinished()
	case SuspendFadeOut:
		return ctx.FadeOutFinished()
	case SuspendSpecialAction:
		return ctx.NpcActionDone(s.Actor)
	case SuspendCameraPan:
		return ctx.CameraDone()
	default:
		return true
	}
}

// OnDialogClosed is the frame driver's callback for a dismissed dialogue.
// If queued lines remain the next one is shown and the executor stays
// suspended; otherwise it resumes.
func (e *Executor) OnDialogClosed() {
	if !e.waitingInput {
		return
	}
	if len(e.dialogQueue) > 0 {
		next := e.dialogQueue[0]
		e.dialogQueue = e.dialogQueue[1:]
		e.helpers.Ctx.ShowDialog(next.text, next.portrait)
		return
	}
	e.waitingInput = false
	e.execute()
}

// OnSelectionMade is the frame driver's callback for a completed selection.
// The chosen index is written to the bound result variable before the
// executor resumes, so the very next command can already branch on it.
func (e *Executor) OnSelectionMade(index int) {
	if !e.waitingInput {
		return
	}
	if e.selectionVar != "" {
		e.helpers.Vars.Set(e.selectionVar, index)
		e.selectionVar = ""
	}
	e.selecting = false
	e.waitingInput = false
	e.execute()
}

// Stop ends the script immediately and unconditionally, discarding any
// pending wait, blocking or input state without completion callbacks. Used
// both for normal termination and hard interruption (loading a save).
func (e *Executor) Stop() {
	e.reset()
}

func (e *Executor) reset() {
	e.running = false
	e.program = nil
	e.pc = 0
	e.clearSuspensions()
}

func (e *Executor) clearSuspensions() {
	e.paused = false
	e.waitMs = 0
	e.susp = Suspension{}
	e.waitingInput = false
	e.selecting = false
	e.dialogQueue = nil
	e.selectionVar = ""
	e.stack = nil
}

// gotoLabel moves the program counter to the label. An unresolved label is
// logged and skipped; execution continues at the next sequential line, which
// stalls the intended branch but keeps the script alive.
func (e *Executor) gotoLabel(name string) {
	if e.program == nil {
		return
	}
	idx, ok := e.program.LabelIndex(name)
	if !ok {
		e.log.Warn("unresolved label, jump skipped",
			"label", name, "script", e.program.Name)
		return
	}
	e.pc = idx
}

// suspend records a blocking suspension. The fetch loop restores the
// program counter onto the suspending command.
func (e *Executor) suspend(s Suspension) {
	e.susp = s
}

// sleep suspends for ms milliseconds. The counter has already advanced past
// the sleep command, so resuming continues at the next line.
func (e *Executor) sleep(ms int) {
	if ms > 0 {
		e.waitMs = float64(ms)
	}
}

// beginDialog shows the first line and queues the rest behind the input
// flag.
func (e *Executor) beginDialog(lines []dialogLine) {
	if len(lines) == 0 {
		return
	}
	e.helpers.Ctx.ShowDialog(lines[0].text, lines[0].portrait)
	e.dialogQueue = lines[1:]
	e.waitingInput = true
}

// beginSelection shows a selection prompt, binding the result variable the
// chosen index will be stored into.
func (e *Executor) beginSelection(message string, options []string, resultVar string) {
	e.helpers.Ctx.ShowSelection(message, options)
	e.selectionVar = resultVar
	e.selecting = true
	e.waitingInput = true
}

// callScript pushes the current position and swaps in a child program at
// index zero. The parent resumes only after the child falls off its end. A
// load failure is logged and the call degrades to a no-op line.
func (e *Executor) callScript(name string) {
	if e.loader == nil {
		e.log.Warn("no loader configured, RunScript skipped", "name", name)
		return
	}
	prog, err := e.loader.Load(name)
	if err != nil {
		e.log.Error("failed to load nested script", "name", name, "error", err)
		return
	}
	e.stack = append(e.stack, frame{program: e.program, pc: e.pc})
	e.program = prog
	e.pc = 0
}

// clearProgramCache drops every cached program, used when returning to the
// title screen.
func (e *Executor) clearProgramCache() {
	if e.loader != nil {
		e.loader.ClearCache()
	}
}

// endScript jumps past the last command, ending the current program. Inside
// a nested call this returns to the parent; at top level the executor goes
// idle.
func (e *Executor) endScript() {
	if e.program != nil {
		e.pc = e.program.Len()
	}
}
