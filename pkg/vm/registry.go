package vm

import (
	"log/slog"
	"strings"

	"github.com/wqhan/jxscript/pkg/logger"
	"github.com/wqhan/jxscript/pkg/script"
)

// Helpers is everything a command handler may touch besides its own
// arguments: the capability interface, the variable store, the owning
// executor (for jumps, suspension and nested scripts) and the resolver
// shorthands.
type Helpers struct {
	Ctx  GameContext
	Vars *VarStore
	Exec *Executor
	log  *slog.Logger
}

// Str resolves argument i as a string ($name references substituted).
// Out-of-range indices yield "".
func (h *Helpers) Str(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return ResolveString(args[i], h.Vars)
}

// Num resolves argument i as an integer. Out-of-range indices yield 0.
func (h *Helpers) Num(args []string, i int) int {
	if i >= len(args) {
		return 0
	}
	return ResolveNumber(args[i], h.Vars)
}

// Raw returns argument i unresolved, "" when out of range. Used where the
// argument names a variable to write rather than a value to read.
func (h *Helpers) Raw(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return args[i]
}

// Handler executes one command. args are the raw parameter strings and
// resultLabel the jump target for branching commands. The return value is
// "continue immediately": false means the handler suspended the executor and
// the program counter must stay on this command.
type Handler func(args []string, resultLabel string, h *Helpers) bool

// Registry is the static case-insensitive command name→handler table, built
// once per executor.
type Registry struct {
	handlers map[string]Handler
	log      *slog.Logger
}

// NewRegistry builds the table with every builtin group registered.
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = logger.GetLogger()
	}
	r := &Registry{
		handlers: make(map[string]Handler),
		log:      log,
	}
	r.registerFlowBuiltins()
	r.registerPlayerBuiltins()
	r.registerNpcBuiltins()
	r.registerObjectBuiltins()
	r.registerDialogueBuiltins()
	r.registerScreenBuiltins()
	r.registerAudioBuiltins()
	r.registerStateBuiltins()
	return r
}

// Register adds a handler under the name, lowercased. Later registrations
// replace earlier ones, which lets a host override a builtin.
func (r *Registry) Register(name string, fn Handler) {
	r.handlers[strings.ToLower(name)] = fn
}

// Dispatch runs the command's handler and reports whether execution may
// continue immediately. An unknown name is logged and treated as a no-op
// that continues: scripts referencing commands this build does not implement
// must keep making forward progress.
func (r *Registry) Dispatch(cmd script.Command, h *Helpers) bool {
	fn, ok := r.handlers[strings.ToLower(cmd.Name)]
	if !ok {
		r.log.Warn("unknown script command",
			"name", cmd.Name, "line", cmd.LineNumber, "source", cmd.Literal)
		return true
	}
	return fn(cmd.Params, cmd.ResultLabel, h)
}

// Known reports whether a handler is registered under the name.
func (r *Registry) Known(name string) bool {
	_, ok := r.handlers[strings.ToLower(name)]
	return ok
}
