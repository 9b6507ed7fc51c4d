// Package script parses the engine's quest/dialogue DSL into flat command
// lists and loads script files with the two-tier (map directory, then common
// directory) path fallback the original content relies on.
package script

// Command is one parsed unit of script: a named operation with its raw
// arguments, or a label declaration. Commands are immutable once parsed.
type Command struct {
	// Name is the operation identifier. Dispatch is case-insensitive.
	Name string

	// Params are the raw argument strings in order. They may still contain
	// variable references ($name); fully quoted literals have had their
	// quotes stripped.
	Params []string

	// ResultLabel is the jump destination for If and Goto, empty otherwise.
	ResultLabel string

	// Literal is the original source line, kept for diagnostics.
	Literal string

	// LineNumber is the 1-based source line this command came from.
	LineNumber int

	// IsLabel marks a label declaration pseudo-command (@Name:).
	IsLabel bool

	// IsGoto marks an unconditional jump.
	IsGoto bool
}

// Program is an ordered command sequence plus the label table. It carries no
// mutable state and may be shared by any number of paused script instances.
type Program struct {
	// Name is the logical script name the program was loaded under.
	Name string

	// Commands is the flat instruction list.
	Commands []Command

	// Labels maps a label name (lowercased) to the index of its declaration.
	Labels map[string]int
}

// LabelIndex returns the command index a label resolves to.
// Label lookup is case-insensitive.
func (p *Program) LabelIndex(name string) (int, bool) {
	idx, ok := p.Labels[foldLabel(name)]
	return idx, ok
}

// Len returns the number of commands in the program.
func (p *Program) Len() int {
	return len(p.Commands)
}
