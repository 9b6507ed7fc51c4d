package vm

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/wqhan/jxscript/pkg/script"
)

// Property-based tests for the executor's control flow and tolerance
// guarantees.

func TestPropertyLabelLoopCounts(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("a label loop runs its body exactly n times", prop.ForAll(
		func(n int) bool {
			source := fmt.Sprintf(`
@Loop:
Add($n, 1);
If ($n < %d) @Loop;
`, n)
			e := NewExecutor(nil, NewFakeContext(), NewVarStore())
			e.RunProgram(script.Parse(source, "loop"))
			return !e.IsRunning() && e.Vars().Get("n") == n
		},
		gen.IntRange(1, 500),
	))

	properties.TestingRun(t)
}

func TestPropertyUnknownCommandsNeverHalt(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("any unregistered command name is a logged no-op", prop.ForAll(
		func(name string) bool {
			e := NewExecutor(nil, NewFakeContext(), NewVarStore())
			if e.Registry().Known(name) {
				return true
			}
			source := fmt.Sprintf("%s(1, 2);\nSetVar($done, 1);", name)
			e.RunProgram(script.Parse(source, "tolerance"))
			return !e.IsRunning() && e.Vars().Get("done") == 1
		},
		gen.RegexMatch(`[A-Za-z][A-Za-z0-9_]{0,15}`),
	))

	properties.TestingRun(t)
}

func TestPropertyRandVarInRange(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("RandVar stores a value in [0, n)", prop.ForAll(
		func(n int) bool {
			e := NewExecutor(nil, NewFakeContext(), NewVarStore())
			e.RunProgram(script.Parse(fmt.Sprintf("RandVar($r, %d);", n), "rand"))
			v := e.Vars().Get("r")
			return v >= 0 && v < n
		},
		gen.IntRange(1, 1000),
	))

	properties.TestingRun(t)
}

func TestPropertyArithmeticSequences(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Add then Sub round-trips the variable", prop.ForAll(
		func(start, delta int) bool {
			source := fmt.Sprintf(`
SetVar($v, %d);
Add($v, %d);
Sub($v, %d);
`, start, delta, delta)
			e := NewExecutor(nil, NewFakeContext(), NewVarStore())
			e.RunProgram(script.Parse(source, "arith"))
			return e.Vars().Get("v") == start
		},
		gen.IntRange(-100000, 100000),
		gen.IntRange(-100000, 100000),
	))

	properties.TestingRun(t)
}
