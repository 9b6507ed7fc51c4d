package vm

import (
	"testing"

	"github.com/wqhan/jxscript/pkg/script"
)

func TestDispatchIsCaseInsensitive(t *testing.T) {
	tests := []string{"AddMoney", "addmoney", "ADDMONEY", "aDdMoNeY"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewExecutor(nil, NewFakeContext(), NewVarStore())
			fake := e.helpers.Ctx.(*FakeContext)
			e.RunProgram(script.Parse(name+"(5);", "test"))
			if fake.CallCount("AddMoney") != 1 {
				t.Errorf("dispatch of %q did not reach the handler", name)
			}
		})
	}
}

func TestRegisterOverridesBuiltin(t *testing.T) {
	e := NewExecutor(nil, NewFakeContext(), NewVarStore())
	called := false
	e.Registry().Register("FullLife", func(_ []string, _ string, _ *Helpers) bool {
		called = true
		return true
	})
	e.RunProgram(script.Parse("FullLife();", "test"))
	if !called {
		t.Error("later registration should replace the builtin")
	}
}

func TestKnown(t *testing.T) {
	r := NewRegistry(nil)
	if !r.Known("playergoto") || !r.Known("PlayerGoto") {
		t.Error("Known should be case-insensitive")
	}
	if r.Known("NotACommand") {
		t.Error("Known reported an unregistered name")
	}
}
