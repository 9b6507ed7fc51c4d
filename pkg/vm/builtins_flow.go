package vm

import (
	"math/rand"
	"strings"
)

// registerFlowBuiltins registers control flow and variable commands.
func (r *Registry) registerFlowBuiltins() {
	r.Register("If", func(args []string, resultLabel string, h *Helpers) bool {
		if len(args) == 0 {
			return true
		}
		if evalCondition(args[0], h.Vars) {
			h.Exec.gotoLabel(resultLabel)
		}
		return true
	})

	r.Register("Goto", func(args []string, resultLabel string, h *Helpers) bool {
		h.Exec.gotoLabel(resultLabel)
		return true
	})

	r.Register("RunScript", func(args []string, _ string, h *Helpers) bool {
		h.Exec.callScript(h.Str(args, 0))
		return true
	})

	r.Register("Sleep", func(args []string, _ string, h *Helpers) bool {
		h.Exec.sleep(h.Num(args, 0))
		return true
	})

	assign := func(args []string, _ string, h *Helpers) bool {
		h.Vars.Set(h.Raw(args, 0), h.Num(args, 1))
		return true
	}
	r.Register("Assign", assign)
	r.Register("SetVar", assign)

	r.Register("Add", func(args []string, _ string, h *Helpers) bool {
		h.Vars.Add(h.Raw(args, 0), h.Num(args, 1))
		return true
	})

	r.Register("Sub", func(args []string, _ string, h *Helpers) bool {
		h.Vars.Add(h.Raw(args, 0), -h.Num(args, 1))
		return true
	})

	// RandVar(name, n) stores a uniform value in [0, n).
	r.Register("RandVar", func(args []string, _ string, h *Helpers) bool {
		n := h.Num(args, 1)
		v := 0
		if n > 0 {
			v = rand.Intn(n)
		}
		h.Vars.Set(h.Raw(args, 0), v)
		return true
	})

	r.Register("EndScript", func(_ []string, _ string, h *Helpers) bool {
		h.Exec.endScript()
		return true
	})

	r.Register("ClearVars", func(_ []string, _ string, h *Helpers) bool {
		h.Vars.Reset()
		return true
	})
}

var comparisonOps = []string{"==", "!=", "<=", ">=", "<", ">"}

// evalCondition interprets the preserved condition text of an If command:
// two operands, each a variable or integer literal, joined by a comparison
// operator. Condition text with no operator is truthy when it resolves to a
// non-zero number.
func evalCondition(cond string, vars *VarStore) bool {
	cond = strings.TrimSpace(cond)
	for _, op := range comparisonOps {
		idx := strings.Index(cond, op)
		if idx < 0 {
			continue
		}
		lhs := ResolveNumber(cond[:idx], vars)
		rhs := ResolveNumber(cond[idx+len(op):], vars)
		switch op {
		case "==":
			return lhs == rhs
		case "!=":
			return lhs != rhs
		case "<=":
			return lhs <= rhs
		case ">=":
			return lhs >= rhs
		case "<":
			return lhs < rhs
		case ">":
			return lhs > rhs
		}
	}
	return ResolveNumber(cond, vars) != 0
}
