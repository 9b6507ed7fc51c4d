package vm

import (
	"strconv"
	"strings"
	"unicode"
)

// ResolveString substitutes every $name token in s with the decimal string of
// that variable's current value. The result is a snapshot of the store at
// call time.
func ResolveString(s string, vars *VarStore) string {
	if !strings.ContainsRune(s, '$') {
		return s
	}

	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); {
		if runes[i] != '$' {
			b.WriteRune(runes[i])
			i++
			continue
		}
		end := i + 1
		for end < len(runes) && isVarRune(runes[end]) {
			end++
		}
		if end == i+1 {
			// Lone $, not a reference.
			b.WriteRune('$')
			i++
			continue
		}
		b.WriteString(strconv.Itoa(vars.Get(string(runes[i+1 : end]))))
		i = end
	}
	return b.String()
}

// ResolveNumber interprets s as an integer argument: exactly a $name token
// reads that variable; anything else parses as base-10, defaulting to zero
// on failure. Never fails.
func ResolveNumber(s string, vars *VarStore) int {
	s = strings.TrimSpace(s)
	if isVarRef(s) {
		return vars.Get(s[1:])
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// isVarRef reports whether s is exactly a $name token.
func isVarRef(s string) bool {
	if len(s) < 2 || s[0] != '$' {
		return false
	}
	for _, r := range s[1:] {
		if !isVarRune(r) {
			return false
		}
	}
	return true
}

func isVarRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
