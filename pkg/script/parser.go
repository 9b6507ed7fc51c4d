package script

import (
	"strings"
	"unicode"
)

// Parse converts script source text into a Program. Parsing never fails:
// every line gets a best-effort match against the recognised forms, and
// lines that match nothing are dropped. That leniency is deliberate — the
// content pipeline is authored outside the engine and a malformed line must
// not take the rest of the script with it.
//
// Recognised forms, most specific first:
//
//	@Label:
//	If (<condition>) @Label;
//	Goto @Label;
//	Name(arg1, "quoted, arg", $var);
//	Name;
//
// Blank lines and //-comments are skipped.
func Parse(source, name string) *Program {
	prog := &Program{
		Name:   name,
		Labels: make(map[string]int),
	}

	for i, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		lineNo := i + 1

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if cmd, ok := parseLabel(line); ok {
			prog.Labels[foldLabel(cmd.Name)] = len(prog.Commands)
			appendCommand(prog, cmd, line, lineNo)
			continue
		}
		if cmd, ok := parseIf(line); ok {
			appendCommand(prog, cmd, line, lineNo)
			continue
		}
		if cmd, ok := parseGoto(line); ok {
			appendCommand(prog, cmd, line, lineNo)
			continue
		}
		if cmd, ok := parseCall(line); ok {
			appendCommand(prog, cmd, line, lineNo)
			continue
		}
		// No match: dropped.
	}

	return prog
}

func appendCommand(prog *Program, cmd Command, literal string, lineNo int) {
	cmd.Literal = literal
	cmd.LineNumber = lineNo
	prog.Commands = append(prog.Commands, cmd)
}

// parseLabel matches lines of the exact shape "@identifier:".
func parseLabel(line string) (Command, bool) {
	if !strings.HasPrefix(line, "@") || !strings.HasSuffix(line, ":") {
		return Command{}, false
	}
	label := line[1 : len(line)-1]
	if !isIdentifier(label) {
		return Command{}, false
	}
	return Command{Name: label, IsLabel: true}, true
}

// parseIf matches "If (<condition>) @Label;". The condition text is kept
// verbatim; it is interpreted at execution time, not parse time.
func parseIf(line string) (Command, bool) {
	rest, ok := cutKeyword(line, "if")
	if !ok || !strings.HasPrefix(rest, "(") {
		return Command{}, false
	}
	close := matchingParen(rest, 0)
	if close < 0 {
		return Command{}, false
	}
	cond := strings.TrimSpace(rest[1:close])
	label, ok := parseLabelRef(rest[close+1:])
	if !ok {
		return Command{}, false
	}
	return Command{Name: "If", Params: []string{cond}, ResultLabel: label}, true
}

// parseGoto matches "Goto @Label;".
func parseGoto(line string) (Command, bool) {
	rest, ok := cutKeyword(line, "goto")
	if !ok {
		return Command{}, false
	}
	label, ok := parseLabelRef(rest)
	if !ok {
		return Command{}, false
	}
	return Command{Name: "Goto", ResultLabel: label, IsGoto: true}, true
}

// parseCall matches "Name(args);" and the bare "Name;" form. Trailing junk
// between the closing parenthesis and the end of the line (stray underscores
// show up in shipped content) is tolerated and stripped.
func parseCall(line string) (Command, bool) {
	nameEnd := identifierEnd(line)
	if nameEnd == 0 {
		return Command{}, false
	}
	name := line[:nameEnd]
	rest := strings.TrimSpace(line[nameEnd:])

	if rest == "" || trailingJunk(rest) {
		return Command{Name: name}, true
	}
	if !strings.HasPrefix(rest, "(") {
		return Command{}, false
	}

	close := matchingParen(rest, 0)
	if close < 0 {
		// Unterminated argument list: take everything to end of line.
		close = len(rest)
		rest += ")"
	}
	if !trailingJunk(rest[close+1:]) {
		return Command{}, false
	}
	return Command{Name: name, Params: splitArgs(rest[1:close])}, true
}

// parseLabelRef extracts "@identifier" from s, tolerating a trailing
// semicolon and junk.
func parseLabelRef(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "@") {
		return "", false
	}
	end := identifierEnd(s[1:])
	if end == 0 {
		return "", false
	}
	label := s[1 : 1+end]
	if !trailingJunk(s[1+end:]) {
		return "", false
	}
	return label, true
}

// cutKeyword strips a case-insensitive leading keyword and returns what
// follows it, trimmed. The keyword must not run into further identifier
// characters ("Iffy" is not "If").
func cutKeyword(line, keyword string) (string, bool) {
	if len(line) < len(keyword) || !strings.EqualFold(line[:len(keyword)], keyword) {
		return "", false
	}
	rest := line[len(keyword):]
	if rest != "" && isIdentRune(rune(rest[0])) {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// matchingParen returns the index of the parenthesis closing the one at
// open, honouring quoted strings (with backslash escapes) and nesting.
// Returns -1 when the list never closes.
func matchingParen(s string, open int) int {
	depth := 0
	inQuote := false
	escaped := false
	for i := open; i < len(s); i++ {
		c := s[i]
		if inQuote {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inQuote = false
			}
			continue
		}
		switch c {
		case '"':
			inQuote = true
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitArgs splits an argument list on commas, respecting quoted strings
// and nested parentheses, and strips the quotes from fully quoted
// arguments.
func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var args []string
	var buf strings.Builder
	depth := 0
	inQuote := false
	escaped := false

	flush := func() {
		args = append(args, normalizeArg(buf.String()))
		buf.Reset()
	}

	for _, r := range s {
		if inQuote {
			buf.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inQuote = false
			}
			continue
		}
		switch r {
		case '"':
			inQuote = true
			buf.WriteRune(r)
		case '(':
			depth++
			buf.WriteRune(r)
		case ')':
			depth--
			buf.WriteRune(r)
		case ',':
			if depth == 0 {
				flush()
			} else {
				buf.WriteRune(r)
			}
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	return args
}

// normalizeArg trims an argument and removes the surrounding quotes from a
// fully quoted literal, unescaping \" and \\ inside it. Anything else is
// left raw for the resolver.
func normalizeArg(arg string) string {
	arg = strings.TrimSpace(arg)
	if len(arg) >= 2 && arg[0] == '"' && arg[len(arg)-1] == '"' {
		inner := arg[1 : len(arg)-1]
		inner = strings.ReplaceAll(inner, `\"`, `"`)
		inner = strings.ReplaceAll(inner, `\\`, `\`)
		return inner
	}
	return arg
}

// trailingJunk reports whether s contains nothing the parser needs to care
// about: whitespace, the statement terminator, and the stray characters
// (underscores and the like) that appear before it in shipped content.
func trailingJunk(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '(' || r == '"' {
			return false
		}
	}
	return true
}

func identifierEnd(s string) int {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return 0
			}
			continue
		}
		if !isIdentRune(r) {
			return i
		}
	}
	return len(s)
}

func isIdentifier(s string) bool {
	return s != "" && identifierEnd(s) == len(s)
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func foldLabel(name string) string {
	return strings.ToLower(name)
}
