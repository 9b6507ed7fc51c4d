package script

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseCall(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantName   string
		wantParams []string
	}{
		{"no args", "FadeOut();", "FadeOut", nil},
		{"bare form", "EndScript;", "EndScript", nil},
		{"numeric args", "SetPlayerPos(10, 20);", "SetPlayerPos", []string{"10", "20"}},
		{"quoted arg", `Say("Hello there");`, "Say", []string{"Hello there"}},
		{"comma inside quotes", `Say("Hello, (friend)!");`, "Say", []string{"Hello, (friend)!"}},
		{"escaped quote", `Say("a \"b\" c");`, "Say", []string{`a "b" c`}},
		{"variable arg", "Add($gold, 100);", "Add", []string{"$gold", "100"}},
		{"spaces around args", "AddNpc( guard.ini , 5 , 7 );", "AddNpc", []string{"guard.ini", "5", "7"}},
		{"missing semicolon", `PlayMusic("town.mid")`, "PlayMusic", []string{"town.mid"}},
		{"trailing junk", "CloseBox(3); _", "CloseBox", []string{"3"}},
		{"unterminated list", `ShowMessage("oops`, "ShowMessage", []string{`"oops`}},
		{"unterminated unquoted list", "MoveScreen(2, 40", "MoveScreen", []string{"2", "40"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := Parse(tt.line, "test")
			if prog.Len() != 1 {
				t.Fatalf("Parse(%q) produced %d commands, want 1", tt.line, prog.Len())
			}
			cmd := prog.Commands[0]
			if cmd.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", cmd.Name, tt.wantName)
			}
			if len(cmd.Params) != len(tt.wantParams) {
				t.Fatalf("Params = %v, want %v", cmd.Params, tt.wantParams)
			}
			for i := range tt.wantParams {
				if cmd.Params[i] != tt.wantParams[i] {
					t.Errorf("Params[%d] = %q, want %q", i, cmd.Params[i], tt.wantParams[i])
				}
			}
		})
	}
}

func TestParseControlFlow(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantName  string
		wantLabel string
		wantCond  string
	}{
		{"goto", "Goto @Loop;", "Goto", "Loop", ""},
		{"goto lowercase keyword", "goto @done;", "Goto", "done", ""},
		{"if equality", "If ($gold == 100) @Rich;", "If", "Rich", "$gold == 100"},
		{"if with parens in cond", "If (($a) > 1) @L;", "If", "L", "($a) > 1"},
		{"if no space before paren", "If($hp < 10) @Hurt;", "If", "Hurt", "$hp < 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := Parse(tt.line, "test")
			if prog.Len() != 1 {
				t.Fatalf("Parse(%q) produced %d commands, want 1", tt.line, prog.Len())
			}
			cmd := prog.Commands[0]
			if cmd.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", cmd.Name, tt.wantName)
			}
			if cmd.ResultLabel != tt.wantLabel {
				t.Errorf("ResultLabel = %q, want %q", cmd.ResultLabel, tt.wantLabel)
			}
			if tt.wantCond != "" {
				if len(cmd.Params) != 1 || cmd.Params[0] != tt.wantCond {
					t.Errorf("condition = %v, want %q", cmd.Params, tt.wantCond)
				}
			}
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	// A command named like a keyword prefix must not be treated as the
	// keyword itself.
	prog := Parse("Iffy(1);", "test")
	if prog.Len() != 1 || prog.Commands[0].Name != "Iffy" {
		t.Fatalf("Iffy parsed as %+v", prog.Commands)
	}
}

func TestParseLabels(t *testing.T) {
	source := strings.Join([]string{
		"@Start:",
		"Say(\"hi\");",
		"Goto @start;",
		"@End:",
	}, "\n")

	prog := Parse(source, "test")
	if prog.Len() != 4 {
		t.Fatalf("Len = %d, want 4", prog.Len())
	}

	idx, ok := prog.LabelIndex("START")
	if !ok || idx != 0 {
		t.Errorf("LabelIndex(START) = %d, %v, want 0, true", idx, ok)
	}
	idx, ok = prog.LabelIndex("end")
	if !ok || idx != 3 {
		t.Errorf("LabelIndex(end) = %d, %v, want 3, true", idx, ok)
	}
	if _, ok := prog.LabelIndex("missing"); ok {
		t.Error("LabelIndex(missing) should not resolve")
	}
}

func TestParseTolerance(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		dropped bool
	}{
		{"comment", "// nothing here", true},
		{"blank", "   ", true},
		{"garbage", "%%%###", true},
		{"label missing colon", "@Start", true},
		{"if missing label", "If ($a == 1);", true},
		{"crlf line ending", "FadeIn();\r", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := Parse(tt.line, "test")
			got := prog.Len() == 0
			if got != tt.dropped {
				t.Errorf("Parse(%q) dropped = %v, want %v (commands: %+v)", tt.line, got, tt.dropped, prog.Commands)
			}
		})
	}
}

func TestParseMixedScript(t *testing.T) {
	source := `
// opening scene
FadeOut();
SetPlayerPos(31, 50);
@Loop:
Say("Welcome, traveler.");
If ($visits > 3) @Done;
Add($visits, 1);
Goto @Loop;
@Done:
FadeIn();
`
	prog := Parse(source, "begin.txt")

	wantNames := []string{"FadeOut", "SetPlayerPos", "Loop", "Say", "If", "Add", "Goto", "Done", "FadeIn"}
	if prog.Len() != len(wantNames) {
		t.Fatalf("Len = %d, want %d", prog.Len(), len(wantNames))
	}
	for i, want := range wantNames {
		if prog.Commands[i].Name != want {
			t.Errorf("Commands[%d].Name = %q, want %q", i, prog.Commands[i].Name, want)
		}
	}
	if prog.Commands[3].LineNumber != 6 {
		t.Errorf("Say LineNumber = %d, want 6", prog.Commands[3].LineNumber)
	}
}

func TestParseManyLabels(t *testing.T) {
	// Label tables stay consistent at scale.
	var b strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&b, "@L%d:\nAdd($n, 1);\n", i)
	}
	prog := Parse(b.String(), "test")

	for i := 0; i < 200; i++ {
		idx, ok := prog.LabelIndex(fmt.Sprintf("l%d", i))
		if !ok {
			t.Fatalf("label L%d missing", i)
		}
		if idx != i*2 {
			t.Errorf("LabelIndex(L%d) = %d, want %d", i, idx, i*2)
		}
	}
}
