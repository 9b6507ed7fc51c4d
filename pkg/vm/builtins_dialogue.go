package vm

import "strings"

// registerDialogueBuiltins registers the dialogue and selection commands.
// All of them raise the input flag; the frame driver resumes the executor
// through OnDialogClosed or OnSelectionMade.
func (r *Registry) registerDialogueBuiltins() {
	// Say(text, portrait): one line with a portrait index.
	r.Register("Say", func(args []string, _ string, h *Helpers) bool {
		h.Exec.beginDialog([]dialogLine{{
			text:     h.Str(args, 0),
			portrait: h.Num(args, 1),
		}})
		return true
	})

	// Talk(line, line, ...): a multi-line conversation; each dismissal shows
	// the next line.
	r.Register("Talk", func(args []string, _ string, h *Helpers) bool {
		lines := make([]dialogLine, 0, len(args))
		for i := range args {
			lines = append(lines, dialogLine{text: h.Str(args, i)})
		}
		h.Exec.beginDialog(lines)
		return true
	})

	// Select(message, optionA, optionB [, $var]) — binary choice.
	// Choose(message, option, ... [, $var]) — multi-option choice.
	// A trailing $var argument binds where the chosen index is stored.
	selection := func(args []string, _ string, h *Helpers) bool {
		resultVar := ""
		if n := len(args); n > 0 && strings.HasPrefix(args[n-1], "$") {
			resultVar = args[n-1]
			args = args[:n-1]
		}
		if len(args) == 0 {
			return true
		}
		options := make([]string, 0, len(args)-1)
		for i := 1; i < len(args); i++ {
			options = append(options, h.Str(args, i))
		}
		h.Exec.beginSelection(h.Str(args, 0), options, resultVar)
		return true
	}
	r.Register("Select", selection)
	r.Register("Choose", selection)

	// ShowMessage: a passive notification, no input wait.
	r.Register("ShowMessage", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.ShowMessage(h.Str(args, 0))
		return true
	})
}
