package vm

// registerStateBuiltins registers map-change and persistence commands.
// LoadGame and ReturnToTitle hard-stop the current script: whatever state
// comes next must not have a half-run cutscene underneath it.
func (r *Registry) registerStateBuiltins() {
	r.Register("LoadMap", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.LoadMap(h.Str(args, 0))
		return true
	})

	r.Register("LoadGame", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.LoadGame(h.Num(args, 0))
		h.Exec.Stop()
		return false
	})

	r.Register("ReturnToTitle", func(_ []string, _ string, h *Helpers) bool {
		h.Exec.clearProgramCache()
		h.Ctx.ReturnToTitle()
		h.Exec.Stop()
		return false
	})
}
