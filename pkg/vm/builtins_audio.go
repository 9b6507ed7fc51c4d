package vm

// registerAudioBuiltins registers music and sound commands.
func (r *Registry) registerAudioBuiltins() {
	r.Register("PlayMusic", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.PlayMusic(h.Str(args, 0))
		return true
	})

	r.Register("StopMusic", func(_ []string, _ string, h *Helpers) bool {
		h.Ctx.StopMusic()
		return true
	})

	r.Register("PlaySound", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.PlaySound(h.Str(args, 0))
		return true
	})
}
