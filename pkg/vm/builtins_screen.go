package vm

// registerScreenBuiltins registers fade, tint and camera commands. Fades and
// camera pans are blocking.
func (r *Registry) registerScreenBuiltins() {
	r.Register("FadeIn", func(_ []string, _ string, h *Helpers) bool {
		h.Ctx.BeginFadeIn()
		if h.Ctx.FadeInFinished() {
			return true
		}
		h.Exec.suspend(Suspension{Kind: SuspendFadeIn})
		return false
	})

	r.Register("FadeOut", func(_ []string, _ string, h *Helpers) bool {
		h.Ctx.BeginFadeOut()
		if h.Ctx.FadeOutFinished() {
			return true
		}
		h.Exec.suspend(Suspension{Kind: SuspendFadeOut})
		return false
	})

	r.Register("MapTint", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.MapTint(h.Num(args, 0), h.Num(args, 1), h.Num(args, 2))
		return true
	})

	r.Register("SpriteTint", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.SpriteTint(h.Num(args, 0), h.Num(args, 1), h.Num(args, 2))
		return true
	})

	r.Register("MoveScreen", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.MoveScreen(h.Num(args, 0), h.Num(args, 1), h.Num(args, 2))
		if h.Ctx.CameraDone() {
			return true
		}
		h.Exec.suspend(Suspension{Kind: SuspendCameraPan})
		return false
	})

	r.Register("MoveScreenEx", func(args []string, _ string, h *Helpers) bool {
		x, y := h.Num(args, 0), h.Num(args, 1)
		h.Ctx.MoveScreenTo(x, y, h.Num(args, 2))
		if h.Ctx.CameraDone() {
			return true
		}
		h.Exec.suspend(Suspension{Kind: SuspendCameraPan, X: x, Y: y})
		return false
	})
}
