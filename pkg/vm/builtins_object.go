package vm

// registerObjectBuiltins registers map object commands. All synchronous.
func (r *Registry) registerObjectBuiltins() {
	r.Register("LoadObj", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.LoadObj(h.Str(args, 0))
		return true
	})

	r.Register("AddObj", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.AddObj(h.Str(args, 0), h.Num(args, 1), h.Num(args, 2), h.Num(args, 3))
		return true
	})

	r.Register("DelObj", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.DelObj(h.Str(args, 0))
		return true
	})

	r.Register("DelCurObj", func(_ []string, _ string, h *Helpers) bool {
		h.Ctx.DelCurObj()
		return true
	})

	r.Register("OpenBox", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.OpenBox(h.Str(args, 0))
		return true
	})

	r.Register("CloseBox", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.CloseBox(h.Str(args, 0))
		return true
	})

	r.Register("SetObjScript", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.SetObjScript(h.Str(args, 0), h.Str(args, 1))
		return true
	})
}
