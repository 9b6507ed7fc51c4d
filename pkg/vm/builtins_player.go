package vm

// registerPlayerBuiltins registers player movement, stat and inventory
// commands. The three movement commands are blocking: they kick off the
// move, then suspend unless the context reports immediate completion.
func (r *Registry) registerPlayerBuiltins() {
	r.Register("SetPlayerPos", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.SetPlayerPos(h.Num(args, 0), h.Num(args, 1))
		return true
	})

	r.Register("SetPlayerDir", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.SetPlayerDir(h.Num(args, 0))
		return true
	})

	r.Register("SetPlayerState", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.SetPlayerState(h.Num(args, 0))
		return true
	})

	r.Register("PlayerGoto", func(args []string, _ string, h *Helpers) bool {
		x, y := h.Num(args, 0), h.Num(args, 1)
		h.Ctx.PlayerGoto(x, y)
		if h.Ctx.PlayerArrived(x, y) && h.Ctx.PlayerStanding() {
			return true
		}
		h.Exec.suspend(Suspension{Kind: SuspendPointWalk, X: x, Y: y})
		return false
	})

	r.Register("PlayerRunTo", func(args []string, _ string, h *Helpers) bool {
		x, y := h.Num(args, 0), h.Num(args, 1)
		h.Ctx.PlayerRunTo(x, y)
		if h.Ctx.PlayerArrived(x, y) && h.Ctx.PlayerStanding() {
			return true
		}
		h.Exec.suspend(Suspension{Kind: SuspendRun, X: x, Y: y})
		return false
	})

	r.Register("PlayerGotoDir", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.PlayerGotoDir(h.Num(args, 0), h.Num(args, 1))
		if h.Ctx.PlayerStanding() {
			return true
		}
		h.Exec.suspend(Suspension{Kind: SuspendDirWalk})
		return false
	})

	r.Register("AddGoods", func(args []string, _ string, h *Helpers) bool {
		count := 1
		if len(args) > 1 {
			count = h.Num(args, 1)
		}
		h.Ctx.AddGoods(h.Str(args, 0), count)
		return true
	})

	r.Register("DelGoods", func(args []string, _ string, h *Helpers) bool {
		count := 1
		if len(args) > 1 {
			count = h.Num(args, 1)
		}
		h.Ctx.DelGoods(h.Str(args, 0), count)
		return true
	})

	r.Register("AddRandGoods", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.AddRandGoods(h.Str(args, 0))
		return true
	})

	r.Register("AddMoney", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.AddMoney(h.Num(args, 0))
		return true
	})

	r.Register("AddExp", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.AddExp(h.Num(args, 0))
		return true
	})

	r.Register("AddLife", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.AddLife(h.Num(args, 0))
		return true
	})

	r.Register("AddThew", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.AddThew(h.Num(args, 0))
		return true
	})

	r.Register("AddMana", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.AddMana(h.Num(args, 0))
		return true
	})

	r.Register("FullLife", func(_ []string, _ string, h *Helpers) bool {
		h.Ctx.FullLife()
		return true
	})

	r.Register("EnableInput", func(_ []string, _ string, h *Helpers) bool {
		h.Ctx.EnableInput()
		return true
	})

	r.Register("DisableInput", func(_ []string, _ string, h *Helpers) bool {
		h.Ctx.DisableInput()
		return true
	})
}
