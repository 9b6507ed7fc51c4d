package vm

// registerNpcBuiltins registers NPC lifecycle, movement and animation
// commands. NpcGoto, NpcGotoDir and NpcSpecialAction are blocking; the
// suspension record carries the NPC name so the completion predicate polls
// the right actor.
func (r *Registry) registerNpcBuiltins() {
	r.Register("AddNpc", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.AddNpc(h.Str(args, 0), h.Num(args, 1), h.Num(args, 2), h.Num(args, 3))
		return true
	})

	r.Register("DelNpc", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.DelNpc(h.Str(args, 0))
		return true
	})

	r.Register("SetNpcPos", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.SetNpcPos(h.Str(args, 0), h.Num(args, 1), h.Num(args, 2))
		return true
	})

	r.Register("SetNpcDir", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.SetNpcDir(h.Str(args, 0), h.Num(args, 1))
		return true
	})

	r.Register("SetNpcState", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.SetNpcState(h.Str(args, 0), h.Num(args, 1))
		return true
	})

	r.Register("SetNpcLevel", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.SetNpcLevel(h.Str(args, 0), h.Num(args, 1))
		return true
	})

	r.Register("SetNpcActionFile", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.SetNpcActionFile(h.Str(args, 0), h.Num(args, 1), h.Str(args, 2))
		return true
	})

	r.Register("SetNpcRelation", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.SetNpcRelation(h.Str(args, 0), h.Num(args, 1))
		return true
	})

	r.Register("NpcGoto", func(args []string, _ string, h *Helpers) bool {
		name := h.Str(args, 0)
		x, y := h.Num(args, 1), h.Num(args, 2)
		h.Ctx.NpcGoto(name, x, y)
		if h.Ctx.NpcArrived(name, x, y) && h.Ctx.NpcStanding(name) {
			return true
		}
		h.Exec.suspend(Suspension{Kind: SuspendPointWalk, Actor: name, X: x, Y: y})
		return false
	})

	r.Register("NpcGotoDir", func(args []string, _ string, h *Helpers) bool {
		name := h.Str(args, 0)
		h.Ctx.NpcGotoDir(name, h.Num(args, 1), h.Num(args, 2))
		if h.Ctx.NpcStanding(name) {
			return true
		}
		h.Exec.suspend(Suspension{Kind: SuspendDirWalk, Actor: name})
		return false
	})

	r.Register("NpcSpecialAction", func(args []string, _ string, h *Helpers) bool {
		name := h.Str(args, 0)
		h.Ctx.NpcSpecialAction(name)
		if h.Ctx.NpcActionDone(name) {
			return true
		}
		h.Exec.suspend(Suspension{Kind: SuspendSpecialAction, Actor: name})
		return false
	})

	r.Register("Watch", func(args []string, _ string, h *Helpers) bool {
		h.Ctx.Watch(h.Str(args, 0), h.Str(args, 1))
		return true
	})

	r.Register("EnableNpcAI", func(_ []string, _ string, h *Helpers) bool {
		h.Ctx.EnableNpcAI()
		return true
	})

	r.Register("DisableNpcAI", func(_ []string, _ string, h *Helpers) bool {
		h.Ctx.DisableNpcAI()
		return true
	})
}
