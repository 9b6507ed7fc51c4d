package engine

import (
	"log/slog"
	"time"

	"github.com/wqhan/jxscript/pkg/logger"
	"github.com/wqhan/jxscript/pkg/vm"
)

// DemoContext is the runner's GameContext: it logs every capability call
// instead of simulating a world, which makes a headless script run a
// readable trace of what the script would do in the real engine. Blocking
// effects complete after BlockDuration of wall-clock time so suspensions
// resolve on their own; music goes through the MIDI backend when one is
// attached.
type DemoContext struct {
	log   *slog.Logger
	music *MusicPlayer

	// BlockDuration is how long each blocking effect takes.
	BlockDuration time.Duration

	playerMoveStart time.Time
	npcMoveStart    time.Time
	actionStart     time.Time
	fadeInStart     time.Time
	fadeOutStart    time.Time
	cameraStart     time.Time
}

var _ vm.GameContext = (*DemoContext)(nil)

// NewDemoContext creates a logging context. music may be nil, in which case
// audio commands only log.
func NewDemoContext(music *MusicPlayer) *DemoContext {
	return &DemoContext{
		log:           logger.GetLogger(),
		music:         music,
		BlockDuration: 200 * time.Millisecond,
	}
}

// done is the shared completion predicate: a kicked-off effect finishes
// BlockDuration after its start. Reading the clock keeps polling free of
// side effects.
func (c *DemoContext) done(start time.Time) bool {
	return !start.IsZero() && time.Since(start) >= c.BlockDuration
}

func (c *DemoContext) SetPlayerPos(x, y int)    { c.log.Info("player pos", "x", x, "y", y) }
func (c *DemoContext) SetPlayerDir(dir int)     { c.log.Info("player dir", "dir", dir) }
func (c *DemoContext) SetPlayerState(state int) { c.log.Info("player state", "state", state) }

func (c *DemoContext) PlayerGoto(x, y int) {
	c.log.Info("player walks", "x", x, "y", y)
	c.playerMoveStart = time.Now()
}

func (c *DemoContext) PlayerRunTo(x, y int) {
	c.log.Info("player runs", "x", x, "y", y)
	c.playerMoveStart = time.Now()
}

func (c *DemoContext) PlayerGotoDir(dir, steps int) {
	c.log.Info("player walks by direction", "dir", dir, "steps", steps)
	c.playerMoveStart = time.Now()
}

func (c *DemoContext) PlayerArrived(x, y int) bool { return c.done(c.playerMoveStart) }
func (c *DemoContext) PlayerStanding() bool        { return c.done(c.playerMoveStart) }

func (c *DemoContext) AddGoods(name string, count int) { c.log.Info("goods added", "item", name, "count", count) }
func (c *DemoContext) DelGoods(name string, count int) { c.log.Info("goods removed", "item", name, "count", count) }
func (c *DemoContext) AddRandGoods(listFile string)    { c.log.Info("random goods", "list", listFile) }
func (c *DemoContext) AddMoney(amount int)             { c.log.Info("money added", "amount", amount) }
func (c *DemoContext) AddExp(amount int)               { c.log.Info("exp added", "amount", amount) }
func (c *DemoContext) AddLife(amount int)              { c.log.Info("life added", "amount", amount) }
func (c *DemoContext) AddThew(amount int)              { c.log.Info("thew added", "amount", amount) }
func (c *DemoContext) AddMana(amount int)              { c.log.Info("mana added", "amount", amount) }
func (c *DemoContext) FullLife()                       { c.log.Info("life restored") }
func (c *DemoContext) EnableInput()                    { c.log.Info("input enabled") }
func (c *DemoContext) DisableInput()                   { c.log.Info("input disabled") }

func (c *DemoContext) AddNpc(file string, x, y, dir int) {
	c.log.Info("npc added", "file", file, "x", x, "y", y, "dir", dir)
}
func (c *DemoContext) DelNpc(name string)              { c.log.Info("npc removed", "npc", name) }
func (c *DemoContext) SetNpcPos(name string, x, y int) { c.log.Info("npc pos", "npc", name, "x", x, "y", y) }
func (c *DemoContext) SetNpcDir(name string, dir int)  { c.log.Info("npc dir", "npc", name, "dir", dir) }
func (c *DemoContext) SetNpcState(name string, s int)  { c.log.Info("npc state", "npc", name, "state", s) }
func (c *DemoContext) SetNpcLevel(name string, l int)  { c.log.Info("npc level", "npc", name, "level", l) }
func (c *DemoContext) SetNpcActionFile(name string, state int, file string) {
	c.log.Info("npc action file", "npc", name, "state", state, "file", file)
}
func (c *DemoContext) SetNpcRelation(name string, r int) {
	c.log.Info("npc relation", "npc", name, "relation", r)
}

func (c *DemoContext) NpcGoto(name string, x, y int) {
	c.log.Info("npc walks", "npc", name, "x", x, "y", y)
	c.npcMoveStart = time.Now()
}

func (c *DemoContext) NpcGotoDir(name string, dir, steps int) {
	c.log.Info("npc walks by direction", "npc", name, "dir", dir, "steps", steps)
	c.npcMoveStart = time.Now()
}

func (c *DemoContext) NpcArrived(name string, x, y int) bool { return c.done(c.npcMoveStart) }
func (c *DemoContext) NpcStanding(name string) bool          { return c.done(c.npcMoveStart) }

func (c *DemoContext) NpcSpecialAction(name string) {
	c.log.Info("npc special action", "npc", name)
	c.actionStart = time.Now()
}
func (c *DemoContext) NpcActionDone(name string) bool { return c.done(c.actionStart) }

func (c *DemoContext) Watch(first, second string) { c.log.Info("watch", "first", first, "second", second) }
func (c *DemoContext) EnableNpcAI()               { c.log.Info("npc ai enabled") }
func (c *DemoContext) DisableNpcAI()              { c.log.Info("npc ai disabled") }

func (c *DemoContext) LoadObj(file string) { c.log.Info("object layer loaded", "file", file) }
func (c *DemoContext) AddObj(file string, x, y, dir int) {
	c.log.Info("object added", "file", file, "x", x, "y", y, "dir", dir)
}
func (c *DemoContext) DelObj(name string)               { c.log.Info("object removed", "object", name) }
func (c *DemoContext) DelCurObj()                       { c.log.Info("current object removed") }
func (c *DemoContext) OpenBox(name string)              { c.log.Info("box opened", "object", name) }
func (c *DemoContext) CloseBox(name string)             { c.log.Info("box closed", "object", name) }
func (c *DemoContext) SetObjScript(name, script string) {
	c.log.Info("object script bound", "object", name, "script", script)
}

func (c *DemoContext) ShowDialog(text string, portrait int) {
	c.log.Info("dialog", "portrait", portrait, "text", text)
}
func (c *DemoContext) ShowSelection(message string, options []string) {
	c.log.Info("selection", "message", message, "options", options)
}
func (c *DemoContext) ShowMessage(text string) { c.log.Info("message", "text", text) }

func (c *DemoContext) BeginFadeIn() {
	c.log.Info("fade in")
	c.fadeInStart = time.Now()
}
func (c *DemoContext) BeginFadeOut() {
	c.log.Info("fade out")
	c.fadeOutStart = time.Now()
}
func (c *DemoContext) FadeInFinished() bool  { return c.done(c.fadeInStart) }
func (c *DemoContext) FadeOutFinished() bool { return c.done(c.fadeOutStart) }

func (c *DemoContext) MapTint(r, g, b int)    { c.log.Info("map tint", "r", r, "g", g, "b", b) }
func (c *DemoContext) SpriteTint(r, g, b int) { c.log.Info("sprite tint", "r", r, "g", g, "b", b) }

func (c *DemoContext) MoveScreen(dir, dist, speed int) {
	c.log.Info("camera pan", "dir", dir, "distance", dist, "speed", speed)
	c.cameraStart = time.Now()
}
func (c *DemoContext) MoveScreenTo(x, y, speed int) {
	c.log.Info("camera pan to", "x", x, "y", y, "speed", speed)
	c.cameraStart = time.Now()
}
func (c *DemoContext) CameraDone() bool { return c.done(c.cameraStart) }

func (c *DemoContext) PlayMusic(file string) {
	if c.music == nil {
		c.log.Info("music (no backend)", "file", file)
		return
	}
	if err := c.music.Play(file, true); err != nil {
		c.log.Error("music failed", "file", file, "error", err)
	}
}

func (c *DemoContext) StopMusic() {
	if c.music == nil {
		c.log.Info("music stopped (no backend)")
		return
	}
	c.music.Stop()
}

func (c *DemoContext) PlaySound(file string) { c.log.Info("sound", "file", file) }

func (c *DemoContext) LoadMap(name string) { c.log.Info("map loaded", "map", name) }
func (c *DemoContext) LoadGame(slot int)   { c.log.Info("save loaded", "slot", slot) }
func (c *DemoContext) ReturnToTitle()      { c.log.Info("returned to title") }
