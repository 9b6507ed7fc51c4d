package vm

import "fmt"

// FakeContext is a GameContext test double. Effect methods record themselves
// into Calls as "Name(arg,...)" strings; completion predicates read the
// corresponding public field so a test can flip game state between ticks.
// Predicate calls are deliberately not recorded, keeping them free of side
// effects observable through the fake.
type FakeContext struct {
	Calls []string

	// Predicate results, false (still busy) by default.
	PlayerArrivedAt  bool
	PlayerIsStanding bool
	NpcArrivedAt     bool
	NpcIsStanding    bool
	NpcActionIsDone  bool
	FadeInDone       bool
	FadeOutDone      bool
	CameraIsDone     bool

	// Dialogue capture.
	Dialogs    []string
	Portraits  []int
	Selections [][]string
	Messages   []string
}

var _ GameContext = (*FakeContext)(nil)

// NewFakeContext creates a FakeContext whose predicates all report busy.
func NewFakeContext() *FakeContext {
	return &FakeContext{}
}

// AllDone flips every completion predicate to finished. Convenient for tests
// that only care about one blocking family.
func (f *FakeContext) AllDone() *FakeContext {
	f.PlayerArrivedAt = true
	f.PlayerIsStanding = true
	f.NpcArrivedAt = true
	f.NpcIsStanding = true
	f.NpcActionIsDone = true
	f.FadeInDone = true
	f.FadeOutDone = true
	f.CameraIsDone = true
	return f
}

// CallCount returns how many effect calls were recorded under the name.
func (f *FakeContext) CallCount(name string) int {
	n := 0
	for _, c := range f.Calls {
		if len(c) >= len(name) && c[:len(name)] == name && (len(c) == len(name) || c[len(name)] == '(') {
			n++
		}
	}
	return n
}

func (f *FakeContext) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *FakeContext) SetPlayerPos(x, y int)   { f.record("SetPlayerPos(%d,%d)", x, y) }
func (f *FakeContext) SetPlayerDir(dir int)    { f.record("SetPlayerDir(%d)", dir) }
func (f *FakeContext) SetPlayerState(state int) { f.record("SetPlayerState(%d)", state) }

func (f *FakeContext) PlayerGoto(x, y int)        { f.record("PlayerGoto(%d,%d)", x, y) }
func (f *FakeContext) PlayerRunTo(x, y int)       { f.record("PlayerRunTo(%d,%d)", x, y) }
func (f *FakeContext) PlayerGotoDir(dir, n int)   { f.record("PlayerGotoDir(%d,%d)", dir, n) }
func (f *FakeContext) PlayerArrived(x, y int) bool { return f.PlayerArrivedAt }
func (f *FakeContext) PlayerStanding() bool        { return f.PlayerIsStanding }

func (f *FakeContext) AddGoods(name string, count int) { f.record("AddGoods(%s,%d)", name, count) }
func (f *FakeContext) DelGoods(name string, count int) { f.record("DelGoods(%s,%d)", name, count) }
func (f *FakeContext) AddRandGoods(listFile string)    { f.record("AddRandGoods(%s)", listFile) }
func (f *FakeContext) AddMoney(amount int)             { f.record("AddMoney(%d)", amount) }
func (f *FakeContext) AddExp(amount int)               { f.record("AddExp(%d)", amount) }
func (f *FakeContext) AddLife(amount int)              { f.record("AddLife(%d)", amount) }
func (f *FakeContext) AddThew(amount int)              { f.record("AddThew(%d)", amount) }
func (f *FakeContext) AddMana(amount int)              { f.record("AddMana(%d)", amount) }
func (f *FakeContext) FullLife()                       { f.record("FullLife") }
func (f *FakeContext) EnableInput()                    { f.record("EnableInput") }
func (f *FakeContext) DisableInput()                   { f.record("DisableInput") }

func (f *FakeContext) AddNpc(file string, x, y, dir int) { f.record("AddNpc(%s,%d,%d,%d)", file, x, y, dir) }
func (f *FakeContext) DelNpc(name string)                { f.record("DelNpc(%s)", name) }
func (f *FakeContext) SetNpcPos(name string, x, y int)   { f.record("SetNpcPos(%s,%d,%d)", name, x, y) }
func (f *FakeContext) SetNpcDir(name string, dir int)    { f.record("SetNpcDir(%s,%d)", name, dir) }
func (f *FakeContext) SetNpcState(name string, s int)    { f.record("SetNpcState(%s,%d)", name, s) }
func (f *FakeContext) SetNpcLevel(name string, l int)    { f.record("SetNpcLevel(%s,%d)", name, l) }
func (f *FakeContext) SetNpcActionFile(name string, state int, file string) {
	f.record("SetNpcActionFile(%s,%d,%s)", name, state, file)
}
func (f *FakeContext) SetNpcRelation(name string, r int) { f.record("SetNpcRelation(%s,%d)", name, r) }

func (f *FakeContext) NpcGoto(name string, x, y int)      { f.record("NpcGoto(%s,%d,%d)", name, x, y) }
func (f *FakeContext) NpcGotoDir(name string, dir, n int) { f.record("NpcGotoDir(%s,%d,%d)", name, dir, n) }
func (f *FakeContext) NpcArrived(name string, x, y int) bool { return f.NpcArrivedAt }
func (f *FakeContext) NpcStanding(name string) bool          { return f.NpcIsStanding }
func (f *FakeContext) NpcSpecialAction(name string)          { f.record("NpcSpecialAction(%s)", name) }
func (f *FakeContext) NpcActionDone(name string) bool        { return f.NpcActionIsDone }

func (f *FakeContext) Watch(first, second string) { f.record("Watch(%s,%s)", first, second) }
func (f *FakeContext) EnableNpcAI()               { f.record("EnableNpcAI") }
func (f *FakeContext) DisableNpcAI()              { f.record("DisableNpcAI") }

func (f *FakeContext) LoadObj(file string)              { f.record("LoadObj(%s)", file) }
func (f *FakeContext) AddObj(file string, x, y, d int)  { f.record("AddObj(%s,%d,%d,%d)", file, x, y, d) }
func (f *FakeContext) DelObj(name string)               { f.record("DelObj(%s)", name) }
func (f *FakeContext) DelCurObj()                       { f.record("DelCurObj") }
func (f *FakeContext) OpenBox(name string)              { f.record("OpenBox(%s)", name) }
func (f *FakeContext) CloseBox(name string)             { f.record("CloseBox(%s)", name) }
func (f *FakeContext) SetObjScript(name, script string) { f.record("SetObjScript(%s,%s)", name, script) }

func (f *FakeContext) ShowDialog(text string, portrait int) {
	f.record("ShowDialog(%s,%d)", text, portrait)
	f.Dialogs = append(f.Dialogs, text)
	f.Portraits = append(f.Portraits, portrait)
}

func (f *FakeContext) ShowSelection(message string, options []string) {
	f.record("ShowSelection(%s)", message)
	f.Selections = append(f.Selections, append([]string{message}, options...))
}

func (f *FakeContext) ShowMessage(text string) {
	f.record("ShowMessage(%s)", text)
	f.Messages = append(f.Messages, text)
}

func (f *FakeContext) BeginFadeIn()           { f.record("BeginFadeIn") }
func (f *FakeContext) BeginFadeOut()          { f.record("BeginFadeOut") }
func (f *FakeContext) FadeInFinished() bool   { return f.FadeInDone }
func (f *FakeContext) FadeOutFinished() bool  { return f.FadeOutDone }
func (f *FakeContext) MapTint(r, g, b int)    { f.record("MapTint(%d,%d,%d)", r, g, b) }
func (f *FakeContext) SpriteTint(r, g, b int) { f.record("SpriteTint(%d,%d,%d)", r, g, b) }
func (f *FakeContext) MoveScreen(dir, dist, speed int) {
	f.record("MoveScreen(%d,%d,%d)", dir, dist, speed)
}
func (f *FakeContext) MoveScreenTo(x, y, speed int) { f.record("MoveScreenTo(%d,%d,%d)", x, y, speed) }
func (f *FakeContext) CameraDone() bool             { return f.CameraIsDone }

func (f *FakeContext) PlayMusic(file string) { f.record("PlayMusic(%s)", file) }
func (f *FakeContext) StopMusic()            { f.record("StopMusic") }
func (f *FakeContext) PlaySound(file string) { f.record("PlaySound(%s)", file) }

func (f *FakeContext) LoadMap(name string) { f.record("LoadMap(%s)", name) }
func (f *FakeContext) LoadGame(slot int)   { f.record("LoadGame(%d)", slot) }
func (f *FakeContext) ReturnToTitle()      { f.record("ReturnToTitle") }
