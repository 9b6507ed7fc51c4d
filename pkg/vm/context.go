package vm

// GameContext is the capability interface the interpreter drives the game
// through. The interpreter knows nothing about rendering, pathfinding, or
// persistence internals; every game-affecting command goes through one of
// these methods. Blocking commands pair a kick-off method (returns
// immediately) with a completion predicate polled once per frame; predicates
// must be idempotent — polling alone never changes game state.
//
// A method targeting an entity that no longer exists is expected to behave
// as a no-op on the implementing side.
type GameContext interface {
	PlayerContext
	NpcContext
	ObjectContext
	DialogueContext
	ScreenContext
	AudioContext
	StateContext
}

// PlayerContext covers player position, movement, stats and inventory.
type PlayerContext interface {
	SetPlayerPos(x, y int)
	SetPlayerDir(dir int)
	SetPlayerState(state int)

	// PlayerGoto begins a walk to the tile. Completion is polled via
	// PlayerArrived and PlayerStanding.
	PlayerGoto(x, y int)
	// PlayerRunTo begins a run to the tile.
	PlayerRunTo(x, y int)
	// PlayerGotoDir begins a walk of steps tiles in the direction.
	PlayerGotoDir(dir, steps int)
	PlayerArrived(x, y int) bool
	PlayerStanding() bool

	AddGoods(name string, count int)
	DelGoods(name string, count int)
	AddRandGoods(listFile string)
	AddMoney(amount int)
	AddExp(amount int)
	AddLife(amount int)
	AddThew(amount int)
	AddMana(amount int)
	FullLife()

	EnableInput()
	DisableInput()
}

// NpcContext covers NPC lifecycle, movement and animation.
type NpcContext interface {
	AddNpc(file string, x, y, dir int)
	DelNpc(name string)
	SetNpcPos(name string, x, y int)
	SetNpcDir(name string, dir int)
	SetNpcState(name string, state int)
	SetNpcLevel(name string, level int)
	SetNpcActionFile(name string, state int, file string)
	SetNpcRelation(name string, relation int)

	NpcGoto(name string, x, y int)
	NpcGotoDir(name string, dir, steps int)
	NpcArrived(name string, x, y int) bool
	NpcStanding(name string) bool

	// NpcSpecialAction plays the NPC's special animation once. Completion
	// is polled via NpcActionDone.
	NpcSpecialAction(name string)
	NpcActionDone(name string) bool

	// Watch turns two characters to face each other.
	Watch(first, second string)
	EnableNpcAI()
	DisableNpcAI()
}

// ObjectContext covers the map object layer (chests, doors, traps).
type ObjectContext interface {
	LoadObj(file string)
	AddObj(file string, x, y, dir int)
	DelObj(name string)
	// DelCurObj removes the object whose interaction started this script.
	DelCurObj()
	// OpenBox and CloseBox animate container objects; an empty name means
	// the object that triggered the script.
	OpenBox(name string)
	CloseBox(name string)
	SetObjScript(name, scriptFile string)
}

// DialogueContext covers the dialogue and selection UI. Showing is
// non-blocking on this side; the executor suspends itself and the frame
// driver reports dismissal through OnDialogClosed/OnSelectionMade.
type DialogueContext interface {
	ShowDialog(text string, portrait int)
	ShowSelection(message string, options []string)
	ShowMessage(text string)
}

// ScreenContext covers fades, tinting and camera movement.
type ScreenContext interface {
	BeginFadeIn()
	BeginFadeOut()
	FadeInFinished() bool
	FadeOutFinished() bool

	MapTint(r, g, b int)
	SpriteTint(r, g, b int)

	// MoveScreen pans the camera by direction, distance and speed;
	// MoveScreenTo pans to an absolute tile. Completion is polled via
	// CameraDone.
	MoveScreen(dir, distance, speed int)
	MoveScreenTo(x, y, speed int)
	CameraDone() bool
}

// AudioContext covers music and sound effects.
type AudioContext interface {
	PlayMusic(file string)
	StopMusic()
	PlaySound(file string)
}

// StateContext covers map changes and persistence.
type StateContext interface {
	LoadMap(name string)
	LoadGame(slot int)
	ReturnToTitle()
}
