package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// selectionKeys map the digit row to selection indices 0-8.
var selectionKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Game adapts a Manager to the ebiten game loop: one UpdateAll per tick,
// with mouse and keyboard input forwarded as dialogue/selection completion
// events. Rendering is the host's concern; Draw is left empty so a host can
// embed Game and layer its own scene on top.
type Game struct {
	manager       *Manager
	width, height int
}

// NewGame wraps the manager for ebiten.RunGame.
func NewGame(m *Manager, width, height int) *Game {
	return &Game{manager: m, width: width, height: height}
}

func (g *Game) Update() error {
	g.forwardInput()
	g.manager.UpdateAll(1000.0 / float64(ebiten.TPS()))
	return nil
}

// forwardInput turns raw input into the executor's completion events. A
// selection wants a digit key; a dialogue is dismissed by click, Enter or
// Space.
func (g *Game) forwardInput() {
	fg := g.manager.Foreground()
	if !fg.WaitingInput() {
		return
	}

	if fg.SelectionPending() {
		for i, key := range selectionKeys {
			if inpututil.IsKeyJustPressed(key) {
				fg.OnSelectionMade(i)
				return
			}
		}
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		fg.OnDialogClosed()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
