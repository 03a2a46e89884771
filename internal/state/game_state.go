// internal/state/game_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/ui"
	"grid-tower-defense/pkg/render"
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *game.Game
	renderer      *render.GridRenderer
	worldView     *ui.WorldView
	statusBar     *ui.StatusBar
	shopPanel     *ui.ShopPanel
	banner        *ui.GameOverBanner
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, gameLogic *game.Game) *GameState {
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		WallColor:       config.WallColor,
		SlotColor:       config.SlotColor,
		SlotActiveColor: config.SlotActiveColor,
		WaypointColor:   config.WaypointColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     2,
	}

	snapshot := gameLogic.Snapshot()
	renderer := render.NewGridRenderer(snapshot.Cells, snapshot.Path, snapshot.Width, snapshot.Height,
		snapshot.BlockSize, 0, config.MapOffsetY, mapColors)

	gs := &GameState{
		sm:            sm,
		game:          gameLogic,
		renderer:      renderer,
		worldView:     ui.NewWorldView(0, config.MapOffsetY),
		statusBar:     ui.NewStatusBar(8, 16),
		shopPanel:     ui.NewShopPanel(config.PanelX, config.MapOffsetY, config.PanelWidth, config.ScreenHeight-config.MapOffsetY),
		banner:        ui.NewGameOverBanner(config.ScreenWidth),
		lastClickTime: time.Now(),
	}

	gameLogic.Subscribe(event.MatchRestarted, event.ListenerFunc(func(event.Event) {
		gs.banner.Hide()
	}))
	return gs
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.handleKeys()

	g.game.Update(deltaTime)

	snapshot := g.game.Snapshot()
	g.shopPanel.Update(snapshot)
	if snapshot.Phase == component.PhaseOver {
		g.banner.Show(snapshot.Message)
	}
	g.banner.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(g.lastClickTime) < config.ClickCooldown {
			return
		}
		x, y := ebiten.CursorPosition()
		if g.shopPanel.Contains(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleGameClick(x, y)
		}
		g.lastClickTime = time.Now()
	}

	// Правый клик отменяет покупку
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.CancelPlacement()
	}
}

func (g *GameState) handleKeys() {
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	for i, key := range keys {
		if i < len(defs.TowerKinds) && inpututil.IsKeyJustPressed(key) {
			g.game.SelectTower(defs.TowerKinds[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.CancelPlacement()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Restart()
	}
}

// handleUIClick обрабатывает клики, которые точно попали в панель
func (g *GameState) handleUIClick(x, y int) {
	action := g.shopPanel.Click(x, y)
	switch action.Type {
	case ui.ShopBuy:
		g.game.SelectTower(action.Tower)
	case ui.ShopCancel:
		g.game.CancelPlacement()
	case ui.ShopRestart:
		g.game.Restart()
	}
}

func (g *GameState) handleGameClick(x, y int) {
	if g.game.Match.Phase != component.PhasePlacing {
		return
	}
	mx, my := g.renderer.ScreenToMap(x, y)
	g.game.PlacePending(mx, my)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snapshot := g.game.Snapshot()
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, snapshot.Cells, snapshot.Phase == component.PhasePlacing)
	g.worldView.Draw(screen, snapshot)
	g.shopPanel.Draw(screen)
	g.statusBar.Draw(screen, snapshot)
	g.banner.Draw(screen)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
