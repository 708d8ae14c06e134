package chainblast

import (
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chainblast/internal/config"
	"github.com/vovakirdan/chainblast/internal/core"
	"github.com/vovakirdan/chainblast/internal/registry"
)

const (
	// GameID is the registry id of the classic game.
	GameID = "chainblast"
	// RushID is the registry id of the rush variant.
	RushID = "chainblast_rush"

	// rushInitialLevel is the lowest difficulty rush starts at.
	rushInitialLevel = 0.5

	phaseNone core.Phase = -1
)

type command int

const (
	cmdStart command = iota
)

// Game is the top-level state machine: menu, playing and end of game.
// Update and Render must be called from a single goroutine. HandleKey is safe
// to call from any goroutine.
type Game struct {
	id    string
	title string
	rush  bool

	deps registry.Deps
	base config.ChainBlastConfig
	cfg  config.ChainBlastConfig

	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	world      *World
	player     *Player
	gen        *Generator
	phase      core.Phase
	final      LedgerStats
	quitting   bool

	bindings   atomic.Pointer[bindingSet]
	up         atomic.Bool
	down       atomic.Bool
	left       atomic.Bool
	right      atomic.Bool
	explodeReq atomic.Bool
	quitReq    atomic.Bool
	cmds       chan command

	state atomic.Pointer[core.GameState]
}

// New creates the classic game.
func New(deps registry.Deps) *Game {
	g := newGame(GameID, "Chain Blast", deps)
	g.Reset(core.DefaultConfig())
	return g
}

// NewRush creates the rush variant: difficulty climbs with the score from
// the first flock.
func NewRush(deps registry.Deps) *Game {
	g := newGame(RushID, "Chain Blast Rush", deps)
	g.rush = true
	p := &g.base.Difficulty.Progression
	p.Type = "score"
	if p.MaxAt <= 0 {
		p.MaxAt = 20000
	}
	g.Reset(core.DefaultConfig())
	return g
}

func newGame(id, title string, deps registry.Deps) *Game {
	if deps.Config == nil {
		cfg := config.DefaultChainBlastConfig()
		deps.Config = &cfg
	}
	if deps.Audio == nil {
		deps.Audio = core.NoAudio{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	return &Game{
		id:    id,
		title: title,
		deps:  deps,
		base:  *deps.Config,
		cmds:  make(chan command, 8),
	}
}

func init() {
	registry.Register(GameID, func(d registry.Deps) registry.Game {
		return New(d)
	})
	registry.Register(RushID, func(d registry.Deps) registry.Game {
		return NewRush(d)
	})
}

func (g *Game) ID() string { return g.id }

func (g *Game) Title() string { return g.title }

// Reset drops the current game and returns to the menu. A zero seed uses
// the wall clock.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.cfg = g.base
	if rc.TickRate > 0 {
		g.cfg.Timing.FPS = rc.TickRate
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	if g.rush {
		g.difficulty.SetEnabled(true)
		g.difficulty.SetInitialLevel(max(g.cfg.Difficulty.InitialLevel, rushInitialLevel))
	}
	g.world = newWorld(g.cfg, g.deps.Audio, rand.New(rand.NewSource(seed)), g.deps.Logger) //#nosec G404 -- game randomness
	g.gen = NewGenerator(g.difficulty)
	g.player = nil
	g.final = LedgerStats{}
	g.quitting = false

	g.releaseAll()
	g.explodeReq.Store(false)
	g.quitReq.Store(false)
	for len(g.cmds) > 0 {
		<-g.cmds
	}

	g.phase = phaseNone
	g.bindings.Store(nil)
	g.setPhase(core.PhaseMenu)
	g.publish()
}

// Update runs one tick.
func (g *Game) Update() {
	g.drain()

	if g.quitReq.Load() && !g.quitting {
		g.quitting = true
		g.deps.Logger.Debug("quit requested", "game", g.id, "phase", g.phase)
		if g.deps.OnQuit != nil {
			g.deps.OnQuit()
		}
	}

	if g.phase == core.PhasePlaying {
		g.updatePlaying()
	}
	g.publish()
}

func (g *Game) drain() {
	for {
		select {
		case c := <-g.cmds:
			g.apply(c)
		default:
			return
		}
	}
}

func (g *Game) apply(c command) {
	switch c {
	case cmdStart:
		if g.phase == core.PhaseMenu || g.phase == core.PhaseEndOfGame {
			g.setPhase(core.PhasePlaying)
		}
	}
}

// post queues c for the next Update. Commands beyond the buffer are dropped.
func (g *Game) post(c command) {
	select {
	case g.cmds <- c:
	default:
	}
}

func (g *Game) updatePlaying() {
	w := g.world
	g.player.Steer(g.up.Load(), g.down.Load(), g.left.Load(), g.right.Load())
	if g.explodeReq.Swap(false) {
		g.player.Explode(w)
	}

	g.gen.Update(w)
	g.player.Update(w)
	w.entities.Update(w)
	w.tick++

	if g.player.Over() {
		g.gameOver()
	}
}

// startGame creates a fresh player and ledger on an empty board.
func (g *Game) startGame() {
	w := g.world
	w.entities.Reset()
	w.ledger = NewLedger(w.tune.powerupBase, w.tune.powerupStep, w.tune.chainFactor)
	w.tick = 0
	g.player = NewPlayer(w)
	g.final = LedgerStats{}
}

func (g *Game) gameOver() {
	g.deps.Audio.StopMusic()
	g.setPhase(core.PhaseEndOfGame)
}

// setPhase uninstalls the current phase and installs next.
func (g *Game) setPhase(next core.Phase) {
	if next == g.phase {
		panic(fmt.Sprintf("chainblast: phase %s set twice", next))
	}
	g.deps.Logger.Debug("phase change", "game", g.id, "from", g.phase, "to", next)

	g.bindings.Store(nil)
	g.phase = next

	switch next {
	case core.PhaseMenu:
		g.bindings.Store(&menuBindings)
	case core.PhasePlaying:
		g.startGame()
		g.releaseAll()
		g.explodeReq.Store(false)
		g.bindings.Store(&playingBindings)
		g.deps.Audio.PlayMusic(core.MusicGame)
	case core.PhaseEndOfGame:
		g.final = g.world.ledger.Stats()
		g.deps.Logger.Debug("game over",
			"game", g.id,
			"score", g.final.Total,
			"max_chain", g.final.MaxChain,
			"destroyed", g.final.Destroyed,
			"powerups", g.final.Powerups,
			"ticks", g.world.tick,
		)
		g.bindings.Store(&endBindings)
		g.publish()
		if g.deps.OnGameOver != nil {
			g.deps.OnGameOver(g.State())
		}
	default:
		panic(fmt.Sprintf("chainblast: unknown phase %d", next))
	}
}

func (g *Game) releaseAll() {
	g.up.Store(false)
	g.down.Store(false)
	g.left.Store(false)
	g.right.Store(false)
}

// HandleKey routes ev through the bindings of the current phase.
func (g *Game) HandleKey(ev core.KeyEvent) {
	set := g.bindings.Load()
	if set == nil {
		return
	}
	set.handle(g, ev)
}

func (g *Game) publish() {
	gs := core.GameState{
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseEndOfGame,
		Quit:     g.quitting,
	}
	if g.player != nil {
		gs.Score = g.world.ledger.Total()
		gs.MaxChain = g.world.ledger.MaxChain()
		gs.Lives = g.player.Lives()
	}
	g.state.Store(&gs)
}

// State returns the state published by the last Update.
func (g *Game) State() core.GameState {
	if gs := g.state.Load(); gs != nil {
		return *gs
	}
	return core.GameState{}
}

// Stats returns the summary of the last finished game.
func (g *Game) Stats() LedgerStats { return g.final }

// Phase returns the current top-level phase.
func (g *Game) Phase() core.Phase { return g.phase }

// World returns the simulation context. It is only valid on the update
// goroutine.
func (g *Game) World() *World { return g.world }

// Player returns the current player, or nil before the first game.
func (g *Game) Player() *Player { return g.player }

// Config returns the effective configuration.
func (g *Game) Config() config.ChainBlastConfig { return g.cfg }

// Render draws the current phase into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case core.PhaseMenu:
		g.renderMenu(dst)
	case core.PhasePlaying:
		g.renderBoard(dst)
		g.renderHUD(dst)
	case core.PhaseEndOfGame:
		g.renderBoard(dst)
		g.renderEnd(dst)
	}
}

func (g *Game) renderBoard(dst *core.Screen) {
	c := NewCanvas(dst, g.world.tune.boardW, g.world.tune.boardH)
	g.world.entities.DrawAll(c)
	if g.player != nil {
		g.player.Draw(c)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	score := fmt.Sprintf("Score: %d", g.world.ledger.Total())
	dst.DrawTextColor(dst.Width()-len(score)-1, 0, score, core.ColorBrightWhite)

	lives := fmt.Sprintf("Lives: %d", g.player.Lives())
	dst.DrawTextColor(dst.Width()-len(lives)-1, dst.Height()-1, lives, core.ColorBrightWhite)

	if g.rush {
		level := fmt.Sprintf("Level: %.0f%%", 100*g.difficulty.Level(g.world.ledger.Total(), g.world.tick))
		dst.DrawTextColor(1, dst.Height()-1, level, core.ColorYellow)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-5, g.title, core.ColorBrightYellow)
	dst.DrawTextCentered(mid-3, "Dodge the flocks. Blow yourself up to take them with you.", core.ColorWhite)
	dst.DrawTextCentered(mid-2, "Every block caught in a blast explodes too: chain them!", core.ColorWhite)
	dst.DrawTextCentered(mid, "Arrows/WASD: move   Space: explode", core.ColorCyan)
	dst.DrawTextCentered(mid+1, "Green blocks drop powerups", core.ColorBrightGreen)
	dst.DrawTextCentered(mid+3, "Press any key to start", core.ColorBrightWhite)
	dst.DrawTextCentered(mid+4, "Esc to quit", core.ColorGray)
}

const endPrompt = "Press any key to play again"

func (g *Game) renderEnd(dst *core.Screen) {
	mid := dst.Height() / 2
	stats := fmt.Sprintf("Destroyed: %d   Powerups: %d", g.final.Destroyed, g.final.Powerups)

	// Panel over the frozen board, clipped to the screen.
	w := core.Clamp(max(len(stats), len(endPrompt))+6, 0, dst.Width())
	h := core.Clamp(9, 0, dst.Height())
	panel := core.NewRect((dst.Width()-w)/2, mid-4, w, h)
	dst.Fill(panel, core.Cell{Rune: ' '})
	dst.DrawBox(panel, core.ColorGray)

	dst.DrawTextCentered(mid-3, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(mid-1, fmt.Sprintf("Score: %d", g.final.Total), core.ColorBrightWhite)
	dst.DrawTextCentered(mid, fmt.Sprintf("Max Chain: %d", g.final.MaxChain), core.ColorBrightWhite)
	dst.DrawTextCentered(mid+1, stats, core.ColorWhite)
	dst.DrawTextCentered(mid+3, endPrompt, core.ColorBrightYellow)
}
