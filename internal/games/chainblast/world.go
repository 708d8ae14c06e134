package chainblast

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chainblast/internal/config"
	"github.com/vovakirdan/chainblast/internal/core"
)

// tuning holds config values converted to per-tick units.
type tuning struct {
	boardW, boardH float64

	playerSize, playerSpeed, playerSpin  float64
	lives                                int
	spawnTicks, deathTicks, respawnTicks int

	obstacleSize, obstacleSpin float64
	spawnChance                float64
	flockSizes                 []int
	minSpeed, maxSpeed         float64
	wiggle                     float64
	radialOffset               float64
	distanceOffset             float64

	explosionInitial, explosionMax, explosionMin, explosionGrowth float64

	powerupSize, powerupSpeed float64
	textTicks                 int

	powerupBase, powerupStep, chainFactor int
}

func newTuning(cfg config.ChainBlastConfig) tuning {
	return tuning{
		boardW: cfg.Board.Width,
		boardH: cfg.Board.Height,

		playerSize:   cfg.Player.Size,
		playerSpeed:  cfg.PerTick(cfg.Player.Speed),
		playerSpin:   cfg.PerTick(cfg.Player.Spin),
		lives:        cfg.Player.Lives,
		spawnTicks:   cfg.Ticks(cfg.Player.SpawnMS),
		deathTicks:   cfg.Ticks(cfg.Player.DeathDelayMS),
		respawnTicks: cfg.Ticks(cfg.Player.ExplodeRespawnMS),

		obstacleSize:   cfg.Obstacles.Size,
		obstacleSpin:   cfg.PerTick(cfg.Obstacles.Spin),
		spawnChance:    cfg.PerTick(cfg.Obstacles.SpawnRate),
		flockSizes:     append([]int(nil), cfg.Obstacles.FlockSizes...),
		minSpeed:       cfg.PerTick(cfg.Obstacles.MinSpeed),
		maxSpeed:       cfg.PerTick(cfg.Obstacles.MaxSpeed),
		wiggle:         cfg.Obstacles.Wiggle,
		radialOffset:   cfg.Obstacles.RadialOffset,
		distanceOffset: cfg.Obstacles.DistanceOffset * cfg.Obstacles.Size,

		explosionInitial: cfg.Explosion.InitialSize,
		explosionMax:     cfg.Explosion.MaxSize,
		explosionMin:     cfg.Explosion.MinSize,
		explosionGrowth:  cfg.PerTick(cfg.Explosion.Growth),

		powerupSize:  cfg.Powerup.Size,
		powerupSpeed: cfg.PerTick(cfg.Powerup.Speed),
		textTicks:    cfg.Ticks(cfg.Text.LifetimeMS),

		powerupBase: cfg.Scoring.PowerupBase,
		powerupStep: cfg.Scoring.PowerupStep,
		chainFactor: cfg.Scoring.ChainFactor,
	}
}

func (t *tuning) center() core.Vec {
	return core.Vec{X: t.boardW / 2, Y: t.boardH / 2}
}

// World is the context every entity update runs in. It is owned by the
// scheduler goroutine.
type World struct {
	entities *Registry
	ledger   *Ledger
	audio    core.Audio
	rng      *rand.Rand
	tune     tuning
	log      *log.Logger
	tick     int
}

func newWorld(cfg config.ChainBlastConfig, audio core.Audio, rng *rand.Rand, logger *log.Logger) *World {
	t := newTuning(cfg)
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if audio == nil {
		audio = core.NoAudio{}
	}
	return &World{
		entities: NewRegistry(),
		ledger:   NewLedger(t.powerupBase, t.powerupStep, t.chainFactor),
		audio:    audio,
		rng:      rng,
		tune:     t,
		log:      logger,
	}
}

// Add queues e for the next registry update.
func (w *World) Add(e Entity) {
	w.entities.Add(e)
}

// Ledger returns the score of the current game.
func (w *World) Ledger() *Ledger {
	return w.ledger
}

// Entities returns the entity registry.
func (w *World) Entities() *Registry {
	return w.entities
}
