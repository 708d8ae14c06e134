// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ChainBlastConfig contains all tunables of the game. Speeds are in board
// units per second, spins in radians per second and durations in
// milliseconds, so the game plays the same at any tick rate.
type ChainBlastConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Powerup    PowerupConfig    `yaml:"powerup"`
	Text       TextConfig       `yaml:"text"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playing field in board units.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig defines the frame scheduler.
type TimingConfig struct {
	FPS                   int `yaml:"fps"`
	MaxFrameSkips         int `yaml:"max_frame_skips"`
	MaxFramesWithoutYield int `yaml:"max_frames_without_yield"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Size             float64 `yaml:"size"`
	Speed            float64 `yaml:"speed"`
	Spin             float64 `yaml:"spin"`
	Lives            int     `yaml:"lives"`
	SpawnMS          int     `yaml:"spawn_ms"`
	DeathDelayMS     int     `yaml:"death_delay_ms"`
	ExplodeRespawnMS int     `yaml:"explode_respawn_ms"`
}

// ObstacleConfig defines flying blocks and the flock generator.
type ObstacleConfig struct {
	Size           float64 `yaml:"size"`
	Spin           float64 `yaml:"spin"`
	SpawnRate      float64 `yaml:"spawn_rate"` // expected flocks per second
	FlockSizes     []int   `yaml:"flock_sizes"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	Wiggle         float64 `yaml:"wiggle"`          // full heading jitter per axis, radians
	RadialOffset   float64 `yaml:"radial_offset"`   // angle between flock members, radians
	DistanceOffset float64 `yaml:"distance_offset"` // radial step between flock members, in sizes
}

// ExplosionConfig defines the growing/shrinking blast.
type ExplosionConfig struct {
	InitialSize float64 `yaml:"initial_size"`
	MaxSize     float64 `yaml:"max_size"`
	MinSize     float64 `yaml:"min_size"`
	Growth      float64 `yaml:"growth"`
}

// PowerupConfig defines collectable powerups.
type PowerupConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// TextConfig defines floating score text.
type TextConfig struct {
	LifetimeMS int `yaml:"lifetime_ms"`
}

// ScoringConfig defines the score ledger.
type ScoringConfig struct {
	PowerupBase int `yaml:"powerup_base"`
	PowerupStep int `yaml:"powerup_step"`
	ChainFactor int `yaml:"chain_factor"`
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	// ReleaseAfterMS is how long a movement key counts as held after its
	// last press or auto-repeat, since terminals do not report releases.
	ReleaseAfterMS int `yaml:"release_after_ms"`
}

// AudioConfig defines the synthesized audio backend.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to obstacle speed factor at max difficulty
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // Added to flock spawn chance factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is returned as is.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *ChainBlastConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 8
	case DifficultyHard:
		cfg.Player.Lives = 4
	}
}

// PerTick converts a per-second quantity into a per-tick one.
func (c ChainBlastConfig) PerTick(v float64) float64 {
	return v / float64(c.Timing.FPS)
}

// Ticks converts a duration in milliseconds into a whole number of ticks,
// rounded to the nearest tick.
func (c ChainBlastConfig) Ticks(ms int) int {
	return int(math.Round(float64(ms) * float64(c.Timing.FPS) / 1000))
}

// Validate reports the first setting that would break the simulation.
func (c ChainBlastConfig) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("config: board must have positive size, got %gx%g", c.Board.Width, c.Board.Height)
	case c.Timing.FPS <= 0:
		return fmt.Errorf("config: timing.fps must be positive, got %d", c.Timing.FPS)
	case c.Timing.MaxFrameSkips < 0:
		return errors.New("config: timing.max_frame_skips must not be negative")
	case c.Timing.MaxFramesWithoutYield <= 0:
		return errors.New("config: timing.max_frames_without_yield must be positive")
	case c.Player.Size <= 0 || c.Obstacles.Size <= 0 || c.Powerup.Size <= 0:
		return errors.New("config: player, obstacle and powerup sizes must be positive")
	case c.Player.Lives <= 0:
		return fmt.Errorf("config: player.lives must be positive, got %d", c.Player.Lives)
	case c.Player.SpawnMS < 0 || c.Player.DeathDelayMS < 0 || c.Player.ExplodeRespawnMS < 0:
		return errors.New("config: player timers must not be negative")
	case c.Obstacles.MinSpeed <= 0 || c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed:
		return fmt.Errorf("config: obstacle speed range [%g, %g] is invalid", c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed)
	case c.Obstacles.SpawnRate < 0:
		return errors.New("config: obstacles.spawn_rate must not be negative")
	case c.Explosion.MinSize <= 0 || c.Explosion.InitialSize <= c.Explosion.MinSize:
		return errors.New("config: explosion.initial_size must exceed explosion.min_size > 0")
	case c.Explosion.MaxSize < c.Explosion.InitialSize:
		return errors.New("config: explosion.max_size must be at least explosion.initial_size")
	case c.Explosion.Growth <= 0:
		return errors.New("config: explosion.growth must be positive")
	case c.Text.LifetimeMS <= 0:
		return errors.New("config: text.lifetime_ms must be positive")
	case c.Input.ReleaseAfterMS <= 0:
		return errors.New("config: input.release_after_ms must be positive")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return errors.New("config: audio.sample_rate must be positive")
	}

	if len(c.Obstacles.FlockSizes) == 0 {
		return errors.New("config: obstacles.flock_sizes must not be empty")
	}
	for _, n := range c.Obstacles.FlockSizes {
		// One special block in the middle and the same count on each wing.
		if n < 1 || n%2 == 0 {
			return fmt.Errorf("config: flock size %d must be a positive odd number", n)
		}
	}
	return nil
}
