package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/chainblast.yaml
var defaultChainBlastYAML []byte

// DefaultChainBlastConfig returns the built-in configuration. It mirrors
// defaults/chainblast.yaml and is used when the embedded file cannot be parsed.
func DefaultChainBlastConfig() ChainBlastConfig {
	return ChainBlastConfig{
		Board: BoardConfig{
			Width:  640,
			Height: 480,
		},
		Timing: TimingConfig{
			FPS:                   60,
			MaxFrameSkips:         5,
			MaxFramesWithoutYield: 16,
		},
		Player: PlayerConfig{
			Size:             20,
			Speed:            80,
			Spin:             0.5 * math.Pi,
			Lives:            6,
			SpawnMS:          1000,
			DeathDelayMS:     1500,
			ExplodeRespawnMS: 500,
		},
		Obstacles: ObstacleConfig{
			Size:           20,
			Spin:           0.25 * math.Pi,
			SpawnRate:      1,
			FlockSizes:     []int{3, 5, 7},
			MinSpeed:       80,
			MaxSpeed:       120,
			Wiggle:         math.Pi / 4,
			RadialOffset:   math.Pi / 40,
			DistanceOffset: 0.8,
		},
		Explosion: ExplosionConfig{
			InitialSize: 20,
			MaxSize:     125,
			MinSize:     0.0001,
			Growth:      250,
		},
		Powerup: PowerupConfig{
			Size:  20,
			Speed: 40,
		},
		Text: TextConfig{
			LifetimeMS: 2000,
		},
		Scoring: ScoringConfig{
			PowerupBase: 200,
			PowerupStep: 200,
			ChainFactor: 1,
		},
		Input: InputConfig{
			ReleaseAfterMS: 600,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultChainBlastYAML
}
