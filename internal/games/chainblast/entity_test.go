package chainblast

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/chainblast/internal/config"
	"github.com/vovakirdan/chainblast/internal/core"
)

// recordAudio remembers every call made to it.
type recordAudio struct {
	sounds []string
	music  []string
	stops  int
}

func (a *recordAudio) PlaySound(key string) { a.sounds = append(a.sounds, key) }
func (a *recordAudio) PlayMusic(key string) { a.music = append(a.music, key) }
func (a *recordAudio) StopMusic() { a.stops++ }

func testWorld(seed int64) *World {
	return testWorldWith(config.DefaultChainBlastConfig(), seed, nil)
}

func testWorldWith(cfg config.ChainBlastConfig, seed int64, audio core.Audio) *World {
	return newWorld(cfg, audio, rand.New(rand.NewSource(seed)), nil)
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindObstacle, "obstacle"},
		{KindPowerup, "powerup"},
		{KindExplosion, "explosion"},
		{KindPlayer, "player"},
		{KindNoninteractive, "noninteractive"},
		{Kind(42), "kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestKindsNeverChange(t *testing.T) {
	w := testWorld(1)
	at := w.tune.center()

	tests := []struct {
		name string
		e    Entity
		want Kind
	}{
		{"obstacle", NewObstacle(w, at, core.Vec{}, false), KindObstacle},
		{"special", NewObstacle(w, at, core.Vec{}, true), KindObstacle},
		{"powerup", NewPowerup(w, at, core.Vec{}), KindPowerup},
		{"explosion", NewExplosion(w, at, NewChain(nil)), KindExplosion},
		{"text", NewText(w, "200", at), KindNoninteractive},
		{"player", NewPlayer(w), KindPlayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				if got := tt.e.Kind(); got != tt.want {
					t.Fatalf("Kind() = %v after %d updates, want %v", got, i, tt.want)
				}
				tt.e.Update(w)
			}
		})
	}
}

func TestOnBoardUsesWholeBox(t *testing.T) {
	w := testWorld(1)
	tests := []struct {
		name string
		pos  core.Vec
		want bool
	}{
		{"center", core.Vec{X: 320, Y: 240}, true},
		{"touching left edge", core.Vec{X: 10, Y: 240}, false},
		{"just inside left", core.Vec{X: 10.5, Y: 240}, true},
		{"touching right edge", core.Vec{X: 630, Y: 240}, false},
		{"touching bottom", core.Vec{X: 320, Y: 470}, false},
		{"far outside", core.Vec{X: -100, Y: -100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := body{pos: tt.pos, w: 20, h: 20}
			if got := b.onBoard(&w.tune); got != tt.want {
				t.Errorf("onBoard(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}
