package audio

import (
	"testing"

	"github.com/vovakirdan/chainblast/internal/config"
	"github.com/vovakirdan/chainblast/internal/core"
)

func testBank(t *testing.T) *Bank {
	t.Helper()
	return NewBank(config.AudioConfig{Enabled: true, Volume: 0.5, SampleRate: 8000}, nil)
}

// pull reads n samples from the mixer and returns their peak.
func pull(b *Bank, n int) float64 {
	samples := make([][2]float64, n)
	b.mixer.Stream(samples)
	peak := 0.0
	for _, s := range samples {
		peak = max(peak, s[0], -s[0])
	}
	return peak
}

func TestBankSynthesizesAllSounds(t *testing.T) {
	b := testBank(t)
	tests := []struct {
		name string
		buf  map[string]int
	}{
		{"sounds", map[string]int{core.SoundExplosion: 8000 * 7 / 10}},
		{"music", map[string]int{core.MusicGame: 8000 * 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, minLen := range tt.buf {
				buf := b.sounds[key]
				if buf == nil {
					buf = b.music[key]
				}
				if buf == nil {
					t.Fatalf("%s not synthesized", key)
				}
				if buf.Len() < minLen {
					t.Errorf("%s has %d samples, want at least %d", key, buf.Len(), minLen)
				}
			}
		})
	}
}

func TestPlaySound(t *testing.T) {
	b := testBank(t)
	b.PlaySound(core.SoundExplosion)
	b.PlaySound("missing")

	if b.Playing() != 1 {
		t.Fatalf("Playing() = %d, want 1", b.Playing())
	}
	if peak := pull(b, 800); peak == 0 {
		t.Error("explosion is silent")
	}

	// Drain the rest of the sound.
	pull(b, 8000)
	pull(b, 8000)
	if b.Playing() != 0 {
		t.Errorf("Playing() = %d after the sound ended, want 0", b.Playing())
	}
}

func TestMusicLoopsUntilStopped(t *testing.T) {
	b := testBank(t)
	b.PlayMusic(core.MusicGame)
	b.PlayMusic(core.MusicGame)

	// A second track replaces the first.
	pull(b, 100)
	if b.Playing() != 1 {
		t.Fatalf("Playing() = %d, want 1", b.Playing())
	}

	// Longer than one pass of the theme.
	for i := 0; i < 10; i++ {
		pull(b, 8000)
	}
	if b.Playing() != 1 {
		t.Fatal("music stopped by itself")
	}

	b.StopMusic()
	pull(b, 100)
	if b.Playing() != 0 {
		t.Errorf("Playing() = %d after StopMusic, want 0", b.Playing())
	}
}

func TestClosedBankIsSilent(t *testing.T) {
	b := testBank(t)
	b.PlayMusic(core.MusicGame)
	b.Close()
	b.PlaySound(core.SoundExplosion)
	b.PlayMusic(core.MusicGame)

	if b.Playing() != 0 {
		t.Errorf("Playing() = %d after Close, want 0", b.Playing())
	}
}
