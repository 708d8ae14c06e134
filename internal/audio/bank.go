// Package audio synthesizes the game's sounds and plays them through the
// system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/chainblast/internal/config"
	"github.com/vovakirdan/chainblast/internal/core"
)

const musicBPM = 132

// Bank holds the synthesized sounds and the mixer they play through.
// It implements core.Audio.
type Bank struct {
	mu     sync.Mutex
	format beep.Format
	volume float64
	sounds map[string]*beep.Buffer
	music  map[string]*beep.Buffer
	mixer  *beep.Mixer
	track  *beep.Ctrl
	log    *log.Logger

	lock, unlock func()
	opened       bool
	closed       bool
}

var _ core.Audio = (*Bank)(nil)

// NewBank synthesizes every sound up front. Nothing is played until the
// mixer is attached to an output, see Open.
func NewBank(cfg config.AudioConfig, logger *log.Logger) *Bank {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sr := beep.SampleRate(cfg.SampleRate)
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}

	start := time.Now()
	b := &Bank{
		format: format,
		volume: cfg.Volume,
		sounds: map[string]*beep.Buffer{
			core.SoundExplosion: render(format, explosionSound(sr)),
		},
		music: map[string]*beep.Buffer{
			core.MusicGame: render(format, musicSound(sr, musicBPM)),
		},
		mixer:  &beep.Mixer{},
		log:    logger,
		lock:   func() {},
		unlock: func() {},
	}
	logger.Debug("sounds synthesized", "sample_rate", cfg.SampleRate, "took", time.Since(start))
	return b
}

// Open synthesizes the sounds and starts the speaker.
func Open(cfg config.AudioConfig, logger *log.Logger) (*Bank, error) {
	b := NewBank(cfg, logger)
	sr := b.format.SampleRate
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	b.lock, b.unlock = speaker.Lock, speaker.Unlock
	b.opened = true
	speaker.Play(b.mixer)
	return b, nil
}

// PlaySound starts a one-shot sound. Unknown keys are ignored.
func (b *Bank) PlaySound(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, ok := b.sounds[key]
	if !ok || b.closed {
		if !ok {
			b.log.Debug("unknown sound", "key", key)
		}
		return
	}

	b.lock()
	b.mixer.Add(withVolume(buf.Streamer(0, buf.Len()), b.volume))
	b.unlock()
}

// PlayMusic loops a music track, replacing the current one.
func (b *Bank) PlayMusic(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, ok := b.music[key]
	if !ok || b.closed {
		if !ok {
			b.log.Debug("unknown music", "key", key)
		}
		return
	}

	b.lock()
	defer b.unlock()
	b.stopTrack()
	b.track = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	b.mixer.Add(withVolume(b.track, b.volume))
}

// StopMusic stops the current track, if any.
func (b *Bank) StopMusic() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lock()
	b.stopTrack()
	b.unlock()
}

// stopTrack drops the current track. The mixer removes it on its next read.
func (b *Bank) stopTrack() {
	if b.track == nil {
		return
	}
	b.track.Paused = true
	b.track.Streamer = nil
	b.track = nil
}

// Playing returns the number of streams in the mixer.
func (b *Bank) Playing() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lock()
	defer b.unlock()
	return b.mixer.Len()
}

// Close silences everything and releases the speaker.
func (b *Bank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	b.lock()
	b.stopTrack()
	b.mixer.Clear()
	b.unlock()

	if b.opened {
		speaker.Clear()
		speaker.Close()
	}
}
