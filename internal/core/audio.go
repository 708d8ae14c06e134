package core

// Sound and music keys understood by every Audio backend.
const (
	SoundExplosion = "explosion"
	MusicGame      = "game_music"
)

// Audio plays sound effects and background music. Calls never block the
// caller and unknown keys are ignored.
type Audio interface {
	PlaySound(key string)
	PlayMusic(key string)
	StopMusic()
}

// NoAudio is an Audio that does nothing.
type NoAudio struct{}

func (NoAudio) PlaySound(string) {}
func (NoAudio) PlayMusic(string) {}
func (NoAudio) StopMusic() {}
