package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// wave is an oscillator shape.
type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator plays one wave at a fixed frequency for a fixed time.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq float64, d time.Duration, w wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   w,
		rate:   rate,
		rng:    rand.New(rand.NewSource(int64(freq*1000) + int64(d))), //#nosec G404 -- noise
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case waveSaw:
			v = 2 * (o.phase - 0.5)
		case waveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream out exponentially. rate is in 1/s.
type decay struct {
	streamer beep.Streamer
	sr       beep.SampleRate
	rate     float64
	attack   int
	position int
}

func newDecay(s beep.Streamer, rate float64, attack time.Duration, sr beep.SampleRate) *decay {
	return &decay{streamer: s, sr: sr, rate: rate, attack: sr.N(attack)}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.position) / float64(d.sr)
		vol := math.Exp(-t * d.rate)
		if d.position < d.attack {
			vol *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// withVolume scales s linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// render synthesizes s into memory.
func render(format beep.Format, s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}

// explosionSound is a noise burst over a falling rumble.
func explosionSound(sr beep.SampleRate) beep.Streamer {
	const length = 700 * time.Millisecond
	noise := newOscillator(0, length, waveNoise, sr)
	rumble := newOscillator(55, length, waveSine, sr)
	crack := newOscillator(110, length/4, waveSaw, sr)

	return newDecay(beep.Mix(
		withVolume(noise, 0.5),
		withVolume(rumble, 0.6),
		withVolume(crack, 0.2),
	), 6, 5*time.Millisecond, sr)
}

// note is one step of a melody. A zero freq is a rest.
type note struct {
	freq  float64
	beats float64
}

// gameTheme is a short minor arpeggio over a bass line, one bar per chord.
var gameTheme = []struct {
	bass   float64
	melody []note
}{
	{110.00, []note{{440.00, 1}, {523.25, 1}, {659.25, 1}, {523.25, 1}}},
	{87.31, []note{{349.23, 1}, {440.00, 1}, {523.25, 1}, {440.00, 1}}},
	{98.00, []note{{392.00, 1}, {493.88, 1}, {587.33, 1}, {493.88, 1}}},
	{82.41, []note{{329.63, 1}, {415.30, 1}, {493.88, 0.5}, {0, 0.5}, {415.30, 1}}},
}

// musicSound is one pass of the game theme at bpm beats per minute.
func musicSound(sr beep.SampleRate, bpm float64) beep.Streamer {
	beat := time.Duration(float64(time.Minute) / bpm)
	var bars []beep.Streamer
	for _, bar := range gameTheme {
		var tones []beep.Streamer
		var total time.Duration
		for _, n := range bar.melody {
			d := time.Duration(float64(beat) * n.beats)
			total += d
			if n.freq == 0 {
				tones = append(tones, beep.Silence(sr.N(d)))
				continue
			}
			tones = append(tones, newDecay(withVolume(newOscillator(n.freq, d, waveSquare, sr), 0.15), 3, 10*time.Millisecond, sr))
		}
		bass := withVolume(newOscillator(bar.bass, total, waveSaw, sr), 0.2)
		bars = append(bars, beep.Mix(beep.Seq(tones...), bass))
	}
	return beep.Seq(bars...)
}
