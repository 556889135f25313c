package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	sampleRate   = beep.SampleRate(44100)
	cueDuration  = 250 * time.Millisecond
	cueRelease   = 80 * time.Millisecond
	cueVolume    = 0.35
	musicVolume  = 0.12
	musicBeat    = 500 * time.Millisecond
	musicGateOn  = 0.6 // Fraction of each beat the note sounds
	musicAttack  = 0.01
	musicRelease = 0.05
)

// tone is a finite sine wave with a linear release.
type tone struct {
	freq     float64
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	release  int
}

// NewTone creates a sine tone of the given pitch and length.
func NewTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	release := min(rate.N(cueRelease), total)
	return &tone{freq: freq, rate: rate, total: total, release: release}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		vol := 1.0
		if remaining := t.total - t.position; remaining < t.release {
			vol = float64(remaining) / float64(t.release)
		}

		val := vol * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// music is an endless gated tone: one short note per beat.
type music struct {
	freq  float64
	rate  beep.SampleRate
	beat  int
	phase float64
	pos   int
}

// NewMusic creates the endless background loop.
func NewMusic(freq float64, rate beep.SampleRate) beep.Streamer {
	return &music{freq: freq, rate: rate, beat: rate.N(musicBeat)}
}

func (m *music) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := float64(m.pos%m.beat) / float64(m.beat)

		gate := 0.0
		switch {
		case beatPos < musicAttack:
			gate = beatPos / musicAttack
		case beatPos < musicGateOn:
			gate = 1
		case beatPos < musicGateOn+musicRelease:
			gate = 1 - (beatPos-musicGateOn)/musicRelease
		}

		val := gate * math.Sin(2*math.Pi*m.phase)
		samples[i][0] = val
		samples[i][1] = val

		m.phase += m.freq / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.pos++
	}
	return len(samples), true
}

func (m *music) Err() error { return nil }

// withVolume scales a stream by a linear factor in (0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
