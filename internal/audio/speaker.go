package audio

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Speaker plays synthesised cues through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	guard  sync.Locker // Held while touching the mixer the device is reading
	mixer  *beep.Mixer
	music  *beep.Ctrl
	closed bool
	logger *log.Logger
}

// speakerLock adapts the global speaker lock to sync.Locker.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// NewSpeaker opens the audio device. When no device is available it logs
// a warning and returns Silent so the game keeps running.
func NewSpeaker(logger *log.Logger) Player {
	if logger == nil {
		logger = log.Default()
	}

	if err := speaker.Init(sampleRate, sampleRate.N(cueDuration/2)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return Silent()
	}

	s := newSpeaker(speakerLock{}, logger)
	speaker.Play(s.mixer)
	logger.Debug("audio initialized", "rate", int(sampleRate))
	return s
}

func newSpeaker(guard sync.Locker, logger *log.Logger) *Speaker {
	return &Speaker{
		guard:  guard,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Play queues a short tone for cue. Unknown cues are ignored.
func (s *Speaker) Play(cue core.Cue) {
	freq, ok := Frequency(cue)
	if !ok {
		s.logger.Debug("no sound for cue", "cue", cue)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.guard.Lock()
	s.mixer.Add(withVolume(NewTone(freq, cueDuration, sampleRate), cueVolume))
	s.guard.Unlock()
}

// PlayMusic starts the background loop, or resumes it if stopped.
func (s *Speaker) PlayMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	if s.music != nil {
		s.music.Paused = false
		return
	}
	s.music = &beep.Ctrl{Streamer: withVolume(NewMusic(musicFrequency, sampleRate), musicVolume)}
	s.mixer.Add(s.music)
}

// StopMusic pauses the background loop.
func (s *Speaker) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return
	}

	s.guard.Lock()
	s.music.Paused = true
	s.guard.Unlock()
}

// MusicPlaying reports whether the background loop is audible.
func (s *Speaker) MusicPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.music != nil && !s.music.Paused
}

// Close silences everything. beep has no speaker shutdown, so the
// mixer is cleared instead.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	s.guard.Lock()
	if s.music != nil {
		s.music.Paused = true
	}
	s.mixer.Clear()
	s.guard.Unlock()
}
