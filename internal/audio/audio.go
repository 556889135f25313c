// Package audio maps breakout cues to sound. The simulation never calls
// audio directly; the frontend passes each tick's cues to Dispatch.
package audio

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Player plays cues and controls the background music loop.
// Implementations must tolerate calls after Close.
type Player interface {
	Play(cue core.Cue)
	PlayMusic()
	StopMusic()
	Close()
}

// Dispatch forwards one tick's cues to p in order. Music directives are
// routed to PlayMusic and StopMusic.
func Dispatch(p Player, cues []core.Cue) {
	if p == nil {
		return
	}
	for _, cue := range cues {
		switch cue {
		case core.CuePlayMusic:
			p.PlayMusic()
		case core.CueStopMusic:
			p.StopMusic()
		default:
			p.Play(cue)
		}
	}
}

type silent struct{}

// Silent returns a Player that does nothing. Used for --mute, remote
// sessions and when no audio device is available.
func Silent() Player { return silent{} }

func (silent) Play(core.Cue) {}
func (silent) PlayMusic()    {}
func (silent) StopMusic()    {}
func (silent) Close()        {}

// Frequencies for each sound cue, in Hz.
var cueFrequencies = map[core.Cue]float64{
	core.CueStartup:   990,
	core.CueWallHit:   660,
	core.CuePaddleHit: 550,
	core.CueBrickHit:  880,
	core.CueFloorHit:  330,
	core.CueLifeLost:  220,
	core.CueGameOver:  110,
}

// musicFrequency is the pitch of the background loop.
const musicFrequency = 260

// Frequency returns the tone pitch for a cue.
func Frequency(cue core.Cue) (float64, bool) {
	f, ok := cueFrequencies[cue]
	return f, ok
}
