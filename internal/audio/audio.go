package audio

import (
	"log/slog"
	"sync"
)

// Sound names a sound-effect cue.
type Sound string

const (
	SoundClick     Sound = "click"
	SoundSpin      Sound = "spin"
	SoundWin       Sound = "win"
	SoundLegendary Sound = "legendary"
)

// Player plays and stops sound cues. Implementations must not block; a
// failed cue is never an error for the caller.
type Player interface {
	Play(s Sound)
	Stop(s Sound)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Sound) {}
func (Nop) Stop(Sound) {}

// LogPlayer writes cues to a logger at debug level. It stands in for a
// real output device when the presentation layer runs elsewhere.
type LogPlayer struct {
	log *slog.Logger
}

// NewLogPlayer creates a LogPlayer. A nil logger uses slog.Default.
func NewLogPlayer(log *slog.Logger) *LogPlayer {
	if log == nil {
		log = slog.Default()
	}
	return &LogPlayer{log: log}
}

func (p *LogPlayer) Play(s Sound) { p.log.Debug("Sound cue", "action", "play", "sound", s) }
func (p *LogPlayer) Stop(s Sound) { p.log.Debug("Sound cue", "action", "stop", "sound", s) }

// Cue is one recorded Play or Stop call.
type Cue struct {
	Action string `json:"action"`
	Sound  Sound  `json:"sound"`
}

// Recorder keeps every cue in order.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

func (r *Recorder) Play(s Sound) { r.record("play", s) }
func (r *Recorder) Stop(s Sound) { r.record("stop", s) }

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}

func (r *Recorder) record(action string, s Sound) {
	r.mu.Lock()
	r.cues = append(r.cues, Cue{Action: action, Sound: s})
	r.mu.Unlock()
}
