// Package player drives on-device speech synthesis as a fallback for
// exercises that have no stored audio, mirroring the transport controls of
// the streamed player.
package player

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// State playback state
type State int

const (
	// StateIdle indicates no utterance is in flight.
	StateIdle State = iota
	// StateSpeaking indicates the engine is speaking.
	StateSpeaking
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpeaking:
		return "speaking"
	default:
		return "unknown"
	}
}

// Params are the utterance parameters captured when playback starts.
// Engines cannot alter an in-flight utterance, so changes apply to the
// next Play or Restart only.
type Params struct {
	Volume float64 // 0.0 - 1.0
	Rate   float64 // 0.5 - 2.0
	Voice  string  // engine voice / language code
}

// DefaultParams returns the neutral utterance parameters.
func DefaultParams(voice string) Params {
	return Params{Volume: 1.0, Rate: 1.0, Voice: voice}
}

// SpeechEngine is an on-device synthesis backend. Speak blocks until the
// utterance completes or ctx is cancelled.
type SpeechEngine interface {
	Speak(ctx context.Context, text string, params Params) error
	Stop()
}

// Player is a fallback audio player over a SpeechEngine.
type Player struct {
	engine SpeechEngine
	text   string
	logger *zap.Logger

	mu         sync.Mutex
	state      State
	pending    Params // applied at the next Play/Restart
	generation int    // guards stale completions after Restart
	cancel     context.CancelFunc
	done       chan struct{}
}

// New creates a player for one exercise text and voice.
func New(engine SpeechEngine, text, voice string) *Player {
	return &Player{
		engine:  engine,
		text:    text,
		pending: DefaultParams(voice),
		state:   StateIdle,
		logger:  zap.L().Named("fallback_player"),
	}
}

// State returns the current playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Play starts speaking from position zero. Calling Play while already
// speaking is a no-op; use Restart to begin again.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playLocked()
}

func (p *Player) playLocked() {
	if p.state == StateSpeaking {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.state = StateSpeaking
	p.generation++
	p.done = make(chan struct{})

	generation := p.generation
	params := p.pending
	done := p.done

	go func() {
		defer close(done)
		err := p.engine.Speak(ctx, p.text, params)
		if err != nil && ctx.Err() == nil {
			p.logger.Warn("speech engine failed", zap.Error(err))
		}

		p.mu.Lock()
		defer p.mu.Unlock()
		// A newer utterance may already be running.
		if p.generation == generation {
			p.state = StateIdle
		}
	}()
}

// Pause stops the current utterance. On-device engines cannot resume
// mid-utterance, so Pause transitions straight to idle and the next Play
// starts over.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.state != StateSpeaking {
		return
	}
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.engine.Stop()
	p.state = StateIdle
}

// Restart forces a transition through idle and speaks again from position
// zero, picking up any pending volume/rate changes.
func (p *Player) Restart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	p.playLocked()
}

// SetVolume stores the volume for the next utterance. It does not affect
// speech that has already started.
func (p *Player) SetVolume(v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("volume %v out of range [0, 1]", v)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending.Volume = v
	return nil
}

// SetRate stores the speech rate for the next utterance. It does not affect
// speech that has already started.
func (p *Player) SetRate(r float64) error {
	if r < 0.5 || r > 2.0 {
		return fmt.Errorf("rate %v out of range [0.5, 2.0]", r)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending.Rate = r
	return nil
}

// Wait blocks until the current utterance finishes. Mainly for tests and
// command-line callers.
func (p *Player) Wait() {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done != nil {
		<-done
	}
}
