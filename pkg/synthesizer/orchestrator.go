package synthesizer

import (
	"bytes"
	"context"
	"time"

	"github.com/code-100-precent/LingDrill/pkg/chunker"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Orchestrator drives chunk-by-chunk synthesis against an external provider.
// Chunks are submitted strictly one at a time, paced to stay under the
// provider's rate limit. A failed chunk is skipped, never retried; the run
// fails only when every chunk fails.
type Orchestrator struct {
	provider     ProviderClient
	limiter      *rate.Limiter
	maxChunkLen  int
	chunkTimeout time.Duration
}

// OrchestratorOption tunes an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithMaxChunkLen overrides the per-chunk text length bound.
func WithMaxChunkLen(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n > 0 {
			o.maxChunkLen = n
		}
	}
}

// WithPacing overrides the minimum spacing between provider calls.
func WithPacing(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if d > 0 {
			o.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithChunkTimeout overrides the per-chunk provider call timeout.
func WithChunkTimeout(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if d > 0 {
			o.chunkTimeout = d
		}
	}
}

// NewOrchestrator creates an orchestrator with 150-char chunks, 300ms call
// spacing and a 10s per-chunk timeout.
func NewOrchestrator(provider ProviderClient, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		provider:     provider,
		limiter:      rate.NewLimiter(rate.Every(300*time.Millisecond), 1),
		maxChunkLen:  chunker.DefaultMaxLen,
		chunkTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Synthesize converts text to one audio buffer for the given language code.
// It returns the assembled audio and the voice identifier that produced it.
func (o *Orchestrator) Synthesize(ctx context.Context, text, locale string) ([]byte, string, error) {
	voice := ResolveVoice(locale)
	chunks := chunker.Split(text, o.maxChunkLen)

	var buf bytes.Buffer
	succeeded := 0

	for i, chunk := range chunks {
		// Checked between chunks only: an abandoned caller lets the
		// in-flight provider call finish, partial audio is still useful.
		if err := o.limiter.Wait(ctx); err != nil {
			break
		}

		audio, err := o.fetchChunk(chunk, voice)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"chunk": i,
				"total": len(chunks),
				"voice": voice,
			}).WithError(err).Warn("synthesis chunk failed, skipping")
			continue
		}

		buf.Write(audio)
		succeeded++
	}

	if succeeded == 0 {
		return nil, "", &SynthesisError{
			Locale: locale,
			Cause:  "all synthesis chunks failed",
		}
	}

	logrus.WithFields(logrus.Fields{
		"voice":      voice,
		"chunks":     len(chunks),
		"succeeded":  succeeded,
		"audio_size": buf.Len(),
	}).Info("synthesis completed")

	return buf.Bytes(), voice, nil
}

// fetchChunk runs one provider call with its own deadline, detached from the
// caller's context so an abandoned request does not abort mid-call.
func (o *Orchestrator) fetchChunk(text, voice string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), o.chunkTimeout)
	defer cancel()
	return o.provider.FetchAudio(ctx, text, voice)
}
