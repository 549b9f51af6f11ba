package player

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// CommandEngine speaks through a local TTS command such as espeak.
type CommandEngine struct {
	command string

	mu      sync.Mutex
	current *exec.Cmd
}

// NewCommandEngine creates an engine backed by a local synthesis command.
// The command must accept text as its last argument and speak it aloud.
func NewCommandEngine(command string) (*CommandEngine, error) {
	if command == "" {
		command = "espeak"
	}
	if _, err := exec.LookPath(command); err != nil {
		return nil, fmt.Errorf("speech command %q not available: %w", command, err)
	}
	return &CommandEngine{command: command}, nil
}

// Speak runs the command for one utterance and blocks until it finishes.
func (e *CommandEngine) Speak(ctx context.Context, text string, params Params) error {
	args := []string{
		// espeak's default speed is 175 wpm, amplitude range is 0-200.
		"-s", fmt.Sprintf("%.0f", params.Rate*175),
		"-a", fmt.Sprintf("%.0f", params.Volume*200),
	}
	if params.Voice != "" {
		args = append(args, "-v", engineLanguage(params.Voice))
	}
	args = append(args, text)

	cmd := exec.CommandContext(ctx, e.command, args...)

	e.mu.Lock()
	e.current = cmd
	e.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"command": e.command,
		"voice":   params.Voice,
		"rate":    params.Rate,
		"volume":  params.Volume,
	}).Debug("local speech: utterance started")

	err := cmd.Run()

	e.mu.Lock()
	e.current = nil
	e.mu.Unlock()

	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("%s failed: %w", e.command, err)
	}
	return nil
}

// Stop kills the in-flight utterance, if any.
func (e *CommandEngine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current != nil && e.current.Process != nil {
		_ = e.current.Process.Kill()
	}
}

// engineLanguage converts a locale code to the short code espeak expects.
func engineLanguage(code string) string {
	base := strings.ToLower(code)
	if i := strings.Index(base, "-"); i >= 0 {
		base = base[:i]
	}
	if base == "" {
		return "en"
	}
	return base
}
