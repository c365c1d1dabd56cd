// Package audio runs external commands for the microphone and the speaker.
// Every call owns its process: Record and Play return only after the
// process has exited, whether they end normally, on stop, on error or on
// cancellation.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

var (
	// ErrNoDevice is returned when no command is configured.
	ErrNoDevice = errors.New("audio: no command configured")
	// ErrNoAudio is returned when a recording captured nothing.
	ErrNoAudio = errors.New("audio: nothing recorded")
	// ErrTooLarge is returned when a recording exceeds the size cap.
	ErrTooLarge = errors.New("audio: recording too large")
)

// Default commands. Both expect ffmpeg on the PATH; recordings are WebM on
// stdout and playback reads from stdin.
const (
	DefaultRecordCommand = "ffmpeg -loglevel quiet -f pulse -i default -t 120 -c:a libopus -f webm -"
	DefaultPlayCommand   = "ffplay -nodisp -autoexit -loglevel quiet -"
)

// DefaultGrace is how long a stopped process may take to finish writing
// before it is killed.
const DefaultGrace = 2 * time.Second

// ParseCommand splits a command line on whitespace.
func ParseCommand(line string) []string {
	return strings.Fields(line)
}

// Recorder captures audio from a command writing to stdout.
type Recorder struct {
	Command  []string
	MaxBytes int64
	Grace    time.Duration
}

// Record runs the command until stop is closed, the command exits or ctx
// is cancelled, and returns what it wrote. On stop the process receives an
// interrupt so it can finish the container, and is killed after Grace.
func (r *Recorder) Record(ctx context.Context, stop <-chan struct{}) ([]byte, error) {
	if len(r.Command) == 0 {
		return nil, ErrNoDevice
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmd := command(runCtx, r.Command, r.Grace)
	out := &capBuffer{max: r.MaxBytes}
	cmd.Stdout = out
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start recorder: %w", err)
	}
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("recorder exited: %w", err)
		}
	case <-stop:
		cancel()
		<-done
	case <-ctx.Done():
		cancel()
		<-done
		return nil, ctx.Err()
	}

	if out.overflow {
		return nil, ErrTooLarge
	}
	if out.buf.Len() == 0 {
		return nil, ErrNoAudio
	}
	return out.buf.Bytes(), nil
}

// Player plays audio by piping it to a command's stdin.
type Player struct {
	Command []string
	Grace   time.Duration
}

// Play blocks until playback ends. Cancelling ctx stops playback.
func (p *Player) Play(ctx context.Context, audio io.Reader) error {
	if len(p.Command) == 0 {
		return ErrNoDevice
	}
	cmd := command(ctx, p.Command, p.Grace)
	cmd.Stdin = audio
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

func command(ctx context.Context, argv []string, grace time.Duration) *exec.Cmd {
	if grace <= 0 {
		grace = DefaultGrace
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
	cmd.WaitDelay = grace
	return cmd
}

// capBuffer keeps at most max bytes and discards the rest.
type capBuffer struct {
	buf      bytes.Buffer
	max      int64
	overflow bool
}

func (b *capBuffer) Write(p []byte) (int, error) {
	if b.max > 0 && int64(b.buf.Len()+len(p)) > b.max {
		b.overflow = true
		return len(p), nil
	}
	return b.buf.Write(p)
}
