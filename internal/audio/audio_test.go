package audio

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRecordStopReleasesProcess(t *testing.T) {
	requireSh(t)
	r := &Recorder{Command: []string{"sh", "-c", "printf clip; exec sleep 30"}, Grace: time.Second}
	stop := make(chan struct{})
	go func() {
		time.Sleep(200 * time.Millisecond)
		close(stop)
	}()

	start := time.Now()
	got, err := r.Record(context.Background(), stop)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if string(got) != "clip" {
		t.Fatalf("got %q, want %q", got, "clip")
	}
	if time.Since(start) > 5*time.Second {
		t.Fatalf("recorder was not released on stop")
	}
}

func TestRecordCommandExitsOnItsOwn(t *testing.T) {
	requireSh(t)
	r := &Recorder{Command: []string{"sh", "-c", "printf done"}}
	got, err := r.Record(context.Background(), make(chan struct{}))
	if err != nil || string(got) != "done" {
		t.Fatalf("Record = %q, %v", got, err)
	}
}

func TestRecordErrors(t *testing.T) {
	requireSh(t)
	tests := []struct {
		name string
		rec  Recorder
		want error
	}{
		{"no command", Recorder{}, ErrNoDevice},
		{"nothing captured", Recorder{Command: []string{"sh", "-c", "true"}}, ErrNoAudio},
		{"too large", Recorder{Command: []string{"sh", "-c", "printf 0123456789"}, MaxBytes: 4}, ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.rec.Record(context.Background(), make(chan struct{}))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	r := &Recorder{Command: []string{"sh", "-c", "exit 3"}}
	if _, err := r.Record(context.Background(), make(chan struct{})); err == nil {
		t.Fatal("expected error for failing command")
	}
	r = &Recorder{Command: []string{"kosmi-no-such-recorder"}}
	if _, err := r.Record(context.Background(), make(chan struct{})); err == nil {
		t.Fatal("expected error for missing command")
	}
}

func TestRecordCancelled(t *testing.T) {
	requireSh(t)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	r := &Recorder{Command: []string{"sh", "-c", "exec sleep 30"}, Grace: time.Second}
	_, err := r.Record(ctx, make(chan struct{}))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestPlay(t *testing.T) {
	requireSh(t)
	p := &Player{Command: []string{"sh", "-c", "cat > /dev/null"}}
	if err := p.Play(context.Background(), strings.NewReader("mp3")); err != nil {
		t.Fatalf("Play: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	p = &Player{Command: []string{"sh", "-c", "exec sleep 30"}, Grace: time.Second}
	if err := p.Play(ctx, strings.NewReader("")); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}

	if err := (&Player{}).Play(context.Background(), strings.NewReader("")); !errors.Is(err, ErrNoDevice) {
		t.Fatalf("err = %v, want ErrNoDevice", err)
	}
}

func TestParseCommand(t *testing.T) {
	got := ParseCommand("  ffplay -nodisp  - ")
	if len(got) != 3 || got[0] != "ffplay" || got[2] != "-" {
		t.Fatalf("ParseCommand = %q", got)
	}
}
