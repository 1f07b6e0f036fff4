package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-isatty"
)

func TestSpinnerSilentWithoutTerminal(t *testing.T) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		t.Skip("stderr is a terminal")
	}
	s := newSpinner("Rendering svg...")
	if s.w != io.Discard {
		t.Errorf("writer = %T, want io.Discard when stderr is not a terminal", s.w)
	}
	s.Start()
	s.Stop()
}

func TestSpinnerDrawsFrames(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Rendering png...")
	s.w = &buf
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering png...") {
		t.Errorf("output %q does not contain the message", out)
	}
	if !strings.Contains(out, s.frames[0]) {
		t.Errorf("output %q does not contain the first frame", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("output %q does not end with a cleared line", out)
	}
	// Stop cancels the spinner context.
	if !s.Cancelled() {
		t.Error("Cancelled() = false after Stop")
	}
}

func TestSpinnerCancelledContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			return ctx, cancel
		}},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 10*time.Millisecond)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()

			var buf bytes.Buffer
			s := newSpinnerWithContext(ctx, "Rendering...")
			s.w = &buf
			s.Start()
			<-ctx.Done()
			s.Stop()

			if !s.Cancelled() {
				t.Error("Cancelled() = false, want true")
			}
			if out := strings.TrimSpace(strings.ReplaceAll(buf.String(), "\r", "")); out != "" {
				t.Errorf("output = %q, want only cleared lines", out)
			}
		})
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Rendering...")
	s.w = &buf
	s.Start()
	s.Stop()
	n := buf.Len()
	s.Stop()
	if buf.Len() <= n {
		t.Error("second Stop() did not clear the line")
	}
}
