package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/edumarques81/mixerd/internal/domain/status"
	"github.com/edumarques81/mixerd/internal/types"
)

func TestStatusCommandSummary(t *testing.T) {
	srv, reg := newTestRoutes(t, "")
	if err := reg.Update("FULL1", func(m *status.MixerStatus) error {
		m.ProfileName = "Streaming"
		m.SetFaderChannel(types.FaderA, types.ChannelGame)
		return nil
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var out bytes.Buffer
	cmd := &StatusCmd{Server: srv.URL, Timeout: time.Second, out: &out}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"daemon 9.9.9, 2 mixer(s)",
		`FULL1  Full  firmware 1.0.0.0  profile "Streaming"`,
		"MINI1  Mini",
		"Game",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestStatusCommandSingleMixerJSON(t *testing.T) {
	srv, _ := newTestRoutes(t, "")

	var out bytes.Buffer
	cmd := &StatusCmd{Server: srv.URL + "/", Serial: "MINI1", JSON: true, Timeout: time.Second, out: &out}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), `"device_type": "Mini"`) {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestStatusCommandUnknownMixer(t *testing.T) {
	srv, _ := newTestRoutes(t, "")

	cmd := &StatusCmd{Server: srv.URL, Serial: "NOPE", Timeout: time.Second, out: &bytes.Buffer{}}
	err := cmd.Run()
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected a 404 error, got %v", err)
	}
}
