package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/edumarques81/mixerd/internal/domain/status"
	"github.com/edumarques81/mixerd/internal/types"
)

// StatusCmd fetches a snapshot from a running daemon, validates it with the
// strict decoder and prints it.
type StatusCmd struct {
	Server  string        `help:"Daemon base URL." default:"http://127.0.0.1:14564"`
	Serial  string        `arg:"" optional:"" help:"Only this mixer."`
	JSON    bool          `name:"json" help:"Print the raw JSON instead of a summary."`
	Timeout time.Duration `help:"Request timeout." default:"5s"`

	out io.Writer `kong:"-"`
}

func (c *StatusCmd) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	body, err := fetch(ctx, c.Server, c.Serial)
	if err != nil {
		return err
	}

	if c.Serial != "" {
		m, err := status.DecodeMixerStatus(body)
		if err != nil {
			return fmt.Errorf("invalid mixer status from %s: %w", c.Server, err)
		}
		if c.JSON {
			return printJSON(out, body)
		}
		printMixer(out, c.Serial, m)
		return nil
	}

	d, err := status.DecodeDaemonStatus(body)
	if err != nil {
		return fmt.Errorf("invalid daemon status from %s: %w", c.Server, err)
	}
	if c.JSON {
		return printJSON(out, body)
	}
	printDaemon(out, d)
	return nil
}

func fetch(ctx context.Context, base, serial string) ([]byte, error) {
	u := strings.TrimSuffix(base, "/") + "/api/v1/status"
	if serial != "" {
		u += "/" + url.PathEscape(serial)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch status: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read status: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch status: %s: %s", resp.Status, bytes.TrimSpace(body))
	}
	return body, nil
}

func printJSON(w io.Writer, body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

func printDaemon(w io.Writer, d *status.DaemonStatus) {
	fmt.Fprintf(w, "daemon %s, %d mixer(s)\n", d.DaemonVersion, len(d.Mixers))
	fmt.Fprintf(w, "files: %d profiles, %d mic profiles, %d presets, %d samples, %d icons\n",
		len(d.Files.Profiles), len(d.Files.MicProfiles), len(d.Files.Presets), len(d.Files.Samples), len(d.Files.Icons))

	serials := make([]string, 0, len(d.Mixers))
	for s := range d.Mixers {
		serials = append(serials, s)
	}
	sort.Strings(serials)
	for _, s := range serials {
		fmt.Fprintln(w)
		printMixer(w, s, d.Mixers[s])
	}
}

func printMixer(w io.Writer, serial string, m *status.MixerStatus) {
	hw := m.Hardware()
	fmt.Fprintf(w, "%s  %s  firmware %s  profile %q\n", serial, hw.DeviceType, hw.Versions.Firmware, m.ProfileName)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FADER\tCHANNEL\tVOLUME\tMUTE")
	for _, f := range types.AllFaderNames() {
		fs := m.Fader(f)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", f, fs.Channel, m.ChannelVolume(fs.Channel), fs.MuteType)
	}
	tw.Flush()

	for _, in := range types.AllInputDevices() {
		var outs []string
		for _, o := range m.Outputs(in).Slice() {
			outs = append(outs, o.String())
		}
		fmt.Fprintf(w, "  %-10s -> %s\n", in, strings.Join(outs, ", "))
	}
}
