// Package files keeps the daemon's resource inventory in step with the
// profile, preset, sample and icon directories on disk.
package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/edumarques81/mixerd/internal/domain/status"
)

var (
	profileExts    = []string{".goxlr"}
	micProfileExts = []string{".goxlrmicprofile"}
	presetExts     = []string{".preset"}
	iconExts       = []string{".png", ".jpg", ".jpeg", ".gif"}
	sampleExts     = []string{".wav", ".mp3"}
)

// Scanner builds a status.Files inventory from the configured directories.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan lists every directory in p. A missing directory contributes an empty
// collection; any other failure is returned alongside whatever was listed.
func (s *Scanner) Scan(p status.Paths) (status.Files, error) {
	out := status.NewFiles()
	var errs []error

	for _, flat := range []struct {
		dir     string
		exts    []string
		keepExt bool
		into    status.StringSet
	}{
		{p.ProfileDirectory, profileExts, false, out.Profiles},
		{p.MicProfileDirectory, micProfileExts, false, out.MicProfiles},
		{p.PresetsDirectory, presetExts, false, out.Presets},
		{p.IconsDirectory, iconExts, true, out.Icons},
	} {
		names, err := listFlat(flat.dir, flat.exts, flat.keepExt)
		if err != nil {
			errs = append(errs, err)
		}
		for _, n := range names {
			flat.into.Add(n)
		}
	}

	samples, err := listSamples(p.SamplesDirectory)
	if err != nil {
		errs = append(errs, err)
	}
	out.Samples = samples

	return out, errors.Join(errs...)
}

func listFlat(dir string, exts []string, keepExt bool) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || hidden(e.Name()) {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !matchExt(ext, exts) {
			continue
		}
		if keepExt {
			names = append(names, e.Name())
		} else {
			names = append(names, strings.TrimSuffix(e.Name(), ext))
		}
	}
	return names, nil
}

// listSamples walks dir recursively in lexical order. The key is the file name
// without extension and the first file with a given name wins.
func listSamples(dir string) (map[string]string, error) {
	out := make(map[string]string)
	if dir == "" {
		return out, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if hidden(d.Name()) && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(d.Name())
		if !matchExt(ext, sampleExts) {
			return nil
		}
		name := strings.TrimSuffix(d.Name(), ext)
		if _, taken := out[name]; taken {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out[name] = filepath.ToSlash(rel)
		return nil
	})
	if err != nil {
		return out, fmt.Errorf("walk %s: %w", dir, err)
	}
	return out, nil
}

func matchExt(ext string, exts []string) bool {
	ext = strings.ToLower(ext)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
