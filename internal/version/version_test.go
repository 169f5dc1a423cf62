package version_test

import (
	"strings"
	"testing"

	"github.com/edumarques81/mixerd/internal/version"
)

func TestVersionInfo(t *testing.T) {
	t.Run("Version should not be empty", func(t *testing.T) {
		if version.Version == "" {
			t.Error("Version should not be empty")
		}
	})

	t.Run("Name should be mixerd", func(t *testing.T) {
		if version.Name != "mixerd" {
			t.Errorf("Expected name 'mixerd', got '%s'", version.Name)
		}
	})
}

func TestGetInfo(t *testing.T) {
	info := version.GetInfo()

	t.Run("should return name and version", func(t *testing.T) {
		if info.Name != version.Name || info.Version != version.Version {
			t.Errorf("got %s %s, want %s %s", info.Name, info.Version, version.Name, version.Version)
		}
	})

	t.Run("should report the Go runtime", func(t *testing.T) {
		if !strings.HasPrefix(info.GoVersion, "go") && !strings.HasPrefix(info.GoVersion, "devel") {
			t.Errorf("unexpected GoVersion %q", info.GoVersion)
		}
	})
}

func TestString(t *testing.T) {
	cases := []struct {
		name string
		info version.Info
		want string
	}{
		{"bare", version.Info{Name: "mixerd", Version: "1.2.3"}, "mixerd v1.2.3"},
		{"short commit", version.Info{Name: "mixerd", Version: "1.2.3", GitCommit: "abc"}, "mixerd v1.2.3 (abc)"},
		{"long commit", version.Info{Name: "mixerd", Version: "1.2.3", GitCommit: "0123456789abcdef"}, "mixerd v1.2.3 (0123456)"},
		{"build time", version.Info{Name: "mixerd", Version: "1.2.3", BuildTime: "today"}, "mixerd v1.2.3 built today"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
