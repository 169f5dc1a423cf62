package status

import (
	"encoding/json"
	"fmt"
	"sort"
)

// DaemonStatus is the root of the serialized envelope: every attached mixer
// plus process-wide paths and the on-disk resource inventory.
type DaemonStatus struct {
	DaemonVersion string                  `json:"daemon_version"`
	Mixers        map[string]*MixerStatus `json:"mixers"`
	Paths         Paths                   `json:"paths"`
	Files         Files                   `json:"files"`
}

// Paths are the directories the daemon reads resources from.
type Paths struct {
	ProfileDirectory    string `json:"profile_directory"`
	MicProfileDirectory string `json:"mic_profile_directory"`
	SamplesDirectory    string `json:"samples_directory"`
	PresetsDirectory    string `json:"presets_directory"`
	IconsDirectory      string `json:"icons_directory"`
}

// Files is the last known inventory of the resource directories. Samples map
// a display name to the file path relative to the samples directory.
type Files struct {
	Profiles    StringSet         `json:"profiles"`
	MicProfiles StringSet         `json:"mic_profiles"`
	Presets     StringSet         `json:"presets"`
	Samples     map[string]string `json:"samples"`
	Icons       StringSet         `json:"icons"`
}

// NewDaemonStatus returns an envelope with no mixers and empty inventories.
func NewDaemonStatus(version string) *DaemonStatus {
	return &DaemonStatus{
		DaemonVersion: version,
		Mixers:        make(map[string]*MixerStatus),
		Files:         NewFiles(),
	}
}

// NewFiles returns an inventory whose collections are empty, not nil.
func NewFiles() Files {
	return Files{
		Profiles:    NewStringSet(),
		MicProfiles: NewStringSet(),
		Presets:     NewStringSet(),
		Samples:     make(map[string]string),
		Icons:       NewStringSet(),
	}
}

// UnmarshalJSON decodes strictly: every field must be present and every mixer
// must decode completely, otherwise nothing is assigned.
func (d *DaemonStatus) UnmarshalJSON(data []byte) error {
	type plain DaemonStatus
	if err := checkRequired(data, typeOf[plain](), ""); err != nil {
		return err
	}
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return wrapDecode(err)
	}
	*d = DaemonStatus(p)
	return nil
}

// StringSet is an unordered set of names. It encodes as a sorted JSON array,
// and a nil set encodes as an empty array.
type StringSet map[string]struct{}

// NewStringSet returns a set holding items.
func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s StringSet) Add(item string) { s[item] = struct{}{} }

func (s StringSet) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

// Sorted returns the members in lexical order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *StringSet) UnmarshalJSON(b []byte) error {
	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("string set: %w", err)
	}
	if items == nil {
		return fmt.Errorf("string set: expected array, got %s", b)
	}
	*s = NewStringSet(items...)
	return nil
}
