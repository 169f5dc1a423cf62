package types

import (
	"fmt"
	"strconv"
	"strings"
)

// VersionNumber is a firmware version with two mandatory and two optional
// components. It encodes as dotted text, e.g. "1.3.40" or "1.0.0.2016".
type VersionNumber struct {
	Major uint32
	Minor uint32
	Patch *uint32
	Build *uint32
}

// NewVersionNumber builds a version from its components; a third and fourth
// value fill Patch and Build.
func NewVersionNumber(major, minor uint32, rest ...uint32) VersionNumber {
	v := VersionNumber{Major: major, Minor: minor}
	if len(rest) > 0 {
		p := rest[0]
		v.Patch = &p
	}
	if len(rest) > 1 {
		b := rest[1]
		v.Build = &b
	}
	return v
}

func (v VersionNumber) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d", v.Major, v.Minor)
	if v.Patch != nil {
		fmt.Fprintf(&sb, ".%d", *v.Patch)
		if v.Build != nil {
			fmt.Fprintf(&sb, ".%d", *v.Build)
		}
	}
	return sb.String()
}

// MarshalText renders v in dotted form. A build without a patch is an error.
func (v VersionNumber) MarshalText() ([]byte, error) {
	if v.Patch == nil && v.Build != nil {
		return nil, fmt.Errorf("types: version has build %d without patch", *v.Build)
	}
	return []byte(v.String()), nil
}

// UnmarshalText parses two to four dot-separated components.
func (v *VersionNumber) UnmarshalText(b []byte) error {
	parts := strings.Split(string(b), ".")
	if len(parts) < 2 || len(parts) > 4 {
		return fmt.Errorf("types: malformed version %q", b)
	}
	nums := make([]uint32, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return fmt.Errorf("types: malformed version %q: %w", b, err)
		}
		nums[i] = uint32(n)
	}
	*v = NewVersionNumber(nums[0], nums[1], nums[2:]...)
	return nil
}

// FirmwareVersions are the firmware revisions reported by a device.
type FirmwareVersions struct {
	Firmware  VersionNumber `json:"firmware"`
	FPGACount uint32        `json:"fpga_count"`
	DICE      VersionNumber `json:"dice"`
}

// Clone returns a copy that does not share the optional components.
func (v VersionNumber) Clone() VersionNumber {
	c := VersionNumber{Major: v.Major, Minor: v.Minor}
	if v.Patch != nil {
		p := *v.Patch
		c.Patch = &p
	}
	if v.Build != nil {
		b := *v.Build
		c.Build = &b
	}
	return c
}
