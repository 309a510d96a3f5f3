// Package clangformat drives an external clang-format binary: it validates the
// binary's version, expands path arguments into formattable files, and relays a
// single in-place formatting invocation.
package clangformat

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/cfmt-cli/cfmt/util"
	"github.com/samber/lo"
)

// Version is an ordered (major, minor, patch) triple as reported by the binary.
type Version struct {
	Major, Minor, Patch int
}

// RequiredVersion is the minimum binary version the pipeline accepts.
// Versions with a greater major component are allowed with a warning.
var RequiredVersion = Version{Major: 13, Minor: 0, Patch: 1}

// versionPattern matches the canonical line clang-format prints for --version.
var versionPattern = regexp.MustCompile(`clang-format version (?P<major>\d+)\.(?P<minor>\d+)\.(?P<patch>\d+)`)

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less reports whether v orders strictly before other, comparing major first,
// then minor, then patch.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// ParseVersion extracts the reported version from the binary's --version output.
func ParseVersion(output string) (Version, error) {
	groups := util.ReGroups(versionPattern, output)
	if len(groups) == 0 {
		return Version{}, fmt.Errorf("unexpected clang-format version output: %q", output)
	}

	// The pattern only captures digit runs, so conversion cannot fail.
	return Version{
		Major: lo.Must(strconv.Atoi(groups["major"])),
		Minor: lo.Must(strconv.Atoi(groups["minor"])),
		Patch: lo.Must(strconv.Atoi(groups["patch"])),
	}, nil
}
