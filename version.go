// Package linepad is a minimal screen-oriented text editor for character
// terminals. The edit engine lives in package editor; cmd/linepad is the
// binary.
package linepad

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// linkVersion replaces the embedded version when set at link time:
//
//	go build -ldflags "-X github.com/iw2rmb/linepad.linkVersion=v1.2.3"
var linkVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the release in SemVer form, without a leading "v".
// A malformed link-time version is ignored.
func Version() string {
	if v := strings.TrimPrefix(strings.TrimSpace(linkVersion), "v"); IsSemver(v) {
		return v
	}
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version as a git tag ("v0.1.0"). The -version flag prints it.
func VersionTag() string { return "v" + Version() }

// IsSemver reports whether v is a SemVer 2.0.0 version without prefix.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
