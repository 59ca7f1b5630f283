// Package version reports the build version stamped in with -ldflags.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is set at build time:
//
//	go build -ldflags "-X github.com/lingo-hub/lingo/internal/shared/version.Version=1.4.0"
var Version = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

// String returns the canonical semver of the build, or the raw value for
// development builds.
func String() string {
	v := Normalize(Version)
	if !semver.IsValid(v) {
		return strings.TrimSpace(Version)
	}
	return semver.Canonical(v)
}
