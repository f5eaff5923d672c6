package texty

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var rawVersion string

var semver = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the module version without a leading "v".
func Version() string { return strings.TrimSpace(rawVersion) }

// Tag returns Version in git tag form.
func Tag() string { return "v" + Version() }

// Banner is the line a program built on this module prints for -version.
func Banner(program string) string { return program + " " + Tag() }

// ValidVersion reports whether v is a SemVer 2.0.0 version without prefix.
func ValidVersion(v string) bool { return semver.MatchString(strings.TrimSpace(v)) }
