package featureflags

import (
	"os"
	"strings"
)

// StrictTransitions guards pitch status changes to pending pitches only.
// Off by default: the review flow historically allowed re-deciding an
// already accepted or rejected pitch, last write wins.
const StrictTransitions = "STRICT_TRANSITIONS"

// Enabled returns true if a flag is enabled via environment variable.
// Flags are read from env as FLAG_<NAME>=true/1/yes (case-insensitive)
func Enabled(name string) bool {
	v := os.Getenv("FLAG_" + strings.ToUpper(name))
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
