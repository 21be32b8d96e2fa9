// Package logging configures the diagnostic logger shared by cmdy packages.
// User-facing output goes to stdout through fmt; this logger only carries
// warnings and debug traces on stderr.
package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// EnvDebug enables debug-level diagnostics when set to any non-empty value.
const EnvDebug = "CMDY_DEBUG"

// Setup points the standard logrus logger at w and picks the level from the
// environment.
func Setup(w io.Writer) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(Level())
}

// Level returns the log level implied by the environment.
func Level() log.Level {
	if os.Getenv(EnvDebug) != "" {
		return log.DebugLevel
	}
	return log.WarnLevel
}
