// Package logging configures the process-wide logger.
package logging

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// levels maps the CLI verbosity names onto logrus levels.
var levels = map[string]log.Level{
	"critical": log.FatalLevel,
	"error":    log.ErrorLevel,
	"warning":  log.WarnLevel,
	"info":     log.InfoLevel,
	"debug":    log.DebugLevel,
}

// Setup configures the standard logger for colored, timestamped output at
// the named verbosity.
func Setup(verbosity string) error {
	level, ok := levels[strings.ToLower(verbosity)]
	if !ok {
		return fmt.Errorf("unknown verbosity level: %s", verbosity)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	return nil
}
