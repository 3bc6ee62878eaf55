package utils

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// InitLogging installs the default logger writing to w at the given level.
// Unknown or empty levels fall back to info.
func InitLogging(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000000",
		Level:           lvl,
		Prefix:          "ekitan-modify",
	})
	log.SetDefault(logger)
	return logger
}
