// Package logging configures the application logger. The terminal belongs
// to Bubble Tea while the program runs, so debug output goes to a file.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Setup returns the session logger plus a close func for its sink. With
// debug disabled everything is discarded; otherwise entries append to path.
func Setup(debug bool, path string) (*log.Logger, func(), error) {
	if !debug {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}
