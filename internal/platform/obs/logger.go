package obs

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide structured logger.
var Logger = logrus.New()

// Configure sets the level ("debug", "info", ...) and format ("json" or "text").
func Configure(level, format string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	Logger.SetLevel(lvl)
	Logger.SetOutput(os.Stdout)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("configure logger: unknown format %q", format)
	}

	return nil
}
