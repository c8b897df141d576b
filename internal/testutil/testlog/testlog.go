package testlog

import (
	"testing"

	"github.com/danmuck/replicantgen/internal/logging"
	"github.com/rs/zerolog"
)

// Start returns a debug logger that writes through t.Log.
func Start(t *testing.T) zerolog.Logger {
	t.Helper()
	cfg := logging.DefaultConfig(logging.ProfileTest)
	logger := logging.NewWithConfig(cfg, "test", zerolog.NewTestWriter(t))
	logger.Info().Str("test", t.Name()).Msg("start")
	return logger
}
