package testlog

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/danmuck/sshwire/logging"
)

// Start configures test logging and returns a logger scoped to t.
func Start(t *testing.T) zerolog.Logger {
	t.Helper()
	logging.ConfigureTests()
	log := logging.Base().With().Str("test", t.Name()).Logger()
	log.Info().Msg("test start")
	return log
}
