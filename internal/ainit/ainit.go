// Package ainit sets up the global logger. Import it first so that anything logged during other packages'
// initialization goes through the configured writer.
package ainit

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/safespace-vault/safespace/internal/config"
)

var loaded atomic.Bool

func init() {
	var revision string
	if info, ok := debug.ReadBuildInfo(); ok {
		for i := range info.Settings {
			if info.Settings[i].Key == "vcs.revision" {
				revision = info.Settings[i].Value
				break
			}
		}
	}

	if config.IsProductionMode() {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	log.Info().
		Str("arch", runtime.GOARCH).
		Str("os", runtime.GOOS).
		Str("go_version", strings.TrimPrefix(runtime.Version(), "go")).
		Str("git_commit", revision).
		Msg("hello world")

	if !config.IsProductionMode() || config.IsDebugLoggingEnabled() {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		log.Warn().Str("environment", os.Getenv("ENVIRONMENT")).Msg("starting with debug logging enabled")
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Info().Str("environment", os.Getenv("ENVIRONMENT")).Msg("starting in production mode")
	}

	loaded.Store(true)
}

// Loaded exists so main has something to call on this package
func Loaded() bool {
	return loaded.Load()
}
