//go:build !windows

package server

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// listenEnableDebugLogging turns on trace logging when the process gets SIGUSR2
func listenEnableDebugLogging() {
	go func() {
		if zerolog.GlobalLevel() == zerolog.TraceLevel {
			return
		}

		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGUSR2)

		<-c

		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		log.Trace().Msg("trace logging enabled")
	}()
}
