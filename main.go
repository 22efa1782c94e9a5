package main

import (
	"github.com/rs/zerolog/log"

	"github.com/safespace-vault/safespace/internal/ainit"
	"github.com/safespace-vault/safespace/internal/cmd"
)

func main() {
	log.Info().Bool("loaded", ainit.Loaded()).Msg("initializing services")
	cmd.Execute()
}
