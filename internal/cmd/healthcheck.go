package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/safespace-vault/safespace/internal/config"
	"github.com/safespace-vault/safespace/internal/healthcheck"
)

const keyHealthcheckIgnoreBadTLS = "healthcheck.tls.ignore_bad_tls"

var (
	host           string
	useConfig      bool
	timeoutSeconds int
	ignoreBadTLS   bool
)

func init() {
	healthCheckCmd.Flags().StringVar(&host, "host", "", "base url of the server to check")
	healthCheckCmd.Flags().BoolVarP(&useConfig, "useconfig", "c", false, "read values from config file")
	healthCheckCmd.Flags().IntVarP(&timeoutSeconds, "timeout", "t", 3, "timeout (in seconds)")
	healthCheckCmd.Flags().BoolVar(&ignoreBadTLS, "ignore-bad-tls", false, "ignore bad certificates for HTTPS")
}

var healthCheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "checks the health of safespace",
	Long: "checks the health of a running safespace instance, including its database. This is best used as a " +
		"defined healthcheck inside a docker container",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !useConfig && host == "" {
			return fmt.Errorf("safespace: healthcheck: one of useconfig or host must be specified")
		}

		hostToCheck := host

		if useConfig {
			if err := config.Init(); err != nil {
				log.Error().Err(err).Msg("could not read config")
			}

			config.Lock.RLock()
			scheme := "http"
			if viper.GetBool(config.KeyTLSEnabled) {
				scheme = "https"
			}
			if viper.GetBool(keyHealthcheckIgnoreBadTLS) {
				ignoreBadTLS = true
			}
			port := viper.GetInt(config.KeyServerPort)
			config.Lock.RUnlock()

			if port == 0 {
				port = 9000
			}

			hostToCheck = fmt.Sprintf("%s://localhost:%d", scheme, port)
		}

		err := healthcheck.CheckHealth(hostToCheck, time.Duration(timeoutSeconds)*time.Second, ignoreBadTLS)
		if err != nil {
			log.Error().Err(err).Str("host", hostToCheck).Msg("health check failed")
			return err
		}

		log.Info().Str("host", hostToCheck).Msg("health check ok")
		return nil
	},
}
