// Package healthcheck probes a locally running server, for use as a container health check.
package healthcheck

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const healthPath = "/health"

var client = &http.Client{}

type healthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func healthURL(host string) (*url.URL, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("healthcheck: could not parse host: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + healthPath
	return u, nil
}

func CheckHealth(host string, timeout time.Duration, disableTLSCheck bool) error {
	log.Info().Str("host", host).Msg("starting health check")

	client.Timeout = timeout

	if disableTLSCheck {
		log.Warn().Msg("ignoring bad HTTPS certificates from server")
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, // #nosec G402 -- doing this at user's option
			},
		}
	}

	target, err := healthURL(host)
	if err != nil {
		return err
	}

	// only localhost, this is not meant to probe other machines
	if strings.ToLower(target.Hostname()) != "localhost" && target.Hostname() != "127.0.0.1" {
		return fmt.Errorf("healthcheck: CheckHealth: can only check health on localhost")
	}

	req, err := http.NewRequest(http.MethodGet, target.String(), nil)
	if err != nil {
		return err
	}

	res, err := client.Do(req) // #nosec G704 -- we limit this to localhost only
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.Error().Str("host", host).Str("status", res.Status).Msg("bad status from server")
		return fmt.Errorf("healthcheck: CheckHealth: bad status from server: %s", res.Status)
	}

	var body healthResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return fmt.Errorf("healthcheck: CheckHealth: could not decode response: %w", err)
	}
	if !body.Success {
		return fmt.Errorf("healthcheck: CheckHealth: server reported unhealthy: %s", body.Message)
	}

	return nil
}
