// Package trueip works out the client address of a request, honoring forwarding headers only when the request
// came through a trusted proxy.
package trueip

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/safespace-vault/safespace/internal/config"
)

type proxyTruster interface {
	IsProxyTrusted(ip net.IP) bool
}

var (
	truster      proxyTruster
	trusterLock  sync.RWMutex
	initOnce     sync.Once
	missingHeaderWarning sync.Once
)

// Initialize loads the trusted proxy list from config. Without it, forwarding headers are ignored and the socket
// address is used.
func Initialize() {
	initOnce.Do(func() {
		cp := newConfigProvider()
		if !cp.ContainsProxies() {
			log.Warn().Msg("no trusted proxies configured, forwarding headers will be ignored")
		}

		trusterLock.Lock()
		truster = cp
		trusterLock.Unlock()
	})
}

func isTrustedProxy(r *http.Request) bool {
	remoteIPStr, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		log.Warn().Str("remote_addr", r.RemoteAddr).Err(err).Msg("could not find remote address for testing trusted proxy")
		return false
	}

	remoteIP := net.ParseIP(remoteIPStr)
	if remoteIP == nil {
		log.Warn().Str("remote_ip", remoteIPStr).Msg("could not parse remote as IP")
		return false
	}

	trusterLock.RLock()
	t := truster
	trusterLock.RUnlock()

	if t != nil && t.IsProxyTrusted(remoteIP) {
		return true
	}

	if r.Header.Get("X-Forwarded-For") != "" {
		log.Debug().IPAddr("remote_ip", remoteIP).Msg("not trusting XFF header from unknown proxy")
	}
	return false
}

// lastForwardedFor returns the last X-Forwarded-For header. Only the last one was added by our own proxy;
// Header.Get would hand back the first.
func lastForwardedFor(r *http.Request) string {
	headers := r.Header.Values("X-Forwarded-For")
	if len(headers) == 0 {
		return ""
	}
	return headers[len(headers)-1]
}

// Find returns the best guess at the address of the client that sent r.
func Find(r *http.Request) string {
	upstreamTrusted := isTrustedProxy(r)

	config.Lock.RLock()
	trustedHeaderName := viper.GetString(config.KeyRealIPHeader)
	config.Lock.RUnlock()

	if upstreamTrusted && trustedHeaderName != "" {
		if trustedContents := r.Header.Get(trustedHeaderName); trustedContents != "" {
			return trustedContents
		}

		missingHeaderWarning.Do(func() {
			log.Warn().Str("trusted_header_name", trustedHeaderName).Msg("security.real_ip_header is set, but that header isn't in the request")
		})
	} else if fwd := lastForwardedFor(r); upstreamTrusted && fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[len(parts)-1])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		log.Warn().Str("remote_addr", r.RemoteAddr).Err(err).Msg("could not find remote address")
		return r.RemoteAddr
	}

	return host
}
