package trueip

import (
	"net"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/safespace-vault/safespace/internal/config"
)

const updateDebounceTime = 100 * time.Millisecond

// configProvider trusts the proxies listed under security.trusted_proxies.network, either as single IPs or as
// CIDR blocks. The list is reloaded when the config file changes.
type configProvider struct {
	updateLock     sync.RWMutex
	lastUpdateTime time.Time

	trustedProxyIPs   []net.IP
	trustedProxyCIDRs []*net.IPNet
}

func (cp *configProvider) reload() {
	cp.updateLock.Lock()
	defer cp.updateLock.Unlock()

	// a single save can fire several events
	if time.Since(cp.lastUpdateTime) < updateDebounceTime {
		return
	}

	config.Lock.RLock()
	entries := viper.GetStringSlice(config.KeyTrustedProxies)
	config.Lock.RUnlock()

	var ips []net.IP
	var cidrs []*net.IPNet

	for _, curr := range entries {
		if _, ipnet, err := net.ParseCIDR(curr); err == nil {
			log.Debug().IPPrefix("cidr", *ipnet).Msg("adding CIDR as trusted proxy")
			cidrs = append(cidrs, ipnet)
			continue
		}

		ip := net.ParseIP(curr)
		if ip == nil {
			log.Warn().Str("input", curr).Msg("could not parse trusted proxy as CIDR or IP")
			continue
		}
		log.Debug().IPAddr("ip", ip).Msg("adding IP as trusted proxy")
		ips = append(ips, ip)
	}

	log.Info().Int("trusted_ip_count", len(ips)).Int("trusted_cidr_count", len(cidrs)).Msg("loaded trusted proxies")
	cp.trustedProxyIPs = ips
	cp.trustedProxyCIDRs = cidrs
	cp.lastUpdateTime = time.Now()
}

func (cp *configProvider) IsProxyTrusted(ip net.IP) bool {
	cp.updateLock.RLock()
	defer cp.updateLock.RUnlock()

	for _, curr := range cp.trustedProxyIPs {
		if curr.Equal(ip) {
			return true
		}
	}

	for _, curr := range cp.trustedProxyCIDRs {
		if curr.Contains(ip) {
			return true
		}
	}

	return false
}

func (cp *configProvider) ContainsProxies() bool {
	cp.updateLock.RLock()
	defer cp.updateLock.RUnlock()

	return len(cp.trustedProxyIPs)+len(cp.trustedProxyCIDRs) > 0
}

func (cp *configProvider) TrustedProxies() []string {
	cp.updateLock.RLock()
	defer cp.updateLock.RUnlock()

	ret := make([]string, 0, len(cp.trustedProxyIPs)+len(cp.trustedProxyCIDRs))
	for _, curr := range cp.trustedProxyIPs {
		ret = append(ret, curr.String())
	}
	for _, curr := range cp.trustedProxyCIDRs {
		ret = append(ret, curr.String())
	}

	return ret
}

func newConfigProvider() *configProvider {
	cp := &configProvider{}
	config.RegisterForUpdates(func(event fsnotify.Event) {
		cp.reload()
	})

	cp.reload()
	return cp
}
