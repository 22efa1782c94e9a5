package loginlimit

import (
	"errors"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// LoginLimiter throttles login attempts per key (the client IP). It is independent of the per-account failure
// counter.
type LoginLimiter interface {
	// IsLocked reports whether key is locked and for how much longer
	IsLocked(key string) (bool, time.Duration)
	// MarkFailedAttempt records a failure and returns how many are left before key gets locked
	MarkFailedAttempt(key string) (int, error)
}

var (
	ErrLocked = errors.New("loginlimit: too many failed attempts")
)

const (
	ConfigKeyLoginFailureLimit = "security.login_limit.failure_limit"
	ConfigKeyLookbackTime      = "security.login_limit.lookback_time"
	ConfigKeyLockDuration      = "security.login_limit.lock_duration"

	DefaultFailureLimit = 20
	DefaultLookbackTime = 15 * time.Minute
	DefaultLockDuration = 15 * time.Minute
)

type InMemoryLoginLimiter struct {
	failureLock sync.Mutex

	maxFailures         int
	failureLookbackTime time.Duration
	lockDuration        time.Duration

	// failure expiry times per key
	loginFailures map[string][]time.Time
	locks         *ttlcache.Cache[string, struct{}]
}

var _ LoginLimiter = (*InMemoryLoginLimiter)(nil)

func NewInMemoryLimiter() *InMemoryLoginLimiter {
	failureLimit := viper.GetInt(ConfigKeyLoginFailureLimit)
	lookbackTime := viper.GetDuration(ConfigKeyLookbackTime)
	lockDuration := viper.GetDuration(ConfigKeyLockDuration)

	// we do it this way so we don't mistakenly pollute the config file with our values
	if failureLimit == 0 {
		failureLimit = DefaultFailureLimit
	}

	if lookbackTime == 0 {
		lookbackTime = DefaultLookbackTime
	}

	if lockDuration == 0 {
		lockDuration = DefaultLockDuration
	}

	log.Info().Int("failure_limit", failureLimit).Dur("lookback_time", lookbackTime).Dur("lock_duration", lockDuration).Msg("initializing login limiter")

	iml := constructLimiter(failureLimit, lookbackTime, lockDuration)

	go iml.locks.Start()
	go func() {
		for {
			time.Sleep(2 * lookbackTime)
			iml.cleanupRoutine()
		}
	}()

	return iml
}

func constructLimiter(failureLimit int, lookbackTime time.Duration, lockDuration time.Duration) *InMemoryLoginLimiter {
	return &InMemoryLoginLimiter{
		maxFailures:         failureLimit,
		failureLookbackTime: lookbackTime,
		lockDuration:        lockDuration,

		loginFailures: map[string][]time.Time{},
		locks: ttlcache.New[string, struct{}](
			ttlcache.WithTTL[string, struct{}](lockDuration),
			ttlcache.WithDisableTouchOnHit[string, struct{}](),
		),
	}
}

func unexpired(failures []time.Time, now time.Time) []time.Time {
	var ret []time.Time
	for _, curr := range failures {
		if curr.After(now) {
			ret = append(ret, curr)
		}
	}
	return ret
}

func (iml *InMemoryLoginLimiter) cleanupRoutine() {
	iml.failureLock.Lock()
	defer iml.failureLock.Unlock()

	now := time.Now()
	for k, v := range iml.loginFailures {
		cleaned := unexpired(v, now)
		if len(cleaned) == 0 {
			delete(iml.loginFailures, k)
			continue
		}
		iml.loginFailures[k] = cleaned
	}
}

func (iml *InMemoryLoginLimiter) IsLocked(key string) (bool, time.Duration) {
	item := iml.locks.Get(key)
	if item == nil || item.IsExpired() {
		return false, 0
	}

	return true, time.Until(item.ExpiresAt())
}

func (iml *InMemoryLoginLimiter) MarkFailedAttempt(key string) (int, error) {
	if locked, _ := iml.IsLocked(key); locked {
		return 0, ErrLocked
	}

	iml.failureLock.Lock()
	defer iml.failureLock.Unlock()

	now := time.Now()
	cleaned := unexpired(iml.loginFailures[key], now)
	cleaned = append(cleaned, now.Add(iml.failureLookbackTime))

	if len(cleaned) >= iml.maxFailures {
		delete(iml.loginFailures, key)
		iml.locks.Set(key, struct{}{}, ttlcache.DefaultTTL)
		log.Warn().Str("key", key).Dur("lock_duration", iml.lockDuration).Msg("too many failed logins, locking")

		return 0, ErrLocked
	}

	iml.loginFailures[key] = cleaned

	return iml.maxFailures - len(cleaned), nil
}
