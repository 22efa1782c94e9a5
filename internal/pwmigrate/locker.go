package pwmigrate

import (
	"sync/atomic"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const lockTTL = 5 * time.Minute

// locker hands out one try-lock per key. Entries expire so the cache does not grow with every account that ever
// logged in.
type locker struct {
	cache *ttlcache.Cache[string, *atomic.Bool]
}

func newLocker() *locker {
	return &locker{
		cache: ttlcache.New[string, *atomic.Bool](
			ttlcache.WithTTL[string, *atomic.Bool](lockTTL),
		),
	}
}

func (l *locker) tryLock(key string) bool {
	l.cache.DeleteExpired()
	item, _ := l.cache.GetOrSet(key, &atomic.Bool{})
	return item.Value().CompareAndSwap(false, true)
}

func (l *locker) unlock(key string) {
	item := l.cache.Get(key)
	if item == nil {
		return
	}
	item.Value().Store(false)
}
