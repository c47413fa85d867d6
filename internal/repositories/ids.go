package repositories

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

var (
	idMu     sync.Mutex
	lastUsed int64
)

// timestampID builds the historical "<prefix><unix-millis>" identifier. The
// persisted format is kept, but a monotonicity guard prevents two creations
// within the same millisecond from colliding.
func timestampID(prefix string) string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastUsed {
		now = lastUsed + 1
	}
	lastUsed = now
	return prefix + strconv.FormatInt(now, 10)
}

// userID builds the historical "user_<unix-millis>_<9 base36 chars>" format.
func userID() string {
	suffix := strconv.FormatInt(rand.Int63(), 36)
	for len(suffix) < 9 {
		suffix = "0" + suffix
	}
	return "user_" + timestampID("") + "_" + suffix[:9]
}

// nowISO formats the current time the way the persisted data always has:
// UTC with millisecond precision and a Z suffix.
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
