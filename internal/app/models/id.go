package models

import (
	"fmt"
	"sync"
	"time"
)

var (
	idMu     sync.Mutex
	lastStamp int64
)

// NewID generates a collection-scoped record id of the form
// "{collection}-{epoch-millis}". Ids are assigned by the store at creation
// time, never by callers. When two ids are requested within the same
// millisecond the timestamp component is bumped so that sequential ids stay
// distinct and monotonically distinguishable.
func NewID(collection string) string {
	idMu.Lock()
	defer idMu.Unlock()

	stamp := time.Now().UnixMilli()
	if stamp <= lastStamp {
		stamp = lastStamp + 1
	}
	lastStamp = stamp

	return fmt.Sprintf("%s-%d", collection, stamp)
}
