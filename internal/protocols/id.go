package protocols

import (
	"fmt"
	"time"
)

// Clock abstracts wall-clock reads so ID generation is testable.
type Clock func() time.Time

// GenerateID derives the 17-digit protocol identifier from the creation
// timestamp: YYYYMMDDHHMMSS followed by the zero-padded millisecond. IDs are
// monotonically increasing as long as no two creations share a millisecond
// on the same process; a same-millisecond pair collides on the primary key.
func GenerateID(now time.Time) string {
	return now.Format("20060102150405") + fmt.Sprintf("%03d", now.Nanosecond()/int(time.Millisecond))
}
