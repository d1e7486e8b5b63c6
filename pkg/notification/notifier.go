package notification

import (
	"time"
)

// Notifier schedules a notification for delivery at a point in time and
// returns an opaque identifier usable for cancellation. Delivery and
// persistence of the matching reminder record are separate writes; callers
// must not assume one implies the other.
type Notifier interface {
	Schedule(recipient, title, body string, at time.Time) (string, error)
	Cancel(id string) error
}
