package notification

import (
	"Sue-Backend/internal/utils/mailing"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type mailNotifier struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewMailNotifier delivers scheduled notifications over SMTP when their
// trigger time arrives. Pending deliveries live in process memory; a restart
// drops them, which mirrors the non-transactional reminder contract.
func NewMailNotifier() Notifier {
	return &mailNotifier{timers: make(map[string]*time.Timer)}
}

func (n *mailNotifier) Schedule(recipient, title, body string, at time.Time) (string, error) {
	id := uuid.New().String()

	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}

	n.mu.Lock()
	n.timers[id] = time.AfterFunc(delay, func() {
		n.mu.Lock()
		delete(n.timers, id)
		n.mu.Unlock()

		if err := mailing.SendMail(recipient, title, body); err != nil {
			log.Printf("Error delivering notification %s: %v", id, err)
		}
	})
	n.mu.Unlock()

	return id, nil
}

func (n *mailNotifier) Cancel(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[id]; ok {
		timer.Stop()
		delete(n.timers, id)
	}
	return nil
}
