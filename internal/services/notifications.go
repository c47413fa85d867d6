package services

import (
	"strconv"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
	"github.com/workconnect/workconnect-core/internal/entities"
	"github.com/workconnect/workconnect-core/internal/events"
)

type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}

// Notifier turns domain events into a per-user notification feed. The feed
// is in-memory only: it is rebuilt from scratch each process start and adds
// nothing to the persisted store layout.
type Notifier struct {
	mu   sync.RWMutex
	feed map[string][]Notification
	seq  int64
}

func NewNotifier(bus EventBus.Bus) (*Notifier, error) {
	n := &Notifier{feed: map[string][]Notification{}}

	if err := bus.Subscribe(events.ApplicationSubmittedTopic, n.onApplicationSubmitted); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.ApplicationDecidedTopic, n.onApplicationDecided); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.UserRegisteredTopic, n.onUserRegistered); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Notifier) onApplicationSubmitted(event events.ApplicationSubmitted) {
	if event.EmployerID == "" {
		log.Warnf("application %v has no resolvable employer, skipping notification",
			event.Application.ID)
		return
	}
	n.push(event.EmployerID, "New Application",
		event.Application.ApplicantName+" applied for "+event.Application.JobTitle)
}

func (n *Notifier) onApplicationDecided(event events.ApplicationDecided) {
	title := "Application Update"
	message := "Your application for " + event.Application.JobTitle + " is now " +
		string(event.Application.Status)
	if event.Application.Status == entities.ApplicationAccepted {
		title = "Application Accepted"
	}
	n.push(event.Application.ApplicantID, title, message)
}

func (n *Notifier) onUserRegistered(event events.UserRegistered) {
	n.push(event.User.ID, "Welcome to WorkConnect", "Your account has been created.")
}

func (n *Notifier) push(userID string, title string, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++
	n.feed[userID] = append(n.feed[userID], Notification{
		ID:        "ntf-" + strconv.FormatInt(n.seq, 10),
		UserID:    userID,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// ForUser returns the user's notifications, newest first.
func (n *Notifier) ForUser(userID string) []Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()

	feed := n.feed[userID]
	out := make([]Notification, 0, len(feed))
	for i := len(feed) - 1; i >= 0; i-- {
		out = append(out, feed[i])
	}
	return out
}

func (n *Notifier) UnreadCount(userID string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := 0
	for _, notification := range n.feed[userID] {
		if !notification.Read {
			count++
		}
	}
	return count
}

func (n *Notifier) MarkRead(userID string, id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	feed := n.feed[userID]
	for i := range feed {
		if feed[i].ID == id {
			feed[i].Read = true
			return true
		}
	}
	return false
}
