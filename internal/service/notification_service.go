package service

import (
	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/dafibh/fundvision/fundvision-backend/internal/websocket"
	"github.com/google/uuid"
)

// NotificationService handles the notification feed
type NotificationService struct {
	eventPublisher websocket.EventPublisher
}

// NewNotificationService creates a new NotificationService
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *NotificationService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *NotificationService) publishEvent(sessionID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(sessionID, event)
	}
}

// List returns copies of every notification in feed order
func (s *NotificationService) List(sess *session.Session) []*domain.Notification {
	return sess.Snapshot().Notifications
}

// UnreadCount returns how many notifications are unread
func (s *NotificationService) UnreadCount(sess *session.Session) int {
	count := 0
	sess.View(func(d *session.Data) {
		count = countUnread(d.Notifications)
	})
	return count
}

func countUnread(notifications []*domain.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// MarkRead marks one notification as read. Marking an already read
// notification succeeds without publishing anything.
func (s *NotificationService) MarkRead(sess *session.Session, id string) (*domain.Notification, error) {
	var (
		result  domain.Notification
		changed bool
	)
	err := sess.Update(func(d *session.Data) error {
		n, err := d.FindNotification(id)
		if err != nil {
			return err
		}
		changed = n.MarkRead()
		result = *n
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publishEvent(sess.ID, websocket.NotificationRead([]domain.Notification{result}))
	}
	return &result, nil
}

// MarkAllRead marks every notification as read and returns how many changed
func (s *NotificationService) MarkAllRead(sess *session.Session) int {
	var changed []domain.Notification
	_ = sess.Update(func(d *session.Data) error {
		for _, n := range d.Notifications {
			if n.MarkRead() {
				changed = append(changed, *n)
			}
		}
		return nil
	})

	if len(changed) > 0 {
		s.publishEvent(sess.ID, websocket.NotificationRead(changed))
	}
	return len(changed)
}
