package domain

type NotificationType string

const (
	NotificationTypeAlert   NotificationType = "alert"
	NotificationTypeTip     NotificationType = "tip"
	NotificationTypeSuccess NotificationType = "success"
)

// Notification is an alert or insight. IsRead only ever moves from false to true.
type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
	IsRead  bool             `json:"isRead"`
}

// MarkRead flips IsRead and reports whether it changed
func (n *Notification) MarkRead() bool {
	if n.IsRead {
		return false
	}
	n.IsRead = true
	return true
}
