package dto

// NotificationEvent is the domain-side emission payload (the Notifier
// interface consumes this; services never build Notification models directly).
type NotificationEvent struct {
	Type    string
	Title   string
	Message string
	Link    *string
}

type CreateNotificationRequest struct {
	Type    string  `json:"type"    validate:"required,min=1"`
	Title   string  `json:"title"   validate:"required,min=1"`
	Message string  `json:"message" validate:"required,min=1"`
	Link    *string `json:"link"`
}

type UpdateNotificationRequest struct {
	Read *bool `json:"read" validate:"required"`
}

type NotificationResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Link      *string `json:"link,omitempty"`
	Read      bool    `json:"read"`
	CreatedAt string  `json:"created_at"`
}

type NotificationListResponse struct {
	Data        []NotificationResponse `json:"data"`
	Total       int64                  `json:"total"`
	UnreadCount int64                  `json:"unread_count"`
}
