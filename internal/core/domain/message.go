package domain

// ResourceRequestMessage is an inbound request from a connected client.
type ResourceRequestMessage struct {
	ClientID     uint32
	ResourcePath string
}

// NotificationKind tells clients how to interpret a notification.
type NotificationKind uint8

const (
	// NotificationWelcome is sent once per connection and carries the assigned client id.
	NotificationWelcome NotificationKind = iota + 1
	// NotificationResourceUpdated is broadcast when an internal request completes.
	NotificationResourceUpdated
	// NotificationRequestComplete answers a client's own request.
	NotificationRequestComplete
)

func (k NotificationKind) String() string {
	switch k {
	case NotificationWelcome:
		return "Welcome"
	case NotificationResourceUpdated:
		return "ResourceUpdated"
	case NotificationRequestComplete:
		return "ResourceRequestComplete"
	default:
		return "Unknown"
	}
}

// ResourceNotification is an outbound message to a client.
// FilePath is empty when the request failed.
type ResourceNotification struct {
	Kind       NotificationKind
	ClientID   uint32
	ResourceID string
	FilePath   string
}
