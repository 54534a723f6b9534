package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// NetworkServer is the front-end connecting editor clients to the resource server.
// Inbound messages are queued by the transport and drained on the tick goroutine.
//
//go:generate go run go.uber.org/mock/mockgen -source=network.go -destination=mocks/mock_network.go -package=mocks
type NetworkServer interface {
	// Start begins accepting clients on address. It returns once the listener is bound.
	Start(ctx context.Context, address string) error

	// Stop disconnects every client and releases the listener.
	Stop()

	// IsRunning reports whether the server accepts clients.
	IsRunning() bool

	// ProcessIncomingMessages hands every queued inbound message to fn, in arrival order.
	ProcessIncomingMessages(fn func(domain.ResourceRequestMessage))

	// ConnectedClients returns the ids of the currently connected clients.
	ConnectedClients() []uint32

	// Send queues a notification for the client named in msg.ClientID.
	Send(msg domain.ResourceNotification)
}
