package network

import (
	"context"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.NetworkServer = (*Loopback)(nil)

// LoopbackClientID is the id of the single in-process client.
const LoopbackClientID uint32 = 1

// Loopback is an in-process ports.NetworkServer with exactly one connected client.
// It lets one-shot commands issue external requests without opening a socket.
type Loopback struct {
	mu            sync.Mutex
	running       bool
	inbox         []domain.ResourceRequestMessage
	notifications []domain.ResourceNotification
}

// NewLoopback creates a stopped loopback.
func NewLoopback() *Loopback {
	return &Loopback{}
}

// Start marks the loopback running. The address is ignored.
func (l *Loopback) Start(_ context.Context, _ string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.running = true
	return nil
}

// Stop marks the loopback stopped.
func (l *Loopback) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.running = false
}

// IsRunning reports whether Start was called.
func (l *Loopback) IsRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Request queues a request from the loopback client.
func (l *Loopback) Request(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inbox = append(l.inbox, domain.ResourceRequestMessage{ClientID: LoopbackClientID, ResourcePath: path})
}

// ProcessIncomingMessages hands the queued requests to fn.
func (l *Loopback) ProcessIncomingMessages(fn func(domain.ResourceRequestMessage)) {
	l.mu.Lock()
	inbox := l.inbox
	l.inbox = nil
	l.mu.Unlock()

	for _, msg := range inbox {
		fn(msg)
	}
}

// ConnectedClients returns the loopback client while running.
func (l *Loopback) ConnectedClients() []uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return nil
	}
	return []uint32{LoopbackClientID}
}

// Send records msg when it is addressed to the loopback client.
func (l *Loopback) Send(msg domain.ResourceNotification) {
	if msg.ClientID != LoopbackClientID {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notifications = append(l.notifications, msg)
}

// TakeNotifications returns and clears the recorded notifications.
func (l *Loopback) TakeNotifications() []domain.ResourceNotification {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.notifications
	l.notifications = nil
	return out
}
