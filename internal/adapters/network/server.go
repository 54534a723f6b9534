// Package network implements the gRPC front-end connecting editor clients to the
// resource server, the matching client, and an in-process loopback.
package network

import (
	"context"
	"errors"
	"io"
	"net"
	"slices"
	"sync"
	"sync/atomic"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
)

var _ ports.NetworkServer = (*Server)(nil)

const clientSendBuffer = 256

type client struct {
	id  uint32
	out chan domain.ResourceNotification
}

// Server implements ports.NetworkServer over a bidirectional gRPC stream per client.
type Server struct {
	logger ports.Logger

	mu       sync.Mutex
	clients  map[uint32]*client
	nextID   uint32
	inbox    []domain.ResourceRequestMessage
	grpc     *grpc.Server
	listener net.Listener
	running  atomic.Bool
	serveErr chan error
}

// NewServer creates a stopped server.
func NewServer(logger ports.Logger) *Server {
	return &Server{
		logger:  logger,
		clients: make(map[uint32]*client),
	}
}

// Start listens on the TCP address and serves clients in the background.
func (s *Server) Start(ctx context.Context, address string) error {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrNetworkListenFailed.Error()), "address", address)
	}
	return s.Serve(ctx, lis)
}

// Serve serves clients on an existing listener in the background.
// The server stops when ctx is canceled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.mu.Lock()
	if s.grpc != nil {
		s.mu.Unlock()
		_ = lis.Close()
		return zerr.With(domain.ErrNetworkListenFailed, "reason", "server already started")
	}
	s.grpc = grpc.NewServer(grpc.ForceServerCodec(Codec{}))
	s.grpc.RegisterService(&serviceDesc, s)
	s.listener = lis
	s.serveErr = make(chan error, 1)
	gs := s.grpc
	errCh := s.serveErr
	s.mu.Unlock()

	s.running.Store(true)
	s.logger.Info("resource server listening", "address", lis.Addr().String())

	go func() {
		errCh <- gs.Serve(lis)
	}()
	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case err := <-errCh:
			if err != nil && s.running.Load() {
				s.logger.Error(zerr.Wrap(err, "resource server stopped serving"))
			}
		}
	}()
	return nil
}

// Stop disconnects every client and closes the listener.
func (s *Server) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}

	s.mu.Lock()
	gs := s.grpc
	s.mu.Unlock()

	// Client streams never end on their own, so there is nothing to drain.
	gs.Stop()
}

// IsRunning reports whether the server accepts clients.
func (s *Server) IsRunning() bool {
	return s.running.Load()
}

// Addr returns the address of the listener, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// ProcessIncomingMessages hands the queued inbound messages to fn in arrival order.
func (s *Server) ProcessIncomingMessages(fn func(domain.ResourceRequestMessage)) {
	s.mu.Lock()
	inbox := s.inbox
	s.inbox = nil
	s.mu.Unlock()

	for _, msg := range inbox {
		fn(msg)
	}
}

// ConnectedClients returns the ids of the connected clients, ascending.
func (s *Server) ConnectedClients() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uint32, 0, len(s.clients))
	for id := range s.clients {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Send queues msg for the client named by msg.ClientID.
// Messages to unknown clients are dropped, as are messages to clients that stopped reading.
func (s *Server) Send(msg domain.ResourceNotification) {
	s.mu.Lock()
	c, ok := s.clients[msg.ClientID]
	s.mu.Unlock()

	if !ok {
		s.logger.Debug("dropping message for disconnected client", "client", msg.ClientID, "resource", msg.ResourceID)
		return
	}

	select {
	case c.out <- msg:
	default:
		s.logger.Warn("client send buffer full, dropping message", "client", msg.ClientID, "resource", msg.ResourceID)
	}
}

func (s *Server) register() *client {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	if s.nextID == 0 {
		s.nextID++
	}
	c := &client{id: s.nextID, out: make(chan domain.ResourceNotification, clientSendBuffer)}
	s.clients[c.id] = c
	return c
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, c.id)
}

func (s *Server) enqueue(msg domain.ResourceRequestMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inbox = append(s.inbox, msg)
}

// connect runs one client connection until either side closes it.
func (s *Server) connect(stream grpc.ServerStream) error {
	c := s.register()
	defer s.unregister(c)

	s.logger.Debug("client connected", "client", c.id)
	defer s.logger.Debug("client disconnected", "client", c.id)

	if err := stream.SendMsg(&ServerMessage{Kind: domain.NotificationWelcome, ClientID: c.id}); err != nil {
		return err
	}

	recvDone := make(chan error, 1)
	go func() {
		for {
			var in ClientMessage
			if err := stream.RecvMsg(&in); err != nil {
				recvDone <- err
				return
			}
			s.enqueue(domain.ResourceRequestMessage{ClientID: c.id, ResourcePath: in.RequestResourcePath})
		}
	}()

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-recvDone:
			if errors.Is(err, io.EOF) {
				// Half-closed: keep delivering completions until the client goes away.
				recvDone = nil
				continue
			}
			return nil
		case msg := <-c.out:
			out := &ServerMessage{
				Kind:       msg.Kind,
				ResourceID: msg.ResourceID,
				FilePath:   msg.FilePath,
				ClientID:   c.id,
			}
			if err := stream.SendMsg(out); err != nil {
				return err
			}
		}
	}
}
