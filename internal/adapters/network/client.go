package network

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is a connection to a resource server.
type Client struct {
	conn   *grpc.ClientConn
	stream grpc.ClientStream
	cancel context.CancelFunc
	id     uint32
}

// Dial connects to the server at address and waits for the welcome message.
// Extra dial options are appended to the defaults.
func Dial(ctx context.Context, address string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})),
	}, opts...)

	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNetworkDialFailed.Error()), "address", address)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	stream, err := conn.NewStream(streamCtx, &serviceDesc.Streams[0], ConnectMethod)
	if err != nil {
		cancel()
		_ = conn.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNetworkDialFailed.Error()), "address", address)
	}

	c := &Client{conn: conn, stream: stream, cancel: cancel}

	welcome, err := c.Receive()
	if err != nil {
		_ = c.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNetworkDialFailed.Error()), "address", address)
	}
	if welcome.Kind != domain.NotificationWelcome {
		_ = c.Close()
		return nil, zerr.With(domain.ErrWireDecode, "unexpected_kind", welcome.Kind.String())
	}
	c.id = welcome.ClientID
	return c, nil
}

// ID returns the client id assigned by the server.
func (c *Client) ID() uint32 {
	return c.id
}

// Request asks the server to provide the resource at path.
func (c *Client) Request(path string) error {
	if err := c.stream.SendMsg(&ClientMessage{RequestResourcePath: path}); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to send resource request"), "resource", path)
	}
	return nil
}

// Receive blocks until the next notification arrives.
func (c *Client) Receive() (domain.ResourceNotification, error) {
	var msg ServerMessage
	if err := c.stream.RecvMsg(&msg); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.ResourceNotification{}, domain.ErrConnectionClosed
		}
		return domain.ResourceNotification{}, zerr.Wrap(err, domain.ErrConnectionClosed.Error())
	}
	return domain.ResourceNotification{
		Kind:       msg.Kind,
		ClientID:   msg.ClientID,
		ResourceID: msg.ResourceID,
		FilePath:   msg.FilePath,
	}, nil
}

// Close ends the stream and the connection.
func (c *Client) Close() error {
	_ = c.stream.CloseSend()
	c.cancel()
	return c.conn.Close()
}
