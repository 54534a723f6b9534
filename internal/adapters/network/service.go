package network

import "google.golang.org/grpc"

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "forge.v1.ResourceServer"
	// ConnectMethod is the full method name of the bidirectional client stream.
	ConnectMethod = "/" + ServiceName + "/Connect"
)

// resourceServerService is the handler type of the service descriptor.
type resourceServerService interface {
	connect(stream grpc.ServerStream) error
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*resourceServerService)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Connect",
			Handler:       connectHandler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "forge/v1/resource_server.proto",
}

func connectHandler(srv any, stream grpc.ServerStream) error {
	return srv.(resourceServerService).connect(stream)
}
