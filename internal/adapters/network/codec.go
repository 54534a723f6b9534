package network

import (
	"fmt"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/protobuf/encoding/protowire"
)

// CodecName is the gRPC content subtype of the resource server protocol.
const CodecName = "forgewire"

// Field numbers of the wire messages.
const (
	fieldRequestResourcePath protowire.Number = 1

	fieldKind       protowire.Number = 1
	fieldResourceID protowire.Number = 2
	fieldFilePath   protowire.Number = 3
	fieldClientID   protowire.Number = 4
)

// ClientMessage is sent by clients to request a resource.
//
//	message ClientMessage { string request_resource_path = 1; }
type ClientMessage struct {
	RequestResourcePath string
}

// ServerMessage is sent by the server to one client.
//
//	message ServerMessage {
//	  Kind kind = 1;
//	  string resource_id = 2;
//	  string file_path = 3;
//	  uint32 client_id = 4;
//	}
type ServerMessage struct {
	Kind       domain.NotificationKind
	ResourceID string
	FilePath   string
	ClientID   uint32
}

// Codec encodes the protocol messages in protobuf wire format.
type Codec struct{}

// Name returns the codec name.
func (Codec) Name() string {
	return CodecName
}

// Marshal encodes a *ClientMessage or *ServerMessage.
func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case *ClientMessage:
		var b []byte
		if m.RequestResourcePath != "" {
			b = protowire.AppendTag(b, fieldRequestResourcePath, protowire.BytesType)
			b = protowire.AppendString(b, m.RequestResourcePath)
		}
		return b, nil
	case *ServerMessage:
		var b []byte
		if m.Kind != 0 {
			b = protowire.AppendTag(b, fieldKind, protowire.VarintType)
			b = protowire.AppendVarint(b, uint64(m.Kind))
		}
		if m.ResourceID != "" {
			b = protowire.AppendTag(b, fieldResourceID, protowire.BytesType)
			b = protowire.AppendString(b, m.ResourceID)
		}
		if m.FilePath != "" {
			b = protowire.AppendTag(b, fieldFilePath, protowire.BytesType)
			b = protowire.AppendString(b, m.FilePath)
		}
		if m.ClientID != 0 {
			b = protowire.AppendTag(b, fieldClientID, protowire.VarintType)
			b = protowire.AppendVarint(b, uint64(m.ClientID))
		}
		return b, nil
	default:
		return nil, zerr.With(domain.ErrWireUnsupportedType, "type", typeName(v))
	}
}

// Unmarshal decodes data into a *ClientMessage or *ServerMessage.
// Unknown fields are skipped.
func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case *ClientMessage:
		*m = ClientMessage{}
		return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) int {
			if num == fieldRequestResourcePath && typ == protowire.BytesType {
				s, n := protowire.ConsumeString(b)
				m.RequestResourcePath = s
				return n
			}
			return protowire.ConsumeFieldValue(num, typ, b)
		})
	case *ServerMessage:
		*m = ServerMessage{}
		return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) int {
			switch {
			case num == fieldKind && typ == protowire.VarintType:
				v, n := protowire.ConsumeVarint(b)
				m.Kind = domain.NotificationKind(v) //nolint:gosec // enum range
				return n
			case num == fieldResourceID && typ == protowire.BytesType:
				s, n := protowire.ConsumeString(b)
				m.ResourceID = s
				return n
			case num == fieldFilePath && typ == protowire.BytesType:
				s, n := protowire.ConsumeString(b)
				m.FilePath = s
				return n
			case num == fieldClientID && typ == protowire.VarintType:
				v, n := protowire.ConsumeVarint(b)
				m.ClientID = uint32(v) //nolint:gosec // uint32 field
				return n
			default:
				return protowire.ConsumeFieldValue(num, typ, b)
			}
		})
	default:
		return zerr.With(domain.ErrWireUnsupportedType, "type", typeName(v))
	}
}

// walkFields calls fn for every field of a message. fn returns the number of bytes
// of the field value it consumed, or a negative protowire error code.
func walkFields(data []byte, fn func(protowire.Number, protowire.Type, []byte) int) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return zerr.Wrap(protowire.ParseError(n), domain.ErrWireDecode.Error())
		}
		data = data[n:]

		m := fn(num, typ, data)
		if m < 0 {
			return zerr.Wrap(protowire.ParseError(m), domain.ErrWireDecode.Error())
		}
		data = data[m:]
	}
	return nil
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
