package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/network"
	"go.trai.ch/forge/internal/core/domain"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestCodec_ServerMessage(t *testing.T) {
	codec := network.Codec{}
	in := &network.ServerMessage{
		Kind:       domain.NotificationRequestComplete,
		ResourceID: "data://textures/stone.tex",
		FilePath:   "/compiled/textures/stone.tex",
		ClientID:   7,
	}

	data, err := codec.Marshal(in)
	require.NoError(t, err)

	var out network.ServerMessage
	require.NoError(t, codec.Unmarshal(data, &out))
	assert.Equal(t, *in, out)
}

func TestCodec_ClientMessage_WireFormat(t *testing.T) {
	data, err := network.Codec{}.Marshal(&network.ClientMessage{RequestResourcePath: "data://a.tex"})
	require.NoError(t, err)

	// Field 1, length-delimited.
	want := protowire.AppendString(protowire.AppendTag(nil, 1, protowire.BytesType), "data://a.tex")
	assert.Equal(t, want, data)
}

func TestCodec_SkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 123)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "data://b.mesh")

	var msg network.ClientMessage
	require.NoError(t, network.Codec{}.Unmarshal(b, &msg))
	assert.Equal(t, "data://b.mesh", msg.RequestResourcePath)
}

func TestCodec_Errors(t *testing.T) {
	codec := network.Codec{}

	_, err := codec.Marshal("not a message")
	require.ErrorContains(t, err, domain.ErrWireUnsupportedType.Error())

	var msg network.ServerMessage
	truncated := protowire.AppendTag(nil, 2, protowire.BytesType)
	truncated = append(truncated, 10, 'a')
	err = codec.Unmarshal(truncated, &msg)
	require.ErrorContains(t, err, domain.ErrWireDecode.Error())

	assert.Equal(t, network.CodecName, codec.Name())
}
