package protocol

import (
	"encoding/json"
	"errors"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/coder/websocket"
)

// Common codec errors.
var (
	ErrInvalidMessage = errors.New("invalid message format")
	ErrUnknownCodec   = errors.New("unknown codec type")
)

// SubprotocolMsgPack is the websocket subprotocol that selects MsgPackCodec.
const SubprotocolMsgPack = "vittin.msgpack"

// Codec handles frame encoding/decoding.
type Codec interface {
	// Encode serializes a frame to bytes.
	Encode(f *Frame) ([]byte, error)

	// Decode deserializes bytes to a frame.
	Decode(data []byte) (*Frame, error)

	// Name returns the codec name.
	Name() string

	// MessageType is the websocket message type the codec writes.
	MessageType() websocket.MessageType
}

// JSONCodec implements Codec using JSON text frames.
type JSONCodec struct{}

// Encode encodes a frame to JSON.
func (JSONCodec) Encode(f *Frame) ([]byte, error) {
	return json.Marshal(f)
}

// Decode decodes JSON to a frame.
func (JSONCodec) Decode(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrInvalidMessage, err)
	}
	return &f, nil
}

// Name returns "json".
func (JSONCodec) Name() string { return "json" }

// MessageType returns websocket.MessageText.
func (JSONCodec) MessageType() websocket.MessageType { return websocket.MessageText }

// MsgPackCodec implements Codec using MessagePack binary frames.
type MsgPackCodec struct{}

// Encode encodes a frame to MsgPack.
func (MsgPackCodec) Encode(f *Frame) ([]byte, error) {
	return msgpack.Marshal(f)
}

// Decode decodes MsgPack to a frame.
func (MsgPackCodec) Decode(data []byte) (*Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrInvalidMessage, err)
	}
	return &f, nil
}

// Name returns "msgpack".
func (MsgPackCodec) Name() string { return "msgpack" }

// MessageType returns websocket.MessageBinary.
func (MsgPackCodec) MessageType() websocket.MessageType { return websocket.MessageBinary }

// Subprotocols lists the websocket subprotocols the server accepts.
func Subprotocols() []string {
	return []string{SubprotocolMsgPack}
}

// ForSubprotocol picks the codec negotiated on a websocket connection. An
// empty subprotocol means JSON.
func ForSubprotocol(name string) (Codec, error) {
	switch name {
	case "":
		return JSONCodec{}, nil
	case SubprotocolMsgPack:
		return MsgPackCodec{}, nil
	default:
		return nil, ErrUnknownCodec
	}
}
