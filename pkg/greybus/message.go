package greybus

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Operation messages are framed with a fixed 8 byte little-endian header
// {size u16, operation id u16, type u8, result u8, pad u16}. A response
// carries the request type with the top bit set.
const HeaderSize = 8
const MaxMessageSize = 2048
const MaxPayloadSize = MaxMessageSize - HeaderSize

const TypeResponse = byte(0x80)

var ErrInvalidMessage = errors.New("greybus: invalid message")

func IsResponse(t byte) bool {
	return t&TypeResponse == TypeResponse
}

// ResponseType returns the response type paired with a request type.
func ResponseType(t byte) byte {
	return t | TypeResponse
}

// Message is one framed operation message, request or response.
type Message struct {
	ID      uint16
	Type    byte
	Result  Result
	Payload []byte
}

func EncodeMessage(m *Message) ([]byte, error) {
	if len(m.Payload) > MaxPayloadSize {
		return nil, fmt.Errorf("payload %d exceeds %d: %w", len(m.Payload), MaxPayloadSize, ErrInvalidMessage)
	}
	buff := make([]byte, HeaderSize+len(m.Payload))
	binary.LittleEndian.PutUint16(buff, uint16(len(buff)))
	binary.LittleEndian.PutUint16(buff[2:], m.ID)
	buff[4] = m.Type
	buff[5] = byte(m.Result)
	copy(buff[HeaderSize:], m.Payload)
	return buff, nil
}

func DecodeMessage(buff []byte) (*Message, error) {
	if len(buff) < HeaderSize {
		return nil, ErrInvalidMessage
	}
	size := binary.LittleEndian.Uint16(buff)
	if int(size) != len(buff) || size > MaxMessageSize {
		return nil, ErrInvalidMessage
	}
	return &Message{
		ID:      binary.LittleEndian.Uint16(buff[2:]),
		Type:    buff[4],
		Result:  Result(buff[5]),
		Payload: buff[HeaderSize:],
	}, nil
}

// ReadMessage reads exactly one framed message from r.
func ReadMessage(r io.Reader) (*Message, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	size := binary.LittleEndian.Uint16(header)
	if size < HeaderSize || size > MaxMessageSize {
		return nil, ErrInvalidMessage
	}
	buff := make([]byte, size)
	copy(buff, header)
	if _, err := io.ReadFull(r, buff[HeaderSize:]); err != nil {
		return nil, err
	}
	return DecodeMessage(buff)
}

// WriteMessage frames and writes one message to w.
func WriteMessage(w io.Writer, m *Message) error {
	buff, err := EncodeMessage(m)
	if err != nil {
		return err
	}
	_, err = w.Write(buff)
	return err
}
