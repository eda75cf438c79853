package greybus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageRoundTrip(t *testing.T) {
	m := &Message{
		ID:      42,
		Type:    0x04,
		Result:  ResultSuccess,
		Payload: []byte{1, 2, 3},
	}

	buff, err := EncodeMessage(m)
	assert.NoError(t, err)
	assert.Len(t, buff, HeaderSize+3)

	m2, err := DecodeMessage(buff)
	assert.NoError(t, err)
	assert.Equal(t, m.ID, m2.ID)
	assert.Equal(t, m.Type, m2.Type)
	assert.Equal(t, m.Result, m2.Result)
	assert.Equal(t, m.Payload, m2.Payload)

	// Make sure we can't decode silly things
	_, err = DecodeMessage(buff[:HeaderSize-1])
	assert.Error(t, err)

	// Size field must match the buffer
	_, err = DecodeMessage(buff[:HeaderSize])
	assert.Error(t, err)
}

func TestMessageTooLarge(t *testing.T) {
	_, err := EncodeMessage(&Message{
		Type:    0x05,
		Payload: make([]byte, MaxPayloadSize+1),
	})
	assert.Error(t, err)
}

func TestReadWriteMessage(t *testing.T) {
	var b bytes.Buffer

	err := WriteMessage(&b, &Message{ID: 7, Type: 0x01})
	assert.NoError(t, err)

	m, err := ReadMessage(&b)
	assert.NoError(t, err)
	assert.Equal(t, uint16(7), m.ID)
	assert.Equal(t, byte(0x01), m.Type)
	assert.Empty(t, m.Payload)
}

func TestResponseType(t *testing.T) {
	assert.False(t, IsResponse(0x04))
	assert.True(t, IsResponse(ResponseType(0x04)))
	assert.Equal(t, byte(0x84), ResponseType(0x04))
}
