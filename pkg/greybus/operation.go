package greybus

import "fmt"

// Operation is one in-flight request/response pair as seen by a handler.
// The request payload is read-only; the response payload is allocated at
// most once and bounded by the message size.
type Operation struct {
	id       uint16
	opType   byte
	request  []byte
	response []byte
}

func NewOperation(opType byte, request []byte) *Operation {
	return &Operation{
		opType:  opType,
		request: request,
	}
}

func newOperationFromMessage(m *Message) *Operation {
	return &Operation{
		id:      m.ID,
		opType:  m.Type,
		request: m.Payload,
	}
}

func (op *Operation) Type() byte {
	return op.opType
}

// Request returns the raw request payload.
func (op *Operation) Request() []byte {
	return op.request
}

// AllocResponse allocates the response payload. Requests larger than the
// message budget fail with ErrNoMemory, which maps to the no-memory
// result on the wire.
func (op *Operation) AllocResponse(size int) ([]byte, error) {
	if size < 0 || size > MaxPayloadSize {
		return nil, fmt.Errorf("response of %d bytes: %w", size, ErrNoMemory)
	}
	op.response = make([]byte, size)
	return op.response, nil
}

// Response returns the allocated response payload, or nil if none was
// allocated.
func (op *Operation) Response() []byte {
	return op.response
}
