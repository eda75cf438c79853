package greybus

import (
	"io"

	"github.com/loopholelabs/logging/types"
)

// Handler processes one operation at a time for a bound channel.
type Handler interface {
	Handle(op *Operation) Result
}

// Driver binds protocol handlers to channels. Bind runs before any
// operation is delivered; a bind error is fatal for the channel. Unbind
// releases everything the handler owns, including partial protocol
// state.
type Driver interface {
	Bind(cport uint16) (Handler, error)
	Unbind(cport uint16, h Handler)
}

// Channel runs one logical endpoint over a framed reader/writer pair.
//
// Serve reads, handles and responds to one message at a time on a single
// goroutine, so a handler never sees two operations in flight. Handlers
// that keep state across operations rely on this.
type Channel struct {
	cport   uint16
	rw      io.ReadWriter
	driver  Driver
	handler Handler
	logger  types.Logger
}

func NewChannel(cport uint16, rw io.ReadWriter, driver Driver, logger types.Logger) (*Channel, error) {
	handler, err := driver.Bind(cport)
	if err != nil {
		if logger != nil {
			logger.Error().Int("cport", int(cport)).Err(err).Msg("channel bind failed")
		}
		return nil, err
	}
	return &Channel{
		cport:   cport,
		rw:      rw,
		driver:  driver,
		handler: handler,
		logger:  logger,
	}, nil
}

// Serve delivers operations until the reader fails or is closed. The
// handler stays bound afterwards; call Close to release it.
func (c *Channel) Serve() error {
	for {
		m, err := ReadMessage(c.rw)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if IsResponse(m.Type) {
			if c.logger != nil {
				c.logger.Warn().Int("cport", int(c.cport)).Int("type", int(m.Type)).Msg("dropping unexpected response message")
			}
			continue
		}

		op := newOperationFromMessage(m)
		result := c.handler.Handle(op)

		resp := &Message{
			ID:     m.ID,
			Type:   ResponseType(m.Type),
			Result: result,
		}
		if result == ResultSuccess {
			resp.Payload = op.Response()
		}
		if err := WriteMessage(c.rw, resp); err != nil {
			return err
		}
	}
}

// Close unbinds the handler. Any protocol state still held for this
// channel is discarded, not executed.
func (c *Channel) Close() {
	c.driver.Unbind(c.cport, c.handler)
}
