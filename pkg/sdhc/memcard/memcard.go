package memcard

import (
	"fmt"
	"sync"

	"github.com/beagleboard/gbridge/pkg/sdhc"
)

/**
 * Simulated SD host controller backed by an in-memory card image.
 *
 * Block read/write commands move bytes against the image; anything else
 * completes immediately with a ready-for-data status. Useful for local
 * serving and tests where no hardware is around.
 */
type Card struct {
	data  []byte
	props sdhc.HostProps
	io    sdhc.IO
	lock  sync.Mutex
}

// DefaultProps mirrors a typical 4/8-bit high speed controller running
// at 400kHz to 50MHz.
func DefaultProps() sdhc.HostProps {
	return sdhc.HostProps{
		FMin: 400_000,
		FMax: 50_000_000,
		Caps: sdhc.HostCaps{
			Bus4Bit:   true,
			Bus8Bit:   true,
			HighSpeed: true,
			Vol330:    true,
			Vol300:    true,
			Vol180:    true,
		},
	}
}

func New(size int) *Card {
	return NewWithProps(size, DefaultProps())
}

func NewWithProps(size int, props sdhc.HostProps) *Card {
	return &Card{
		data:  make([]byte, size),
		props: props,
	}
}

func (c *Card) HostProps() (*sdhc.HostProps, error) {
	p := c.props
	return &p, nil
}

func (c *Card) SetIO(io *sdhc.IO) error {
	if io.Clock != 0 && (io.Clock < c.props.FMin || io.Clock > c.props.FMax) {
		return fmt.Errorf("clock %d outside %d..%d: %w", io.Clock, c.props.FMin, c.props.FMax, sdhc.ErrInvalid)
	}
	c.lock.Lock()
	c.io = *io
	c.lock.Unlock()
	return nil
}

// IO reports the last configuration applied with SetIO.
func (c *Card) IO() sdhc.IO {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.io
}

func (c *Card) Request(cmd *sdhc.Command, data *sdhc.Data) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if data != nil {
		if err := c.transfer(cmd, data); err != nil {
			return err
		}
	}

	cmd.Resp = [4]uint32{}
	if cmd.Response != sdhc.ResponseNone {
		cmd.Resp[0] = sdhc.CardStatusReadyForData
	}
	return nil
}

// transfer moves data.Blocks blocks between the card image and data.Buf.
// The command argument addresses the card in block units.
func (c *Card) transfer(cmd *sdhc.Command, data *sdhc.Data) error {
	length := int(data.Blocks) * int(data.BlockSize)
	if len(data.Buf) < length {
		return fmt.Errorf("buffer %d smaller than %d: %w", len(data.Buf), length, sdhc.ErrInvalid)
	}
	offset := int64(cmd.Arg) * int64(data.BlockSize)
	if offset+int64(length) > int64(len(c.data)) {
		return fmt.Errorf("transfer beyond card end: %w", sdhc.ErrInvalid)
	}

	switch cmd.Opcode {
	case sdhc.CmdReadSingleBlock, sdhc.CmdReadMultiple:
		if data.Direction != sdhc.DataRead {
			return fmt.Errorf("read command with write descriptor: %w", sdhc.ErrInvalid)
		}
		copy(data.Buf[:length], c.data[offset:])
	case sdhc.CmdWriteSingleBlock, sdhc.CmdWriteMultiple:
		if data.Direction != sdhc.DataWrite {
			return fmt.Errorf("write command with read descriptor: %w", sdhc.ErrInvalid)
		}
		copy(c.data[offset:], data.Buf[:length])
	default:
		return fmt.Errorf("opcode %d has no data phase here: %w", cmd.Opcode, sdhc.ErrNotSupported)
	}
	return nil
}

func (c *Card) CardPresent() bool {
	return true
}

func (c *Card) Reset() error {
	c.lock.Lock()
	c.io = sdhc.IO{}
	c.lock.Unlock()
	return nil
}

func (c *Card) Size() int {
	return len(c.data)
}
