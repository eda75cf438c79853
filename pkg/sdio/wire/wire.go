package wire

import "errors"

// ErrMalformed marks request payloads shorter than their fixed layout.
var ErrMalformed = errors.New("malformed sdio payload")

// SDIO operation types.
const (
	OpProtocolVersion = byte(0x01)
	OpGetCapabilities = byte(0x02)
	OpSetIOs          = byte(0x03)
	OpCommand         = byte(0x04)
	OpTransfer        = byte(0x05)
)

func OpString(t byte) string {
	switch t {
	case OpProtocolVersion:
		return "ProtocolVersion"
	case OpGetCapabilities:
		return "GetCapabilities"
	case OpSetIOs:
		return "SetIOs"
	case OpCommand:
		return "Command"
	case OpTransfer:
		return "Transfer"
	}
	return "unknown"
}

// Capability bitmask flags.
const (
	Cap4BitData   = uint32(0x00000002)
	Cap8BitData   = uint32(0x00000004)
	CapMMCHS      = uint32(0x00000008)
	CapSDHS       = uint32(0x00000010)
	CapHS200_1_2V = uint32(0x00020000)
)

// Bus drive mode values.
const (
	BusModeOpenDrain = uint8(0x00)
	BusModePushPull  = uint8(0x01)
)

// Power mode values.
const (
	PowerOff = uint8(0x00)
	PowerUp  = uint8(0x01)
	PowerOn  = uint8(0x02)
)

// Bus width values.
const (
	BusWidth1 = uint8(0x00)
	BusWidth4 = uint8(0x02)
	BusWidth8 = uint8(0x03)
)

// Timing values.
const (
	TimingLegacy = uint8(0x00)
	TimingMMCHS  = uint8(0x01)
	TimingSDHS   = uint8(0x02)
)

// Signal voltage values.
const (
	SignalVoltage330 = uint8(0x00)
	SignalVoltage180 = uint8(0x01)
	SignalVoltage120 = uint8(0x02)
)

// Command flags.
const (
	RspPresent = uint8(0x01)
	Rsp136     = uint8(0x02)
	RspBusy    = uint8(0x10)
)

// Transfer data flags.
const (
	DataWrite = uint8(0x01)
	DataRead  = uint8(0x02)
)
