package sdhc

import "errors"

// Sentinel errors reported by controller implementations. The operation
// layer maps these onto wire result codes in one place.
var ErrTimeout = errors.New("sdhc: command timeout")
var ErrBusy = errors.New("sdhc: controller busy")
var ErrIO = errors.New("sdhc: io error")
var ErrInvalid = errors.New("sdhc: invalid argument")
var ErrNotSupported = errors.New("sdhc: operation not supported")
var ErrNoCard = errors.New("sdhc: no card present")
var ErrNotReady = errors.New("sdhc: controller not ready")

// ResponseKind selects how many response bits a command returns and
// whether the card signals busy afterwards.
type ResponseKind int

const (
	ResponseNone ResponseKind = iota
	ResponseR1
	ResponseR1b
	ResponseR2
)

// Common SD/MMC command opcodes used by the simulator and tests.
const (
	CmdGoIdleState      = 0
	CmdSendStatus       = 13
	CmdReadSingleBlock  = 17
	CmdReadMultiple     = 18
	CmdWriteSingleBlock = 24
	CmdWriteMultiple    = 25
)

// CardStatusReadyForData is the R1 status pattern for a card in the
// transfer state with its buffer empty.
const CardStatusReadyForData = uint32(0x00000900)

// Command is one bus command. Request fills Response on success.
type Command struct {
	Opcode   uint8
	Arg      uint32
	Response ResponseKind
	Resp     [4]uint32
}

// DataDirection says which way a data phase moves bytes.
type DataDirection int

const (
	DataRead DataDirection = iota
	DataWrite
)

// Data describes the data phase attached to a command. Buf must hold
// Blocks*BlockSize bytes; Request fills it on a read and consumes it on
// a write.
type Data struct {
	BlockSize uint16
	Blocks    uint16
	Direction DataDirection
	Buf       []byte
}

// HostCaps are the boolean capabilities a controller advertises.
type HostCaps struct {
	Bus4Bit   bool
	Bus8Bit   bool
	HighSpeed bool
	Vol330    bool
	Vol300    bool
	Vol180    bool
}

// HostProps describes a controller: frequency bounds and capabilities.
type HostProps struct {
	FMin uint32
	FMax uint32
	Caps HostCaps
}

// BusMode is the command line drive mode.
type BusMode int

const (
	BusModeOpenDrain BusMode = iota
	BusModePushPull
)

type PowerMode int

const (
	PowerOff PowerMode = iota
	PowerOn
)

type BusWidth int

const (
	BusWidth1Bit BusWidth = 1
	BusWidth4Bit BusWidth = 4
	BusWidth8Bit BusWidth = 8
)

type Timing int

const (
	TimingLegacy Timing = iota
	TimingHighSpeed
)

type SignalVoltage int

const (
	Voltage330 SignalVoltage = iota
	Voltage180
	Voltage120
)

// IO is the bus configuration applied with SetIO.
type IO struct {
	Clock         uint32
	BusMode       BusMode
	PowerMode     PowerMode
	BusWidth      BusWidth
	Timing        Timing
	SignalVoltage SignalVoltage
}

// Controller is the host controller contract consumed by the bridge.
// Every method is a full contract: an implementation that cannot perform
// an operation returns ErrNotSupported rather than being absent.
//
// Request blocks for the physical duration of the command; there is no
// cancellation once a command has been issued.
type Controller interface {
	// HostProps reports the controller's static properties.
	HostProps() (*HostProps, error)

	// SetIO applies a bus configuration.
	SetIO(io *IO) error

	// Request issues cmd, with an optional data phase, and fills
	// cmd.Resp on success.
	Request(cmd *Command, data *Data) error

	// CardPresent reports whether a card is inserted.
	CardPresent() bool

	// Reset returns the controller to its power-on state.
	Reset() error
}
