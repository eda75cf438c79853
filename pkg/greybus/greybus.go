package greybus

import (
	"errors"

	"github.com/beagleboard/gbridge/pkg/sdhc"
)

// Result is the status byte carried in every response header.
type Result uint8

const (
	ResultSuccess      = Result(0x00)
	ResultInterrupted  = Result(0x01)
	ResultTimeout      = Result(0x02)
	ResultNoMemory     = Result(0x03)
	ResultProtocolBad  = Result(0x04)
	ResultOverflow     = Result(0x05)
	ResultInvalid      = Result(0x06)
	ResultRetry        = Result(0x07)
	ResultNonexistent  = Result(0x08)
	ResultUnknownError = Result(0xfe)
	ResultMalfunction  = Result(0xff)
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultInterrupted:
		return "interrupted"
	case ResultTimeout:
		return "timeout"
	case ResultNoMemory:
		return "no memory"
	case ResultProtocolBad:
		return "protocol bad"
	case ResultOverflow:
		return "overflow"
	case ResultInvalid:
		return "invalid"
	case ResultRetry:
		return "retry"
	case ResultNonexistent:
		return "nonexistent"
	case ResultMalfunction:
		return "malfunction"
	}
	return "unknown error"
}

// ErrNoMemory is returned by Operation.AllocResponse when the requested
// payload does not fit in one message.
var ErrNoMemory = errors.New("greybus: response allocation exhausted")

// ResultFromErr is the single mapping from host and local errors onto
// wire results. Many errors collapse onto few results; keeping this in
// one place keeps the collapse testable.
func ResultFromErr(err error) Result {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, ErrNoMemory):
		return ResultNoMemory
	case errors.Is(err, sdhc.ErrTimeout):
		return ResultTimeout
	case errors.Is(err, sdhc.ErrBusy):
		return ResultRetry
	case errors.Is(err, sdhc.ErrInvalid):
		return ResultInvalid
	case errors.Is(err, sdhc.ErrNotSupported):
		return ResultProtocolBad
	case errors.Is(err, sdhc.ErrNoCard), errors.Is(err, sdhc.ErrNotReady):
		return ResultNonexistent
	case errors.Is(err, sdhc.ErrIO):
		return ResultUnknownError
	}
	return ResultUnknownError
}
