package sdio

import (
	"github.com/beagleboard/gbridge/pkg/greybus"
	"github.com/beagleboard/gbridge/pkg/sdhc"
	"github.com/beagleboard/gbridge/pkg/sdio/wire"
)

// translateIOs maps a wire bus configuration onto the controller's.
// Every enumeration has a named fallback for values this side does not
// know, so a newer peer degrades instead of failing.
func translateIOs(req *wire.SetIOsRequest) *sdhc.IO {
	io := &sdhc.IO{Clock: req.Clock}

	switch req.BusMode {
	case wire.BusModeOpenDrain:
		io.BusMode = sdhc.BusModeOpenDrain
	case wire.BusModePushPull:
		io.BusMode = sdhc.BusModePushPull
	default:
		io.BusMode = sdhc.BusModePushPull
	}

	switch req.PowerMode {
	case wire.PowerOff:
		io.PowerMode = sdhc.PowerOff
	case wire.PowerUp:
		io.PowerMode = sdhc.PowerOn
	case wire.PowerOn:
		io.PowerMode = sdhc.PowerOn
	default:
		io.PowerMode = sdhc.PowerOff
	}

	switch req.BusWidth {
	case wire.BusWidth1:
		io.BusWidth = sdhc.BusWidth1Bit
	case wire.BusWidth4:
		io.BusWidth = sdhc.BusWidth4Bit
	case wire.BusWidth8:
		io.BusWidth = sdhc.BusWidth8Bit
	default:
		io.BusWidth = sdhc.BusWidth1Bit
	}

	switch req.Timing {
	case wire.TimingLegacy:
		io.Timing = sdhc.TimingLegacy
	case wire.TimingSDHS:
		io.Timing = sdhc.TimingHighSpeed
	case wire.TimingMMCHS:
		io.Timing = sdhc.TimingHighSpeed
	default:
		io.Timing = sdhc.TimingLegacy
	}

	// Voltage mapping approximated
	switch req.SignalVoltage {
	case wire.SignalVoltage330:
		io.SignalVoltage = sdhc.Voltage330
	case wire.SignalVoltage180:
		io.SignalVoltage = sdhc.Voltage180
	case wire.SignalVoltage120:
		io.SignalVoltage = sdhc.Voltage120
	default:
		io.SignalVoltage = sdhc.Voltage330
	}

	return io
}

func (a *Adapter) setIOs(op *greybus.Operation) greybus.Result {
	req, err := wire.DecodeSetIOsRequest(op.Request())
	if err != nil {
		if a.logger != nil {
			a.logger.Error().Msg("dropping short set_ios message")
		}
		return greybus.ResultInvalid
	}

	if err := a.dev.SetIO(translateIOs(req)); err != nil {
		if a.logger != nil {
			a.logger.Error().Err(err).Msg("sdhc set_io failed")
		}
		return greybus.ResultFromErr(err)
	}
	return greybus.ResultSuccess
}
