package sdio

import (
	"github.com/beagleboard/gbridge/pkg/greybus"
	"github.com/beagleboard/gbridge/pkg/sdio/wire"
)

const maxBlockSize0 = 512
const maxBlockSize1 = 1024
const maxBlockSize2 = 2048

// ocrPlaceholder reports 2.7-3.6V. The controller contract has no
// voltage range query, so every adapter reports this fixed window.
const ocrPlaceholder = uint32(0x00FF8000)

// scaleMaxBlockLength rounds a payload budget down to the nearest
// supported block size tier. Zero means not even one block fits.
func scaleMaxBlockLength(value int) uint16 {
	switch {
	case value < maxBlockSize0:
		return 0
	case value < maxBlockSize1:
		return maxBlockSize0
	case value < maxBlockSize2:
		return maxBlockSize1
	}
	return maxBlockSize2
}

func (a *Adapter) getCapabilities(op *greybus.Operation) greybus.Result {
	props, err := a.dev.HostProps()
	if err != nil {
		if a.logger != nil {
			a.logger.Error().Err(err).Msg("sdhc host props failed")
		}
		return greybus.ResultFromErr(err)
	}

	buff, err := op.AllocResponse(wire.CapabilitiesResponseSize)
	if err != nil {
		return greybus.ResultNoMemory
	}

	maxDataSize := scaleMaxBlockLength(greybus.MaxPayloadSize - wire.TransferResponseSize)
	if maxDataSize == 0 {
		return greybus.ResultInvalid
	}

	// Host capabilities to wire capability bits, best effort.
	caps := uint32(0)
	if props.Caps.Bus4Bit {
		caps |= wire.Cap4BitData
	}
	if props.Caps.Bus8Bit {
		caps |= wire.Cap8BitData
	}
	if props.Caps.HighSpeed {
		caps |= wire.CapSDHS | wire.CapMMCHS
	}
	if props.Caps.Vol330 {
		caps |= wire.CapHS200_1_2V // Partial mapping
	}

	wire.EncodeCapabilitiesResponse(buff, &wire.CapabilitiesResponse{
		Caps:        caps,
		OCR:         ocrPlaceholder,
		FMin:        props.FMin,
		FMax:        props.FMax,
		MaxBlkSize:  maxBlockSize0,
		MaxBlkCount: maxDataSize / maxBlockSize0,
	})
	return greybus.ResultSuccess
}
