package sdio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beagleboard/gbridge/pkg/greybus"
	"github.com/beagleboard/gbridge/pkg/sdhc"
	"github.com/beagleboard/gbridge/pkg/sdio/wire"
)

func TestSetIOs(t *testing.T) {
	a, dev := newTestAdapter()

	result, op := handle(a, wire.OpSetIOs, wire.EncodeSetIOsRequest(&wire.SetIOsRequest{
		Clock:         25_000_000,
		BusMode:       wire.BusModeOpenDrain,
		PowerMode:     wire.PowerOn,
		BusWidth:      wire.BusWidth8,
		Timing:        wire.TimingSDHS,
		SignalVoltage: wire.SignalVoltage180,
	}))
	assert.Equal(t, greybus.ResultSuccess, result)
	assert.Nil(t, op.Response())

	require.NotNil(t, dev.io)
	assert.Equal(t, uint32(25_000_000), dev.io.Clock)
	assert.Equal(t, sdhc.BusModeOpenDrain, dev.io.BusMode)
	assert.Equal(t, sdhc.PowerOn, dev.io.PowerMode)
	assert.Equal(t, sdhc.BusWidth8Bit, dev.io.BusWidth)
	assert.Equal(t, sdhc.TimingHighSpeed, dev.io.Timing)
	assert.Equal(t, sdhc.Voltage180, dev.io.SignalVoltage)
}

func TestSetIOsFallbacks(t *testing.T) {
	a, dev := newTestAdapter()

	// Unrecognized values degrade to the named defaults.
	result, _ := handle(a, wire.OpSetIOs, wire.EncodeSetIOsRequest(&wire.SetIOsRequest{
		BusMode:       99,
		PowerMode:     99,
		BusWidth:      99,
		Timing:        99,
		SignalVoltage: 99,
	}))
	assert.Equal(t, greybus.ResultSuccess, result)

	require.NotNil(t, dev.io)
	assert.Equal(t, sdhc.BusModePushPull, dev.io.BusMode)
	assert.Equal(t, sdhc.PowerOff, dev.io.PowerMode)
	assert.Equal(t, sdhc.BusWidth1Bit, dev.io.BusWidth)
	assert.Equal(t, sdhc.TimingLegacy, dev.io.Timing)
	assert.Equal(t, sdhc.Voltage330, dev.io.SignalVoltage)
}

func TestSetIOsShortPayload(t *testing.T) {
	a, dev := newTestAdapter()

	result, _ := handle(a, wire.OpSetIOs, []byte{1, 2, 3, 4})
	assert.Equal(t, greybus.ResultInvalid, result)
	assert.Equal(t, 0, dev.ioSets)
}

func TestSetIOsHostFailure(t *testing.T) {
	a, dev := newTestAdapter()
	dev.ioErr = sdhc.ErrBusy

	result, _ := handle(a, wire.OpSetIOs, wire.EncodeSetIOsRequest(&wire.SetIOsRequest{}))
	assert.Equal(t, greybus.ResultRetry, result)
}

func TestPowerUpMapsToOn(t *testing.T) {
	a, dev := newTestAdapter()

	result, _ := handle(a, wire.OpSetIOs, wire.EncodeSetIOsRequest(&wire.SetIOsRequest{
		PowerMode: wire.PowerUp,
	}))
	require.Equal(t, greybus.ResultSuccess, result)
	assert.Equal(t, sdhc.PowerOn, dev.io.PowerMode)
}
