package sdio

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/loopholelabs/logging/types"

	"github.com/beagleboard/gbridge/pkg/greybus"
	"github.com/beagleboard/gbridge/pkg/sdhc"
	"github.com/beagleboard/gbridge/pkg/sdio/wire"
)

const VersionMajor = 0
const VersionMinor = 1

// Metrics observes completed operations. Implementations must be safe
// for use from multiple channels.
type Metrics interface {
	ObserveOperation(opType byte, result greybus.Result)
}

/**
 * Adapter bridges one channel to a local SD host controller.
 *
 * Commands with a data phase cannot be expressed in one message, so they
 * arrive split: the Command operation parks the bus command in the
 * deferred slot, and the paired Transfer operation executes it together
 * with the data. The slot holds at most one command and is cleared
 * whenever a Transfer consumes it, whether the bus request worked or not.
 *
 * The adapter holds no lock. It relies on the channel delivering at most
 * one operation at a time.
 */
type Adapter struct {
	uuid     uuid.UUID
	dev      sdhc.Controller
	deferred *sdhc.Command
	logger   types.Logger
	metrics  Metrics
}

func NewAdapter(dev sdhc.Controller, logger types.Logger, metrics Metrics) *Adapter {
	return &Adapter{
		uuid:    uuid.New(),
		dev:     dev,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle routes one operation. Unrecognized types fail invalid with no
// side effects.
func (a *Adapter) Handle(op *greybus.Operation) greybus.Result {
	var result greybus.Result

	switch op.Type() {
	case wire.OpProtocolVersion:
		result = a.protocolVersion(op)
	case wire.OpGetCapabilities:
		result = a.getCapabilities(op)
	case wire.OpSetIOs:
		result = a.setIOs(op)
	case wire.OpCommand:
		result = a.command(op)
	case wire.OpTransfer:
		result = a.transfer(op)
	default:
		if a.logger != nil {
			a.logger.Error().Int("type", int(op.Type())).Msg("invalid sdio operation type")
		}
		result = greybus.ResultInvalid
	}

	if a.metrics != nil {
		a.metrics.ObserveOperation(op.Type(), result)
	}
	if a.logger != nil {
		a.logger.Trace().
			Str("uuid", a.uuid.String()).
			Str("op", wire.OpString(op.Type())).
			Str("result", result.String()).
			Msg("sdio operation")
	}
	return result
}

func (a *Adapter) protocolVersion(op *greybus.Operation) greybus.Result {
	buff, err := op.AllocResponse(wire.VersionResponseSize)
	if err != nil {
		return greybus.ResultNoMemory
	}
	wire.EncodeVersionResponse(buff, &wire.VersionResponse{
		Major: VersionMajor,
		Minor: VersionMinor,
	})
	return greybus.ResultSuccess
}

/**
 * Driver binds adapters to channels for a single host controller.
 */
type Driver struct {
	dev     sdhc.Controller
	logger  types.Logger
	metrics Metrics
}

func NewDriver(dev sdhc.Controller, logger types.Logger, metrics Metrics) *Driver {
	return &Driver{
		dev:     dev,
		logger:  logger,
		metrics: metrics,
	}
}

// Bind validates the controller and creates the per-channel adapter.
func (d *Driver) Bind(cport uint16) (greybus.Handler, error) {
	if d.dev == nil {
		return nil, fmt.Errorf("no sdhc device: %w", sdhc.ErrNoCard)
	}
	if _, err := d.dev.HostProps(); err != nil {
		return nil, fmt.Errorf("sdhc device not ready: %w", err)
	}
	if d.logger != nil {
		d.logger.Debug().Int("cport", int(cport)).Msg("sdio adapter bound")
	}
	return NewAdapter(d.dev, d.logger, d.metrics), nil
}

// Unbind drops the adapter state. A still-pending deferred command is
// discarded without being executed.
func (d *Driver) Unbind(cport uint16, h greybus.Handler) {
	a, ok := h.(*Adapter)
	if !ok {
		return
	}
	if a.deferred != nil && d.logger != nil {
		d.logger.Warn().
			Int("cport", int(cport)).
			Int("opcode", int(a.deferred.Opcode)).
			Msg("discarding deferred command on unbind")
	}
	a.deferred = nil
	a.dev = nil
}
