package sdio

import (
	"github.com/beagleboard/gbridge/pkg/greybus"
	"github.com/beagleboard/gbridge/pkg/sdhc"
	"github.com/beagleboard/gbridge/pkg/sdio/wire"
)

func responseKind(flags uint8) sdhc.ResponseKind {
	if flags&wire.RspPresent == 0 {
		return sdhc.ResponseNone
	}
	if flags&wire.Rsp136 != 0 {
		return sdhc.ResponseR2
	}
	if flags&wire.RspBusy != 0 {
		return sdhc.ResponseR1b
	}
	return sdhc.ResponseR1
}

// command executes a bus command immediately, or parks it in the
// deferred slot when a data phase is announced.
func (a *Adapter) command(op *greybus.Operation) greybus.Result {
	req, err := wire.DecodeCommandRequest(op.Request())
	if err != nil {
		if a.logger != nil {
			a.logger.Error().Msg("dropping short command message")
		}
		return greybus.ResultInvalid
	}

	cmd := &sdhc.Command{
		Opcode:   req.Cmd,
		Arg:      req.CmdArg,
		Response: responseKind(req.CmdFlags),
	}

	if req.DataBlocks > 0 {
		// Defer execution until the paired transfer arrives.
		a.deferred = cmd

		buff, err := op.AllocResponse(wire.CommandResponseSize)
		if err != nil {
			return greybus.ResultNoMemory
		}

		// The card has not seen the command yet, so answer with the
		// R1 ready-for-data pattern instead of a real status.
		wire.EncodeCommandResponse(buff, &wire.CommandResponse{
			Resp: [4]uint32{sdhc.CardStatusReadyForData, 0, 0, 0},
		})
		return greybus.ResultSuccess
	}

	if err := a.dev.Request(cmd, nil); err != nil {
		if a.logger != nil {
			a.logger.Error().Err(err).Int("opcode", int(cmd.Opcode)).Msg("sdhc request failed")
		}
		return greybus.ResultFromErr(err)
	}

	buff, err := op.AllocResponse(wire.CommandResponseSize)
	if err != nil {
		return greybus.ResultNoMemory
	}
	wire.EncodeCommandResponse(buff, &wire.CommandResponse{Resp: cmd.Resp})
	return greybus.ResultSuccess
}

// transfer consumes the deferred command together with its data phase.
// Once the controller has been asked to execute, the slot is cleared no
// matter how the request ends.
func (a *Adapter) transfer(op *greybus.Operation) greybus.Result {
	req, err := wire.DecodeTransferRequest(op.Request())
	if err != nil {
		if a.logger != nil {
			a.logger.Error().Msg("dropping short transfer message")
		}
		return greybus.ResultInvalid
	}

	if a.deferred == nil {
		if a.logger != nil {
			a.logger.Error().Msg("transfer request without deferred command")
		}
		return greybus.ResultInvalid
	}

	blocks := req.DataBlocks
	blksz := req.DataBlksz
	length := int(blocks) * int(blksz)

	switch {
	case req.DataFlags&wire.DataWrite != 0:
		if len(req.Data) < length {
			return greybus.ResultInvalid
		}

		data := &sdhc.Data{
			BlockSize: blksz,
			Blocks:    blocks,
			Direction: sdhc.DataWrite,
			Buf:       req.Data[:length],
		}
		cmd := a.deferred
		a.deferred = nil
		if err := a.dev.Request(cmd, data); err != nil {
			if a.logger != nil {
				a.logger.Error().Err(err).Int("opcode", int(cmd.Opcode)).Msg("sdhc write transfer failed")
			}
			return greybus.ResultFromErr(err)
		}

		buff, err := op.AllocResponse(wire.TransferResponseSize)
		if err != nil {
			return greybus.ResultNoMemory
		}
		wire.EncodeTransferResponseHeader(buff, blocks, blksz)

	case req.DataFlags&wire.DataRead != 0:
		buff, err := op.AllocResponse(wire.TransferResponseSize + length)
		if err != nil {
			return greybus.ResultNoMemory
		}

		data := &sdhc.Data{
			BlockSize: blksz,
			Blocks:    blocks,
			Direction: sdhc.DataRead,
			Buf:       buff[wire.TransferResponseSize:],
		}
		cmd := a.deferred
		a.deferred = nil
		if err := a.dev.Request(cmd, data); err != nil {
			if a.logger != nil {
				a.logger.Error().Err(err).Int("opcode", int(cmd.Opcode)).Msg("sdhc read transfer failed")
			}
			return greybus.ResultFromErr(err)
		}
		wire.EncodeTransferResponseHeader(buff, blocks, blksz)

	default:
		return greybus.ResultInvalid
	}

	return greybus.ResultSuccess
}
