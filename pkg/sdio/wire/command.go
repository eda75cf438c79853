package wire

import "encoding/binary"

type CommandRequest struct {
	Cmd        uint8
	CmdFlags   uint8
	CmdArg     uint32
	DataBlocks uint16
	DataBlksz  uint16
}

const CommandRequestSize = 10

func EncodeCommandRequest(r *CommandRequest) []byte {
	buff := make([]byte, CommandRequestSize)
	buff[0] = r.Cmd
	buff[1] = r.CmdFlags
	binary.LittleEndian.PutUint32(buff[2:], r.CmdArg)
	binary.LittleEndian.PutUint16(buff[6:], r.DataBlocks)
	binary.LittleEndian.PutUint16(buff[8:], r.DataBlksz)
	return buff
}

func DecodeCommandRequest(buff []byte) (*CommandRequest, error) {
	if len(buff) < CommandRequestSize {
		return nil, ErrMalformed
	}
	return &CommandRequest{
		Cmd:        buff[0],
		CmdFlags:   buff[1],
		CmdArg:     binary.LittleEndian.Uint32(buff[2:]),
		DataBlocks: binary.LittleEndian.Uint16(buff[6:]),
		DataBlksz:  binary.LittleEndian.Uint16(buff[8:]),
	}, nil
}

type CommandResponse struct {
	Resp [4]uint32
}

const CommandResponseSize = 16

// EncodeCommandResponse writes the four response registers in wire
// order, little-endian regardless of host byte order.
func EncodeCommandResponse(buff []byte, r *CommandResponse) {
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(buff[i*4:], r.Resp[i])
	}
}

func DecodeCommandResponse(buff []byte) (*CommandResponse, error) {
	if len(buff) < CommandResponseSize {
		return nil, ErrMalformed
	}
	r := &CommandResponse{}
	for i := 0; i < 4; i++ {
		r.Resp[i] = binary.LittleEndian.Uint32(buff[i*4:])
	}
	return r, nil
}
