package wire

import "encoding/binary"

type TransferRequest struct {
	DataFlags  uint8
	DataBlocks uint16
	DataBlksz  uint16
	// Data is present on writes, sliced from the request payload.
	Data []byte
}

const TransferRequestSize = 5

func EncodeTransferRequest(r *TransferRequest) []byte {
	buff := make([]byte, TransferRequestSize+len(r.Data))
	buff[0] = r.DataFlags
	binary.LittleEndian.PutUint16(buff[1:], r.DataBlocks)
	binary.LittleEndian.PutUint16(buff[3:], r.DataBlksz)
	copy(buff[TransferRequestSize:], r.Data)
	return buff
}

func DecodeTransferRequest(buff []byte) (*TransferRequest, error) {
	if len(buff) < TransferRequestSize {
		return nil, ErrMalformed
	}
	return &TransferRequest{
		DataFlags:  buff[0],
		DataBlocks: binary.LittleEndian.Uint16(buff[1:]),
		DataBlksz:  binary.LittleEndian.Uint16(buff[3:]),
		Data:       buff[TransferRequestSize:],
	}, nil
}

type TransferResponse struct {
	DataBlocks uint16
	DataBlksz  uint16
	// Data carries the read payload; empty on writes.
	Data []byte
}

const TransferResponseSize = 4

// EncodeTransferResponseHeader fills the fixed header in front of any
// read data already placed at buff[TransferResponseSize:].
func EncodeTransferResponseHeader(buff []byte, blocks uint16, blksz uint16) {
	binary.LittleEndian.PutUint16(buff, blocks)
	binary.LittleEndian.PutUint16(buff[2:], blksz)
}

func DecodeTransferResponse(buff []byte) (*TransferResponse, error) {
	if len(buff) < TransferResponseSize {
		return nil, ErrMalformed
	}
	return &TransferResponse{
		DataBlocks: binary.LittleEndian.Uint16(buff),
		DataBlksz:  binary.LittleEndian.Uint16(buff[2:]),
		Data:       buff[TransferResponseSize:],
	}, nil
}
