package wire

import "encoding/binary"

type SetIOsRequest struct {
	Clock         uint32
	BusMode       uint8
	PowerMode     uint8
	BusWidth      uint8
	Timing        uint8
	SignalVoltage uint8
}

const SetIOsRequestSize = 9

func EncodeSetIOsRequest(r *SetIOsRequest) []byte {
	buff := make([]byte, SetIOsRequestSize)
	binary.LittleEndian.PutUint32(buff, r.Clock)
	buff[4] = r.BusMode
	buff[5] = r.PowerMode
	buff[6] = r.BusWidth
	buff[7] = r.Timing
	buff[8] = r.SignalVoltage
	return buff
}

func DecodeSetIOsRequest(buff []byte) (*SetIOsRequest, error) {
	if len(buff) < SetIOsRequestSize {
		return nil, ErrMalformed
	}
	return &SetIOsRequest{
		Clock:         binary.LittleEndian.Uint32(buff),
		BusMode:       buff[4],
		PowerMode:     buff[5],
		BusWidth:      buff[6],
		Timing:        buff[7],
		SignalVoltage: buff[8],
	}, nil
}
