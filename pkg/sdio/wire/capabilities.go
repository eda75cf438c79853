package wire

import "encoding/binary"

type CapabilitiesResponse struct {
	Caps        uint32
	OCR         uint32
	FMin        uint32
	FMax        uint32
	MaxBlkSize  uint16
	MaxBlkCount uint16
}

const CapabilitiesResponseSize = 20

func EncodeCapabilitiesResponse(buff []byte, c *CapabilitiesResponse) {
	binary.LittleEndian.PutUint32(buff, c.Caps)
	binary.LittleEndian.PutUint32(buff[4:], c.OCR)
	binary.LittleEndian.PutUint32(buff[8:], c.FMin)
	binary.LittleEndian.PutUint32(buff[12:], c.FMax)
	binary.LittleEndian.PutUint16(buff[16:], c.MaxBlkSize)
	binary.LittleEndian.PutUint16(buff[18:], c.MaxBlkCount)
}

func DecodeCapabilitiesResponse(buff []byte) (*CapabilitiesResponse, error) {
	if len(buff) < CapabilitiesResponseSize {
		return nil, ErrMalformed
	}
	return &CapabilitiesResponse{
		Caps:        binary.LittleEndian.Uint32(buff),
		OCR:         binary.LittleEndian.Uint32(buff[4:]),
		FMin:        binary.LittleEndian.Uint32(buff[8:]),
		FMax:        binary.LittleEndian.Uint32(buff[12:]),
		MaxBlkSize:  binary.LittleEndian.Uint16(buff[16:]),
		MaxBlkCount: binary.LittleEndian.Uint16(buff[18:]),
	}, nil
}
