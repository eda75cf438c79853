package wire

type VersionResponse struct {
	Major uint8
	Minor uint8
}

const VersionResponseSize = 2

func EncodeVersionResponse(buff []byte, v *VersionResponse) {
	buff[0] = v.Major
	buff[1] = v.Minor
}

func DecodeVersionResponse(buff []byte) (*VersionResponse, error) {
	if len(buff) < VersionResponseSize {
		return nil, ErrMalformed
	}
	return &VersionResponse{Major: buff[0], Minor: buff[1]}, nil
}
