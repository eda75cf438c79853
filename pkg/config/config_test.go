package config

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConf = `
listen = ":4270"
metrics = ":9090"

device "sdio0" {
	size = "64m"
	fmin = 400000
	fmax = 50000000
	bus4bit = true
	highspeed = true
}
`

func TestDecode(t *testing.T) {
	s := new(BridgeSchema)
	err := s.Decode([]byte(testConf))
	require.NoError(t, err)

	assert.Equal(t, ":4270", s.Listen)
	assert.Equal(t, ":9090", s.Metrics)
	require.Len(t, s.Device, 1)

	ds := s.Device[0]
	assert.Equal(t, "sdio0", ds.Name)
	assert.Equal(t, int64(64*1024*1024), ds.ByteSize())
	assert.Equal(t, 400000, ds.FMin)
	assert.True(t, ds.Bus4Bit)
	assert.False(t, ds.Bus8Bit)
	assert.True(t, ds.HighSpeed)
}

func TestReadSchema(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "gbridge.conf")
	require.NoError(t, os.WriteFile(file, []byte(testConf), 0644))

	s, err := ReadSchema(file)
	require.NoError(t, err)
	assert.Equal(t, ":4270", s.Listen)

	_, err = ReadSchema(path.Join(dir, "missing.conf"))
	assert.Error(t, err)
}

func TestDecodeBad(t *testing.T) {
	s := new(BridgeSchema)
	err := s.Decode([]byte("device \"x\" {"))
	assert.Error(t, err)
}

func TestByteSizes(t *testing.T) {
	assert.Equal(t, int64(0), (&DeviceSchema{Size: ""}).ByteSize())
	assert.Equal(t, int64(512), (&DeviceSchema{Size: "512"}).ByteSize())
	assert.Equal(t, int64(4096), (&DeviceSchema{Size: "4k"}).ByteSize())
	assert.Equal(t, int64(1024*1024), (&DeviceSchema{Size: "1m"}).ByteSize())
}
