package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

type BridgeSchema struct {
	Listen  string          `hcl:"listen,optional"`
	Metrics string          `hcl:"metrics,optional"`
	Device  []*DeviceSchema `hcl:"device,block"`
}

// DeviceSchema configures one simulated card exposed by the bridge.
type DeviceSchema struct {
	Name      string `hcl:"name,label"`
	Size      string `hcl:"size,attr"`
	FMin      int    `hcl:"fmin,optional"`
	FMax      int    `hcl:"fmax,optional"`
	Bus4Bit   bool   `hcl:"bus4bit,optional"`
	Bus8Bit   bool   `hcl:"bus8bit,optional"`
	HighSpeed bool   `hcl:"highspeed,optional"`
}

func parseByteValue(val string) int64 {
	multiplier := int64(1)
	s := strings.Trim(strings.ToLower(val), " \t\r\n")
	if s == "" {
		return 0
	}

	suffix := s[len(s)-1:]
	switch suffix {
	case "b":
		multiplier = 1
		s = s[:len(s)-1]
	case "k":
		multiplier = 1024
		s = s[:len(s)-1]
	case "m":
		multiplier = 1024 * 1024
		s = s[:len(s)-1]
	case "g":
		multiplier = 1024 * 1024 * 1024
		s = s[:len(s)-1]
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return i * multiplier
}

func (ds *DeviceSchema) ByteSize() int64 {
	return parseByteValue(ds.Size)
}

func ReadSchema(path string) (*BridgeSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	s := new(BridgeSchema)
	return s, s.Decode(data)
}

func (s *BridgeSchema) Decode(data []byte) error {
	file, diag := hclsyntax.ParseConfig(data, "", hcl.Pos{Line: 1, Column: 1})
	if diag.HasErrors() {
		return diag.Errs()[0]
	}

	diag = gohcl.DecodeBody(file.Body, nil, s)
	if diag.HasErrors() {
		return diag.Errs()[0]
	}

	return nil
}

func (s *BridgeSchema) Encode() ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(s, f.Body())
	return f.Bytes(), nil
}
