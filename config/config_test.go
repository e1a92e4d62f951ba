package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	r := require.New(t)

	cfg := DefaultConfig()
	r.Error(cfg.Validate()) // no input source

	cfg.HexInput = "5678"
	r.NoError(cfg.Validate())

	cfg.InputFile = "chunk.bin"
	r.Error(cfg.Validate()) // both input sources

	cfg.HexInput = ""
	r.NoError(cfg.Validate())

	cfg.Fields = ""
	r.Error(cfg.Validate())
	cfg.Fields = DefaultFields

	cfg.Offset = -1
	r.Error(cfg.Validate())
	cfg.Offset = 0

	cfg.Length = -1
	r.Error(cfg.Validate())
	cfg.Length = 4
	r.NoError(cfg.Validate())
}
