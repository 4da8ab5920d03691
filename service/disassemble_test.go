package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lookbusy1344/arm-disassembler/isa"
	"github.com/lookbusy1344/arm-disassembler/loader"
)

func TestDisassembleARM(t *testing.T) {
	data := []byte{0x01, 0x00, 0xA0, 0xE3} // 0xE3A00001, mov r0, #0x1
	r := loader.NewWordReader(data, 0x8000)
	var d isa.Decoder

	entries := DisassembleARM(r, &d, isa.V5TE)

	assert.Len(t, entries, 1)
	assert.Equal(t, uint64(0x8000), entries[0].Address)
	assert.Equal(t, "mov r0, #0x1", entries[0].Mnemonic)
	assert.True(t, entries[0].Recognized)
	assert.Equal(t, 1, entries[0].Halfwords)
}

func TestDisassembleThumbBLPair(t *testing.T) {
	// bl #0x4: prefix half-word 0xF000, suffix half-word 0xF800, little-endian.
	data := []byte{0x00, 0xF0, 0x00, 0xF8}
	r := loader.NewWordReader(data, 0)
	var d isa.Decoder

	entries := DisassembleThumb(r, &d, isa.V5TE)

	assert.Len(t, entries, 1)
	assert.Equal(t, "bl #0x4", entries[0].Mnemonic)
	assert.Equal(t, 2, entries[0].Halfwords)
	assert.Equal(t, uint64(0), d.NotRecognized())
}

func TestDisassembleThumbUnrecognizedIncrementsCounter(t *testing.T) {
	data := []byte{0xF0, 0xDE} // 0xDEF0, UDF path
	r := loader.NewWordReader(data, 0)
	var d isa.Decoder

	entries := DisassembleThumb(r, &d, isa.V5TE)

	assert.Len(t, entries, 1)
	assert.False(t, entries[0].Recognized)
	assert.Equal(t, "n/a", entries[0].Mnemonic)
	assert.Equal(t, uint64(1), d.NotRecognized())
}
