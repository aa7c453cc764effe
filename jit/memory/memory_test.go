package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRAM(t *testing.T) {
	r := NewRAMWords(0x1000, 0xE2821005, 0xEA000000)

	assert.Equal(t, uint32(0xE2821005), r.Read32(0x1000))
	assert.Equal(t, uint32(0xEA000000), r.Read32(0x1004))

	// Out of range reads return zero.
	assert.Equal(t, uint32(0), r.Read32(0x1008))
	assert.Equal(t, uint32(0), r.Read32(0x0FFC))
	assert.Equal(t, uint32(0), r.Read32(0xFFFFFFFC))
}

func TestRAMLittleEndian(t *testing.T) {
	r := NewRAM(0, []byte{0x05, 0x10, 0x82, 0xE2})

	assert.Equal(t, uint32(0xE2821005), r.Read32(0))
}
