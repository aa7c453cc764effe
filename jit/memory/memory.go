// Package memory is the guest memory surface the translator fetches
// from. The translator only ever issues aligned 32-bit reads; fault
// reporting belongs to the memory subsystem, not to this interface.
package memory

import "encoding/binary"

type (
	// Memory provides the aligned little-endian word read the
	// translator uses to fetch instructions.
	Memory interface {
		Read32(addr uint32) uint32
	}

	// RAM is a flat little-endian image mapped at a base address.
	// Reads outside the image return zero.
	RAM struct {
		base uint32
		data []byte
	}
)

// NewRAM maps data at base.
func NewRAM(base uint32, data []byte) *RAM {
	return &RAM{base: base, data: data}
}

// NewRAMWords maps the given words at base, little endian.
func NewRAMWords(base uint32, words ...uint32) *RAM {
	data := make([]byte, 4*len(words))

	for i, w := range words {
		binary.LittleEndian.PutUint32(data[4*i:], w)
	}

	return NewRAM(base, data)
}

func (r *RAM) Read32(addr uint32) uint32 {
	off := addr - r.base
	if off > uint32(len(r.data)) || len(r.data)-int(off) < 4 {
		return 0
	}

	return binary.LittleEndian.Uint32(r.data[off:])
}
