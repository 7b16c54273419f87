package testcommon

import (
	"encoding/binary"
)

// HeaderFields describes a synthetic DXR header. Zero values produce a
// header that is rejected, so tests start from ValidHeader.
type HeaderFields struct {
	Magic      string
	Type       string
	Width      uint32
	Height     uint32
	Precision  uint8
	SampleType uint8
	Compressed bool
	Channels   uint8
	Planarity  uint8
	Pedestal   uint32
	Stride     uint32
}

// ValidHeader returns a packed 12 bit coplanar Bayer0 header with a tight stride.
func ValidHeader(width uint32, height uint32) HeaderFields {
	return HeaderFields{
		Magic:      "DXR ",
		Type:       "Bayer0",
		Width:      width,
		Height:     height,
		Precision:  12,
		SampleType: 0,
		Compressed: true,
		Channels:   4,
		Planarity:  1,
		Pedestal:   0x100,
		Stride:     2 * width * 12 / 8,
	}
}

// BuildHeader lays out the 64 byte little endian header block.
func BuildHeader(h HeaderFields) []byte {
	b := make([]byte, 64)
	copy(b[0:4], h.Magic)
	copy(b[4:12], h.Type)
	binary.LittleEndian.PutUint32(b[20:], h.Width)
	binary.LittleEndian.PutUint32(b[24:], h.Height)
	b[28] = h.Precision
	b[32] = h.SampleType
	if h.Compressed {
		b[33] = 1
	}
	b[36] = h.Channels
	b[37] = h.Planarity
	binary.LittleEndian.PutUint32(b[44:], h.Pedestal)
	binary.LittleEndian.PutUint32(b[48:], h.Stride)
	return b
}

// PackSamples packs samples of the given bit width least significant bit
// first, the order the decoder reads them in.
func PackSamples(samples []uint32, width int) []byte {
	out := make([]byte, (len(samples)*width+7)/8)
	bit := 0
	for _, s := range samples {
		for i := 0; i < width; i++ {
			if s&(1<<uint(i)) != 0 {
				out[bit/8] |= 1 << uint(bit%8)
			}
			bit++
		}
	}
	return out
}

// PackRows packs each row separately and pads it to stride bytes. The last
// row is padded too unless trimLast is set.
func PackRows(rows [][]uint32, width int, stride int, trimLast bool) []byte {
	var out []byte
	for i, row := range rows {
		packed := PackSamples(row, width)
		out = append(out, packed...)
		if trimLast && i == len(rows)-1 {
			break
		}
		for j := len(packed); j < stride; j++ {
			out = append(out, 0xEE)
		}
	}
	return out
}

// BuildFile concatenates a header and packed pixel rows. A zero stride packs
// the rows back to back with no padding.
func BuildFile(h HeaderFields, rows [][]uint32) []byte {
	width := int(h.Precision)
	if !h.Compressed {
		width = 16
	}
	if h.Stride == 0 {
		var all []uint32
		for _, row := range rows {
			all = append(all, row...)
		}
		return append(BuildHeader(h), PackSamples(all, width)...)
	}
	return append(BuildHeader(h), PackRows(rows, width, int(h.Stride), false)...)
}

// FillRows builds 2*height rows of 2*width samples from fn(row, col).
func FillRows(width uint32, height uint32, fn func(row, col int) uint32) [][]uint32 {
	rows := make([][]uint32, 2*height)
	for r := range rows {
		rows[r] = make([]uint32, 2*width)
		for c := range rows[r] {
			rows[r][c] = fn(r, c)
		}
	}
	return rows
}
