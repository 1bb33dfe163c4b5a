package render

import (
	"image/color"

	"gpu-life/internal/core"
)

var (
	// AliveColor is how a live cell is encoded: every colour channel at 0xff.
	AliveColor color.Color = color.White
	// DeadColor keeps the state channel at zero and alpha opaque.
	DeadColor color.Color = color.Black
)

// FillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * core.Channels
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// EncodeCells returns a device frame for binary cell data.
func EncodeCells(cells []uint8) []byte {
	buf := make([]byte, len(cells)*core.Channels)
	FillBinaryRGBA(buf, cells, AliveColor, DeadColor)
	return buf
}

// DecodeCells reads the state channel of a frame back into 0/1 cells.
func DecodeCells(pix []byte) []uint8 {
	cells := make([]uint8, len(pix)/core.Channels)
	for i := range cells {
		if pix[i*core.Channels+core.StateChannel] == core.Alive {
			cells[i] = 1
		}
	}
	return cells
}

// Population counts live cells in a frame.
func Population(pix []byte) int {
	n := 0
	for i := core.StateChannel; i < len(pix); i += core.Channels {
		if pix[i] == core.Alive {
			n++
		}
	}
	return n
}

// SetCell writes one cell's display pixel. Out-of-range coordinates are ignored.
func SetCell(pix []byte, size core.Size, x, y int, alive bool) {
	if !size.Contains(x, y) {
		return
	}
	v := core.Dead
	if alive {
		v = core.Alive
	}
	base := size.Index(x, y) * core.Channels
	pix[base+0] = v
	pix[base+1] = v
	pix[base+2] = v
	pix[base+3] = 0xff
}
