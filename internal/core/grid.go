package core

const (
	// Channels is the number of bytes per pixel in a device frame (RGBA8).
	Channels = 4

	// StateChannel is the offset of the channel carrying cell state.
	StateChannel = 0

	// Alive and Dead are the only values the state channel may hold.
	Alive uint8 = 0xff
	Dead  uint8 = 0x00
)

// Limits bounds the images a device is willing to allocate.
type Limits struct {
	MaxSide  int
	MaxBytes int
}

// DefaultLimits matches the largest texture ebiten guarantees on desktop GPUs.
var DefaultLimits = Limits{MaxSide: 8192, MaxBytes: 8192 * 8192 * Channels}

// Check returns an *AllocationError when size does not fit within l.
func (l Limits) Check(size Size) error {
	if size.W <= 0 || size.H <= 0 {
		return &AllocationError{Size: size, Reason: "dimensions must be positive"}
	}
	if l.MaxSide > 0 && (size.W > l.MaxSide || size.H > l.MaxSide) {
		return &AllocationError{Size: size, Reason: "side exceeds device limit"}
	}
	if l.MaxBytes > 0 && int64(size.W)*int64(size.H)*Channels > int64(l.MaxBytes) {
		return &AllocationError{Size: size, Reason: "image exceeds device byte limit"}
	}
	return nil
}

// Index returns the linear cell index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// Resolve maps a possibly out-of-range neighbour coordinate back onto the grid.
func (b Boundary) Resolve(x, y int, s Size) (int, int) {
	if b == BoundaryClamp {
		return clamp(x, 0, s.W-1), clamp(y, 0, s.H-1)
	}
	x = (x%s.W + s.W) % s.W
	y = (y%s.H + s.H) % s.H
	return x, y
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
