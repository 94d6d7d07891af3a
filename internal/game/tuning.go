package game

import "math"

// Tuning holds the mine density curve. A board of area A receives
// round(A²·DensityA + A·DensityB + DensityC) mines, so density grows
// sub-linearly for large boards and approaches a small constant for tiny
// ones. The curve shape (quadratic in area, positive intercept) is part of
// the engine contract; the constants are only a difficulty knob.
type Tuning struct {
	DensityA float64
	DensityB float64
	DensityC float64
}

// DefaultTuning is the stock difficulty curve. Pinned values: 5x5 board
// yields 3 mines, 10x5 yields 6, 9x9 yields 10, 10x10 yields 12,
// 16x16 yields 38, 30x16 yields 92.
var DefaultTuning = Tuning{
	DensityA: 0.0002,
	DensityB: 0.0938,
	DensityC: 0.8937,
}

// MineCount maps a board area to its mine count.
func (t Tuning) MineCount(area int) int {
	a := float64(area)
	return int(math.Round(a*a*t.DensityA + a*t.DensityB + t.DensityC))
}
