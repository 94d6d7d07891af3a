package game

import "fmt"

type InvalidDimensionsError struct {
	Width, Height, Mines int
}

func (e InvalidDimensionsError) Error() string {
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Sprintf("cannot create a %dx%d board", e.Width, e.Height)
	}
	return fmt.Sprintf(
		"not enough space for %d mines on a %dx%d board",
		e.Mines, e.Width, e.Height,
	)
}

type OutOfBoundsError struct {
	X, Y, Width, Height int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"cell (%d, %d) is outside a %dx%d board",
		e.X, e.Y, e.Width, e.Height,
	)
}
