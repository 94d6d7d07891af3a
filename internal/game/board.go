package game

import (
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"strings"
)

var Log *slog.Logger = slog.Default()

// Phase is the coarse game state.
type Phase uint8

const (
	Initial Phase = iota
	Playing
	// Won is a reachable value for collaborators to branch on; the engine
	// never computes it itself.
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case Initial:
		return "initial"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "invalid"
	}
}

// Board owns the rectangular grid of cells, the mine counters and the game
// phase. Cells are stored row-major (index = y*width + x). A Board is not
// safe for concurrent use; callers serialize access.
type Board struct {
	width, height int
	cells         []Cell
	total         int
	remaining     int
	phase         Phase
	tuning        Tuning
	rnd           *rand.Rand
}

// New creates a board with the default density curve and seeds its mines.
// A nil rnd falls back to an entropy-seeded source; tests pass a seeded one
// to pin mine placement.
func New(width, height int, rnd *rand.Rand) (*Board, error) {
	return NewTuned(width, height, DefaultTuning, rnd)
}

// NewTuned creates a board with a custom density curve.
func NewTuned(width, height int, tuning Tuning, rnd *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, InvalidDimensionsError{Width: width, Height: height}
	}
	if mines := tuning.MineCount(width * height); mines >= width*height {
		return nil, InvalidDimensionsError{Width: width, Height: height, Mines: mines}
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	b := &Board{width: width, height: height, tuning: tuning, rnd: rnd}
	b.Reset()
	return b, nil
}

// Reset wipes the grid and draws a fresh random mine placement. Mine
// placement resamples on collision, which is fine at this curve's densities.
func (b *Board) Reset() {
	mines := b.tuning.MineCount(b.width * b.height)
	b.Clear()
	for placed := 0; placed < mines; {
		i := b.rnd.IntN(len(b.cells))
		if b.cells[i] == Unknown(true) {
			continue
		}
		b.cells[i] = Unknown(true)
		placed++
	}
	b.total = mines
	b.remaining = mines
	b.phase = Initial
	Log.Debug("board generated",
		slog.Int("width", b.width),
		slog.Int("height", b.height),
		slog.Int("mines", mines),
	)
}

// Clear wipes every cell back to covered and unmined without placing new
// mines. The counters are left alone; Reset is the full regeneration.
func (b *Board) Clear() {
	b.cells = make([]Cell, b.width*b.height)
	b.phase = Initial
}

func (b *Board) Width() int { return b.width }

func (b *Board) Height() int { return b.height }

// Total returns the number of mines placed at generation time.
func (b *Board) Total() int { return b.total }

// Remaining returns the player-facing mine counter. It tracks marking
// actions, not ground truth, so a mis-flag still decrements it.
func (b *Board) Remaining() int { return b.remaining }

func (b *Board) State() Phase { return b.phase }

func (b *Board) index(x, y int) int { return y*b.width + x }

func (b *Board) check(x, y int) error {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return OutOfBoundsError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	return nil
}

func (b *Board) CellAt(x, y int) (Cell, error) {
	if err := b.check(x, y); err != nil {
		return Cell{}, err
	}
	return b.cells[b.index(x, y)], nil
}

// IsMined reports whether the cell currently reads as a mine: covered with a
// mine underneath, or a detonated mine. A flagged or questioned mine does
// not count; use HasMine for ground truth.
func (b *Board) IsMined(x, y int) (bool, error) {
	if err := b.check(x, y); err != nil {
		return false, err
	}
	c := b.cells[b.index(x, y)]
	return c == Unknown(true) || c == Known(true), nil
}

// HasMine reports the cell's ground truth regardless of its wrapper.
func (b *Board) HasMine(x, y int) (bool, error) {
	if err := b.check(x, y); err != nil {
		return false, err
	}
	return b.cells[b.index(x, y)].Mined, nil
}

// Flag marks a covered or questioned cell as a suspected mine and decrements
// the remaining counter, floored at zero.
func (b *Board) Flag(x, y int) error {
	if err := b.check(x, y); err != nil {
		return err
	}
	i := b.index(x, y)
	switch b.cells[i].Kind {
	case KindUnknown, KindQuestioned:
		b.cells[i] = Flagged(b.cells[i].Mined)
		if b.remaining > 0 {
			b.remaining--
		}
	}
	b.phase = Playing
	return nil
}

// Question marks a covered or flagged cell as uncertain. Demoting a flag
// gives its count back to the remaining counter.
func (b *Board) Question(x, y int) error {
	if err := b.check(x, y); err != nil {
		return err
	}
	i := b.index(x, y)
	switch b.cells[i].Kind {
	case KindUnknown:
		b.cells[i] = Questioned(b.cells[i].Mined)
	case KindFlagged:
		b.cells[i] = Questioned(b.cells[i].Mined)
		b.remaining++
	}
	b.phase = Playing
	return nil
}

// SetUnknown clears any player mark or reveal from a cell, covering it
// again. A previously counted cell is definitionally unmined.
func (b *Board) SetUnknown(x, y int) error {
	if err := b.check(x, y); err != nil {
		return err
	}
	i := b.index(x, y)
	switch b.cells[i].Kind {
	case KindFlagged:
		b.cells[i] = Unknown(b.cells[i].Mined)
		b.remaining++
	case KindKnown, KindQuestioned:
		b.cells[i] = Unknown(b.cells[i].Mined)
	case KindCounted:
		b.cells[i] = Unknown(false)
	}
	return nil
}

// ShowMined reveals every still-covered mine, used after a loss. Flagged and
// questioned mines keep their marks.
func (b *Board) ShowMined() {
	for i, c := range b.cells {
		if c == Unknown(true) {
			b.cells[i] = Known(true)
		}
	}
}

// Uncover reveals a cell and returns the resulting phase. Revealing a mine
// loses the game; a safe cell with no adjacent mines floods the whole
// zero-count region. The board freezes once lost.
func (b *Board) Uncover(x, y int) (Phase, error) {
	if err := b.check(x, y); err != nil {
		return b.phase, err
	}
	if b.phase == Lost {
		return Lost, nil
	}
	b.phase = Playing
	i := b.index(x, y)
	switch c := b.cells[i]; c.Kind {
	case KindUnknown, KindFlagged, KindQuestioned:
		if c.Mined {
			b.cells[i] = Known(true)
			b.phase = Lost
			break
		}
		if n := b.neighborCount(x, y); n != 0 {
			b.cells[i] = Counted(uint8(n))
			break
		}
		b.flood(x, y)
	}
	return b.phase, nil
}

type point struct{ x, y int }

// flood reveals the maximal region of zero-count cells connected to the seed
// plus its border ring of counted cells, using an explicit work stack.
func (b *Board) flood(x, y int) {
	stack := []point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := b.neighborCount(p.x, p.y)
		if n != 0 {
			b.cells[b.index(p.x, p.y)] = Counted(uint8(n))
			continue
		}
		b.cells[b.index(p.x, p.y)] = Known(false)
		for yy := p.y - 1; yy <= p.y+1; yy++ {
			if yy < 0 || yy >= b.height {
				continue
			}
			for xx := p.x - 1; xx <= p.x+1; xx++ {
				if xx < 0 || xx >= b.width || (xx == p.x && yy == p.y) {
					continue
				}
				if b.cells[b.index(xx, yy)] == Unknown(false) {
					stack = append(stack, point{xx, yy})
				}
			}
		}
	}
}

// NeighborCount counts mines among the up-to-8 cells surrounding (x, y).
func (b *Board) NeighborCount(x, y int) (int, error) {
	if err := b.check(x, y); err != nil {
		return 0, err
	}
	return b.neighborCount(x, y), nil
}

// neighborCount scans the 3x3 block around (x, y), skipping the center and
// anything out of bounds. A neighbor's mark does not hide its mine.
func (b *Board) neighborCount(x, y int) int {
	count := 0
	for yy := y - 1; yy <= y+1; yy++ {
		if yy < 0 || yy >= b.height {
			continue
		}
		for xx := x - 1; xx <= x+1; xx++ {
			if xx < 0 || xx >= b.width || (xx == x && yy == y) {
				continue
			}
			switch c := b.cells[b.index(xx, yy)]; c.Kind {
			case KindUnknown, KindFlagged, KindQuestioned:
				if c.Mined {
					count++
				}
			}
		}
	}
	return count
}

// String renders the grid one glyph per cell, rows newline-separated. This
// is the view for non-graphical consumers.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			sb.WriteString(b.cells[b.index(x, y)].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
