package game

import "strconv"

// CellKind tags the visible wrapper around a cell's ground truth.
type CellKind uint8

const (
	KindUnknown    CellKind = iota // covered
	KindKnown                      // revealed; an empty cell or a detonated mine
	KindFlagged                    // marked as a suspected mine
	KindQuestioned                 // marked as uncertain
	KindCounted                    // revealed with 1-8 mined neighbors
)

// Cell is one grid square: a wrapper kind plus the immutable ground truth.
// The zero value is a covered, unmined cell. Count is meaningful only for
// KindCounted; a counted cell is never mined.
type Cell struct {
	Kind  CellKind
	Mined bool
	Count uint8
}

func Unknown(mined bool) Cell { return Cell{Kind: KindUnknown, Mined: mined} }

func Known(mined bool) Cell { return Cell{Kind: KindKnown, Mined: mined} }

func Flagged(mined bool) Cell { return Cell{Kind: KindFlagged, Mined: mined} }

func Questioned(mined bool) Cell { return Cell{Kind: KindQuestioned, Mined: mined} }

func Counted(n uint8) Cell { return Cell{Kind: KindCounted, Count: n} }

func (c Cell) String() string {
	switch c.Kind {
	case KindKnown:
		if c.Mined {
			return "*"
		}
		return "□"
	case KindCounted:
		return strconv.Itoa(int(c.Count))
	case KindFlagged:
		return "⚑"
	case KindQuestioned:
		return "?"
	default:
		return "■"
	}
}
