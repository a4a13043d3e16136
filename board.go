package nogo

import (
	"fmt"
	"strings"
)

// Board holds the full position: which points are stoned by each color,
// which points each color is forbidden from playing (the NoGo legality
// cache), and a per-color union-find of connected groups. Every field is a
// fixed-size array or struct of fixed-size arrays, so a Board is a plain
// value: assigning one Board to another deep-copies the whole position,
// which is exactly what tree search needs when it walks a line of play and
// wants to back out again.
type Board struct {
	stones [2]Mask
	forbid [2]Mask
	groups [2]DisjointSet
}

// NewBoard returns an empty 9x9 position. Every point is legal for both
// colors.
func NewBoard() Board {
	return Board{
		groups: [2]DisjointSet{NewDisjointSet(), NewDisjointSet()},
	}
}

// Stone reports the occupant of p, if any.
func (b *Board) Stone(p Point) (c Color, occupied bool) {
	if b.stones[Black].Test(int(p)) {
		return Black, true
	}
	if b.stones[White].Test(int(p)) {
		return White, true
	}
	return Black, false
}

// HasLegalMove reports whether c has at least one point to play.
func (b *Board) HasLegalMove(c Color) bool {
	return !b.forbid[c].Equal(fullMask)
}

// LegalMoves returns every point c may play.
func (b *Board) LegalMoves(c Color) Mask {
	return b.forbid[c].Not()
}

// SampleLegal draws one legal point for c uniformly at random. Callers must
// check HasLegalMove first.
func (b *Board) SampleLegal(c Color, rng *Rand) Point {
	legal := b.LegalMoves(c)
	n := legal.Count()
	idx := rng.Intn(n)
	return Point(legal.NthSet(idx))
}

func (b *Board) liberties(group Mask) Mask {
	occupied := b.stones[Black].Or(b.stones[White])
	return neighbors(group).AndNot(occupied)
}

// speculativeSelfKill reports whether color d playing at x, merged with any
// adjacent d-colored groups, would leave the resulting group with zero
// liberties. It does not mutate the board.
func (b *Board) speculativeSelfKill(d Color, x int) bool {
	merged := maskOf(x)
	for n := neighbors(maskOf(x)); !n.IsZero(); {
		q := n.FirstSet()
		n.Clear(q)
		if b.stones[d].Test(q) {
			merged = merged.Or(b.groups[d].ComponentOf(q))
		}
	}
	return b.liberties(merged).AndNot(maskOf(x)).IsZero()
}

// markCriticalLiberty checks the group containing groupMember (color
// owner). If it has exactly one liberty x, opponent is forbidden from
// playing x (that would capture the group, and NoGo forbids capturing),
// and owner is additionally forbidden from x if playing there would itself
// be self-kill.
func (b *Board) markCriticalLiberty(owner, opponent Color, groupMember int) {
	group := b.groups[owner].ComponentOf(groupMember)
	lib := b.liberties(group)
	if lib.Count() != 1 {
		return
	}
	x := lib.FirstSet()
	b.forbid[opponent].Set(x)
	if b.speculativeSelfKill(owner, x) {
		b.forbid[owner].Set(x)
	}
}

// Place plays c at p if legal, mutating the board and returning true. If p
// is forbidden for c, the board is left untouched and Place returns false.
func (b *Board) Place(c Color, p Point) bool {
	point := int(p)
	if b.forbid[c].Test(point) {
		return false
	}
	o := c.Opponent()

	b.stones[c].Set(point)
	b.forbid[c].Set(point)
	b.forbid[o].Set(point)

	adj := neighbors(maskOf(point))
	for n := adj; !n.IsZero(); {
		q := n.FirstSet()
		n.Clear(q)
		if b.stones[c].Test(q) {
			b.groups[c].Union(point, q)
		}
	}

	b.markCriticalLiberty(c, o, point)

	for n := adj; !n.IsZero(); {
		q := n.FirstSet()
		n.Clear(q)
		if b.stones[o].Test(q) {
			b.markCriticalLiberty(o, c, q)
		} else if !b.stones[Black].Test(q) && !b.stones[White].Test(q) {
			if b.speculativeSelfKill(o, q) {
				b.forbid[o].Set(q)
			}
		}
	}
	return true
}

// String renders the board the way showboard does, 9 at the top and A
// through J skipping I across the columns.
func (b *Board) String() string {
	var sb strings.Builder
	header := "  A B C D E F G H J\n"
	sb.WriteString(header)
	for row := 0; row < Size; row++ {
		rowNum := Size - row
		fmt.Fprintf(&sb, "%2d ", rowNum)
		for col := 0; col < Size; col++ {
			p := row*Size + col
			switch {
			case b.stones[Black].Test(p):
				sb.WriteByte('X')
			case b.stones[White].Test(p):
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d\n", rowNum)
	}
	sb.WriteString(header)
	return sb.String()
}
