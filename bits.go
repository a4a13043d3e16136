package nogo

import "math/bits"

// Size is the fixed board edge length. NoGo is played on a 9x9 board only;
// unlike Go, there is no variable board size negotiation.
const Size = 9

// NumPoints is the number of intersections on the board.
const NumPoints = Size * Size

const hiWidth = uint(NumPoints - 64) // bits living in the high word
const hiMask = uint64(1)<<hiWidth - 1

// Mask is an 81-bit set of points, stored as two 64-bit words. Go has no
// native 81-bit integer and bits.Set is overkill for a fixed-size board, so
// we carry the two words by hand the way a hand-rolled bitset would in C++.
type Mask struct {
	Lo uint64
	Hi uint64
}

func maskOf(p int) Mask {
	var m Mask
	m.Set(p)
	return m
}

// Test reports whether point p is a member.
func (m Mask) Test(p int) bool {
	if p < 64 {
		return m.Lo&(1<<uint(p)) != 0
	}
	return m.Hi&(1<<uint(p-64)) != 0
}

// Set adds point p.
func (m *Mask) Set(p int) {
	if p < 64 {
		m.Lo |= 1 << uint(p)
	} else {
		m.Hi |= 1 << uint(p-64)
	}
}

// Clear removes point p.
func (m *Mask) Clear(p int) {
	if p < 64 {
		m.Lo &^= 1 << uint(p)
	} else {
		m.Hi &^= 1 << uint(p-64)
	}
}

func (m Mask) And(o Mask) Mask    { return Mask{m.Lo & o.Lo, m.Hi & o.Hi} }
func (m Mask) Or(o Mask) Mask     { return Mask{m.Lo | o.Lo, m.Hi | o.Hi} }
func (m Mask) AndNot(o Mask) Mask { return Mask{m.Lo &^ o.Lo, m.Hi &^ o.Hi} }
func (m Mask) Not() Mask          { return Mask{^m.Lo, ^m.Hi & hiMask} }
func (m Mask) IsZero() bool       { return m.Lo == 0 && m.Hi == 0 }
func (m Mask) Equal(o Mask) bool  { return m.Lo == o.Lo && m.Hi == o.Hi }
func (m Mask) Count() int         { return bits.OnesCount64(m.Lo) + bits.OnesCount64(m.Hi) }

// FirstSet returns the lowest-numbered member point. Callers must check
// IsZero first; the result is meaningless for an empty mask.
func (m Mask) FirstSet() int {
	if m.Lo != 0 {
		return bits.TrailingZeros64(m.Lo)
	}
	return 64 + bits.TrailingZeros64(m.Hi)
}

// NthSet returns the n-th lowest-numbered member point (0-based). Callers
// must ensure n < m.Count().
func (m Mask) NthSet(n int) int {
	lo := m.Lo
	loCount := bits.OnesCount64(lo)
	if n < loCount {
		for ; n > 0; n-- {
			lo &= lo - 1
		}
		return bits.TrailingZeros64(lo)
	}
	n -= loCount
	hi := m.Hi
	for ; n > 0; n-- {
		hi &= hi - 1
	}
	return 64 + bits.TrailingZeros64(hi)
}

// shiftUp moves every member point p to p+Size (one row forward).
func shiftUp(m Mask) Mask {
	lo := m.Lo << Size
	hi := (m.Hi << Size) | (m.Lo >> (64 - Size))
	return Mask{lo, hi & hiMask}
}

// shiftDown moves every member point p to p-Size (one row back).
func shiftDown(m Mask) Mask {
	hi := m.Hi >> Size
	lo := (m.Lo >> Size) | (m.Hi << (64 - Size))
	return Mask{lo, hi}
}

// shiftColUp moves every member point p to p+1.
func shiftColUp(m Mask) Mask {
	lo := m.Lo << 1
	hi := (m.Hi << 1) | (m.Lo >> 63)
	return Mask{lo, hi & hiMask}
}

// shiftColDown moves every member point p to p-1.
func shiftColDown(m Mask) Mask {
	hi := m.Hi >> 1
	lo := (m.Lo >> 1) | ((m.Hi & 1) << 63)
	return Mask{lo, hi}
}

var col0Mask, col8Mask, fullMask Mask

func init() {
	for r := 0; r < Size; r++ {
		col0Mask.Set(r * Size)
		col8Mask.Set(r*Size + Size - 1)
	}
	fullMask = Mask{^uint64(0), hiMask}
}

// neighbors computes the set of points adjacent to any member of m, the
// formula (M<<9)|(M>>9)|((M & ~col8)<<1)|((M & ~col0)>>1) where <<1 moves
// p to p+1: shifting a column-edge point across the row boundary would
// otherwise fabricate a phantom neighbor on the far side of the board.
func neighbors(m Mask) Mask {
	up := shiftUp(m)
	down := shiftDown(m)
	right := shiftColUp(m.AndNot(col8Mask))
	left := shiftColDown(m.AndNot(col0Mask))
	return up.Or(down).Or(right).Or(left)
}
