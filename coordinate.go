package nogo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseVertex accepts a GTP vertex such as "E5" or the literal "pass" /
// "resign". Columns run A through J skipping I; rows count down from 9 at
// the top to 1 at the bottom, matching the board printed by showboard.
func ParseVertex(s string) (Point, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "PASS" || s == "RESIGN" {
		return Resign, nil
	}
	if len(s) < 2 {
		return 0, errors.Errorf("invalid vertex %q", s)
	}
	colLetter := s[0]
	if colLetter < 'A' || colLetter > 'J' || colLetter == 'I' {
		return 0, errors.Errorf("invalid vertex %q", s)
	}
	col := int(colLetter - 'A')
	if colLetter > 'I' {
		col--
	}
	row1, err := strconv.Atoi(s[1:])
	if err != nil || row1 < 1 || row1 > Size {
		return 0, errors.Errorf("invalid vertex %q", s)
	}
	row := Size - row1
	return Point(row*Size + col), nil
}

// String renders p the way ParseVertex expects to read it back.
func (p Point) String() string {
	if p == Resign {
		return "resign"
	}
	row, col := p.Row(), p.Col()
	colLetter := byte('A' + col)
	if colLetter >= 'I' {
		colLetter++
	}
	row1 := Size - row
	return fmt.Sprintf("%c%d", colLetter, row1)
}
