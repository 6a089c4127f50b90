package model

import "fmt"

// Color is the side a pawn belongs to.
type Color int8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// forward is the rank direction a pawn of this color moves in.
func (c Color) forward() int8 {
	if c == White {
		return 1
	}
	return -1
}

// Square identifies one of the nine board cells. The constants are laid
// out file-major (a1, a2, a3, b1, ...) so that Square = file*3 + rank;
// move enumeration iterates squares in this order.
type Square int8

const (
	A1 Square = iota
	A2
	A3
	B1
	B2
	B3
	C1
	C2
	C3
)

// NumSquares is the number of cells on the board.
const NumSquares = 9

func (s Square) File() int8 {
	return int8(s) / 3
}

func (s Square) Rank() int8 {
	return int8(s) % 3
}

// squareAt maps a coordinate pair back to its Square. Callers must pass
// coordinates already known to be in [0,2].
func squareAt(file, rank int8) Square {
	return Square(file*3 + rank)
}

func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+s.File(), '1'+s.Rank())
}

// ParseSquare converts a two character label like "b2" into a Square.
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return 0, fmt.Errorf("%w: bad square %q", ErrInvalidNotation, label)
	}
	file := int8(label[0] - 'a')
	rank := int8(label[1] - '1')
	if file < 0 || file > 2 || rank < 0 || rank > 2 {
		return 0, fmt.Errorf("%w: bad square %q", ErrInvalidNotation, label)
	}
	return squareAt(file, rank), nil
}

// AdvanceTarget returns the square straight ahead of s for a pawn of
// color c. The second return is false when the forward rank would leave
// the board; that is a normal outcome at the far rank, not an error.
func (s Square) AdvanceTarget(c Color) (Square, bool) {
	rank := s.Rank() + c.forward()
	if rank < 0 || rank > 2 {
		return 0, false
	}
	return squareAt(s.File(), rank), true
}

// CaptureCandidates returns the squares diagonally ahead of s for a
// pawn of color c, lower file first. Corner files get one candidate,
// the middle file two, and the far rank none.
func (s Square) CaptureCandidates(c Color) []Square {
	rank := s.Rank() + c.forward()
	if rank < 0 || rank > 2 {
		return nil
	}
	candidates := make([]Square, 0, 2)
	for _, file := range []int8{s.File() - 1, s.File() + 1} {
		if file >= 0 && file <= 2 {
			candidates = append(candidates, squareAt(file, rank))
		}
	}
	return candidates
}

// CanAdvanceTo reports whether a pawn of color c on s would reach
// target with a non-capturing advance.
func (s Square) CanAdvanceTo(target Square, c Color) bool {
	advance, ok := s.AdvanceTarget(c)
	return ok && advance == target
}
