package model

import "strings"

// occupancy of a single square
type occupant int8

const (
	empty occupant = iota
	whitePawn
	blackPawn
)

func pawnOf(c Color) occupant {
	if c == White {
		return whitePawn
	}
	return blackPawn
}

// Board holds the occupancy of the nine squares and the side to move.
// A Board is a plain value owned by its caller; it does no locking.
type Board struct {
	squares [NumSquares]occupant
	turn    Color
}

// NewBoard returns a board in the canonical starting position: white
// pawns on rank 1, black pawns on rank 3, white to move.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset restores the starting position and gives white the move.
func (b *Board) Reset() {
	b.Clear()
	for _, sq := range []Square{A1, B1, C1} {
		b.squares[sq] = whitePawn
	}
	for _, sq := range []Square{A3, B3, C3} {
		b.squares[sq] = blackPawn
	}
	b.turn = White
}

// Clear removes every pawn. The side to move is deliberately left
// alone; callers that want a full reset use Reset.
func (b *Board) Clear() {
	for sq := range b.squares {
		b.squares[sq] = empty
	}
}

// PieceAt returns the color of the pawn on sq, or false if the square
// is empty.
func (b *Board) PieceAt(sq Square) (Color, bool) {
	switch b.squares[sq] {
	case whitePawn:
		return White, true
	case blackPawn:
		return Black, true
	}
	return 0, false
}

// Put places a pawn of color c on sq, replacing whatever was there.
func (b *Board) Put(sq Square, c Color) {
	b.squares[sq] = pawnOf(c)
}

// Turn returns the side to move.
func (b *Board) Turn() Color {
	return b.turn
}

// SetTurn sets the side to move.
func (b *Board) SetTurn(c Color) {
	b.turn = c
}

// IsLegal reports whether m is legal for the side to move. A move is
// legal if it is an advance (straight ahead onto an empty square) or a
// capture (diagonally ahead onto an enemy pawn) by a pawn of the side
// to move. Any other pair of squares, including an empty or enemy From
// square, is simply illegal; IsLegal never fails.
func (b *Board) IsLegal(m Move) bool {
	if b.squares[m.From] != pawnOf(b.turn) {
		return false
	}

	// advance onto an empty square
	if m.From.CanAdvanceTo(m.To, b.turn) && b.squares[m.To] == empty {
		return true
	}

	// capture an enemy pawn diagonally ahead
	for _, sq := range m.From.CaptureCandidates(b.turn) {
		if sq == m.To && b.squares[m.To] == pawnOf(b.turn.Other()) {
			return true
		}
	}

	return false
}

// LegalMoves returns every legal move for the side to move, iterating
// source and target squares in enum order. The order is deterministic
// but callers must not attach meaning to it.
func (b *Board) LegalMoves() []Move {
	moves := make([]Move, 0, 8)
	for from := Square(0); from < NumSquares; from++ {
		for to := Square(0); to < NumSquares; to++ {
			if m := (Move{From: from, To: to}); b.IsLegal(m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// MakeMove applies m if it is legal: the pawn moves, any captured pawn
// is removed, and the turn passes to the other side. An illegal move
// returns ErrIllegalMove and leaves the board untouched.
func (b *Board) MakeMove(m Move) error {
	if !b.IsLegal(m) {
		return ErrIllegalMove
	}
	b.squares[m.To] = b.squares[m.From]
	b.squares[m.From] = empty
	b.turn = b.turn.Other()
	return nil
}

// String renders the board as unicode, rank 3 first so white's pawns
// appear at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := int8(2); rank >= 0; rank-- {
		for file := int8(0); file < 3; file++ {
			switch b.squares[squareAt(file, rank)] {
			case whitePawn:
				sb.WriteString("♙ ")
			case blackPawn:
				sb.WriteString("♟ ")
			default:
				if (file+rank)%2 != 0 {
					sb.WriteString("□ ")
				} else {
					sb.WriteString("■ ")
				}
			}
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
