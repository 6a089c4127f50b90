package model

import (
	"errors"
	"fmt"
)

// ErrInvalidNotation is returned when move or square notation fails to
// parse. It is a syntax failure, distinct from a move being illegal on
// a particular board.
var ErrInvalidNotation = errors.New("invalid notation")

// ErrIllegalMove is returned by Board.MakeMove and Game.MakeMove when a
// syntactically valid move is not legal in the current position.
var ErrIllegalMove = errors.New("illegal move")

// Move is a candidate transition between two squares. It carries no
// legality of its own; legality is judged against a Board.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// ParseMove converts UCI-style notation, two concatenated square
// labels like "a1a2", into a Move.
func ParseMove(uci string) (Move, error) {
	if len(uci) != 4 {
		return Move{}, fmt.Errorf("%w: bad move %q", ErrInvalidNotation, uci)
	}
	from, err := ParseSquare(uci[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(uci[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// WSMove is the wire form of a move, two square labels like "b2".
type WSMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Decode parses the wire form into a Move.
func (m WSMove) Decode() (Move, error) {
	return ParseMove(m.From + m.To)
}
