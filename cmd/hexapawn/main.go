// Command hexapawn plays a two-seat game of hexapawn on the terminal.
// Moves are entered as two concatenated square labels, e.g. "b1b2".
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/florianehmann/hexapawn/internal/model"
)

func main() {
	board := model.NewBoard()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println(board)

		mover := board.Turn()
		moves := board.LegalMoves()
		if len(moves) == 0 {
			fmt.Printf("%s has no moves, %s wins\n", mover, mover.Other())
			return
		}

		fmt.Printf("%s> ", mover)
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "quit" {
			return
		}

		move, err := model.ParseMove(input)
		if err != nil {
			fmt.Println("invalid input, moves look like b1b2")
			continue
		}
		if err := board.MakeMove(move); err != nil {
			if errors.Is(err, model.ErrIllegalMove) {
				fmt.Printf("illegal move %s\n", move)
				continue
			}
			fmt.Println(err)
			continue
		}

		// a pawn that cannot advance further has reached the far rank
		if _, ahead := move.To.AdvanceTarget(mover); !ahead {
			fmt.Println(board)
			fmt.Printf("%s wins by promotion\n", mover)
			return
		}
	}
}
