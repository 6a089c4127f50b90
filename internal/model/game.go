package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/florianehmann/hexapawn/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// GameResult records how a finished game ended.
type GameResult struct {
	Winner string `json:"winner"`
	Reason string `json:"reason"` // "promotion", "no moves" or "resignation"
}

// HistoryPly is one half-move as shown to clients.
type HistoryPly struct {
	Color    string `json:"color"`
	Move     Move   `json:"move"`
	Notation string `json:"notation"`
}

// Game owns a single board and its observers. All rules questions are
// delegated to the Board; Game adds players, clocks, history and the
// win conditions.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	players     map[string]Color // playerID -> seat
	history     []HistoryPly
	lastMove    *Move
	result      *GameResult
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
}

// GameState is the JSON snapshot broadcast to clients. The board is a
// [rank][file] grid of "white"/"black"/"" entries.
type GameState struct {
	Board       [][]string   `json:"board"`
	ToMove      string       `json:"toMove"`
	MoveHistory []HistoryPly `json:"moveHistory"`
	LegalMoves  []Move       `json:"legalMoves"`
	LastMove    *Move        `json:"lastMove"`
	Result      *GameResult  `json:"result"`
	Players     struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

func NewGame(id string, clockTime time.Duration) *Game {
	return &Game{
		ID:          id,
		board:       NewBoard(),
		players:     make(map[string]Color),
		history:     make([]HistoryPly, 0),
		connections: NewGameConnections(),
		whiteClock:  NewClock(clockTime),
		blackClock:  NewClock(clockTime),
	}
}

// AddPlayer seats playerID on the first free side and returns the
// color it was given.
func (g *Game) AddPlayer(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.players[playerID]; ok {
		return 0, errors.New("player already in game")
	}

	taken := map[Color]bool{}
	for _, c := range g.players {
		taken[c] = true
	}
	for _, c := range []Color{White, Black} {
		if !taken[c] {
			g.players[playerID] = c
			return c, nil
		}
	}
	return 0, errors.New("game is full")
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

// snapshot builds the client view. Callers hold g.mu.
func (g *Game) snapshot() GameState {
	grid := make([][]string, 3)
	for rank := int8(0); rank < 3; rank++ {
		grid[rank] = make([]string, 3)
		for file := int8(0); file < 3; file++ {
			if c, ok := g.board.PieceAt(squareAt(file, rank)); ok {
				grid[rank][file] = c.String()
			}
		}
	}

	state := GameState{
		Board:       grid,
		ToMove:      g.board.Turn().String(),
		MoveHistory: append([]HistoryPly(nil), g.history...),
		LegalMoves:  g.board.LegalMoves(),
		LastMove:    g.lastMove,
		Result:      g.result,
	}
	for playerID, c := range g.players {
		cp := ClientPlayer{ID: playerID, Color: c.String()}
		switch c {
		case White:
			cp.TimeLeft = int(g.whiteClock.GetTimeLeft().Milliseconds() / 100)
			state.Players.White = cp
		case Black:
			cp.TimeLeft = int(g.blackClock.GetTimeLeft().Milliseconds() / 100)
			state.Players.Black = cp
		}
	}
	return state
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	_, ok := g.players[playerID]
	return ok
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return len(g.players) < 2
}

// MakeMove plays m for playerID: seat and turn checks, legality via
// the board, then clocks, history and win detection.
func (g *Game) MakeMove(playerID string, m Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result != nil {
		return errors.New("game is over")
	}

	seat, ok := g.players[playerID]
	if !ok {
		return errors.New("player not in game")
	}
	mover := g.board.Turn()
	if seat != mover {
		return errors.New("not your turn")
	}

	notation := g.notation(m)

	if err := g.board.MakeMove(m); err != nil {
		return err
	}

	g.clockFor(mover).Stop()
	g.history = append(g.history, HistoryPly{
		Color:    mover.String(),
		Move:     m,
		Notation: notation,
	})
	move := m
	g.lastMove = &move

	// hexapawn ends when a pawn reaches the far rank or the side to
	// move has nothing left to play
	if _, ahead := m.To.AdvanceTarget(mover); !ahead {
		g.result = &GameResult{Winner: mover.String(), Reason: "promotion"}
	} else if len(g.board.LegalMoves()) == 0 {
		g.result = &GameResult{Winner: mover.String(), Reason: "no moves"}
	} else {
		g.clockFor(mover.Other()).Start()
	}

	go g.broadcastState()

	return nil
}

// Resign ends the game in favor of playerID's opponent.
func (g *Game) Resign(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result != nil {
		return errors.New("game is over")
	}
	seat, ok := g.players[playerID]
	if !ok {
		return errors.New("player not in game")
	}

	g.whiteClock.Stop()
	g.blackClock.Stop()
	g.result = &GameResult{Winner: seat.Other().String(), Reason: "resignation"}

	go g.broadcastState()

	return nil
}

func (g *Game) clockFor(c Color) *Clock {
	if c == White {
		return g.whiteClock
	}
	return g.blackClock
}

// notation renders m in the long form used in the history, "b2a3" for
// an advance and "b2xa3" for a capture. Callers hold g.mu and call
// this before the move is applied.
func (g *Game) notation(m Move) string {
	if _, occupied := g.board.PieceAt(m.To); occupied {
		return m.From.String() + "x" + m.To.String()
	}
	return m.String()
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// keep the healthy connection we already have and reject the new one
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	// Send initial state
	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState() {
	g.mu.Lock()
	state := g.snapshot()
	g.mu.Unlock()

	payload, err := json.Marshal(state)
	if err != nil {
		fmt.Println("Failed to marshal state to JSON", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			fmt.Println("Failed to send state to player", playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
