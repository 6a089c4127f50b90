package service

import (
	"testing"
	"time"

	"github.com/florianehmann/hexapawn/internal/model"
)

func newTestManager() *GameManager {
	return NewGameManager(10 * time.Minute)
}

func TestCreateGame(t *testing.T) {
	gm := newTestManager()

	if err := gm.CreateGame("game-1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := gm.CreateGame("game-1"); err == nil {
		t.Error("creating the same game twice should fail")
	}

	state, err := gm.GetGameState("game-1")
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.ToMove != "white" {
		t.Errorf("fresh game should have white to move, got %s", state.ToMove)
	}
	if len(state.LegalMoves) != 3 {
		t.Errorf("fresh game should have 3 legal moves, got %v", state.LegalMoves)
	}
}

func TestGetGameStateUnknown(t *testing.T) {
	gm := newTestManager()

	if _, err := gm.GetGameState("nope"); err == nil {
		t.Error("unknown game should error")
	}
}

func TestAddPlayerToGame(t *testing.T) {
	gm := newTestManager()
	if err := gm.CreateGame("game-1"); err != nil {
		t.Fatalf("create: %v", err)
	}

	c1, err := gm.AddPlayerToGame("game-1", "alice")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	c2, err := gm.AddPlayerToGame("game-1", "bob")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if c1 == c2 {
		t.Errorf("both players got %v", c1)
	}
	if _, err := gm.AddPlayerToGame("game-1", "carol"); err == nil {
		t.Error("full game should reject a third player")
	}
	if _, err := gm.AddPlayerToGame("missing", "dave"); err == nil {
		t.Error("joining a missing game should fail")
	}
}

func TestManagerMakeMove(t *testing.T) {
	gm := newTestManager()
	if err := gm.CreateGame("game-1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := gm.AddPlayerToGame("game-1", "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, err := gm.AddPlayerToGame("game-1", "bob"); err != nil {
		t.Fatalf("join: %v", err)
	}

	if err := gm.MakeMove("game-1", "alice", model.Move{From: model.B1, To: model.B2}); err != nil {
		t.Fatalf("move: %v", err)
	}
	state, err := gm.GetGameState("game-1")
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.ToMove != "black" {
		t.Errorf("turn should be black after white's move, got %s", state.ToMove)
	}
	if err := gm.MakeMove("missing", "alice", model.Move{From: model.B1, To: model.B2}); err == nil {
		t.Error("moving in a missing game should fail")
	}
}

func TestJoinMatchmaking(t *testing.T) {
	gm := newTestManager()

	if err := gm.JoinMatchmaking("alice"); err != nil {
		t.Fatalf("join matchmaking: %v", err)
	}
	if err := gm.JoinMatchmaking("alice"); err == nil {
		t.Error("queueing twice should fail")
	}
}

func TestMatchmakingPairsPlayers(t *testing.T) {
	gm := newTestManager()

	chAlice := make(chan string, 1)
	chBob := make(chan string, 1)
	if err := gm.RegisterMatchmakingChannel("alice", chAlice); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := gm.RegisterMatchmakingChannel("bob", chBob); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := gm.JoinMatchmaking("alice"); err != nil {
		t.Fatalf("queue: %v", err)
	}
	if err := gm.JoinMatchmaking("bob"); err != nil {
		t.Fatalf("queue: %v", err)
	}

	// the matchmaking ticker runs once a second
	select {
	case event := <-chAlice:
		if event == "" {
			t.Error("empty match event")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no match event for alice")
	}
	select {
	case event := <-chBob:
		if event == "" {
			t.Error("empty match event")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no match event for bob")
	}
}

func TestGameServiceCreateAndJoin(t *testing.T) {
	gs := NewGameService(newTestManager())

	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if gameID == "" {
		t.Fatal("empty game ID")
	}

	if _, err := gs.JoinGame(gameID, "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	state, err := gs.GetGameState(gameID)
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.Players.White.ID != "alice" {
		t.Errorf("alice should be seated as white, got %+v", state.Players)
	}
}
