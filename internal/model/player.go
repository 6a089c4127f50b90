package model

// Player is a participant as seen by the matchmaking queue.
type Player struct {
	ID string
}

// ClientPlayer is the per-seat view sent to clients. TimeLeft is in
// tenths of a second.
type ClientPlayer struct {
	ID       string `json:"name"`
	Color    string `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}

// MatchFoundEvent tells a queued player which game it was placed in.
type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Color  string `json:"color"`
}
