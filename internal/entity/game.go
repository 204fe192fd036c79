package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is a snapshot of a session handed to the driver.
type Game struct {
	Board  Board  `json:"board"`
	Turn   Mark   `json:"player_turn,omitempty"`
	Status string `json:"status"`
	Winner *Mark  `json:"winner,omitempty"`
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsDraw reports a finished game without a winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == nil
}
