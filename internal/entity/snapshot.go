package entity

const (
	RoomPreGame  = "pre_game"
	RoomActive   = "active"
	RoomPostGame = "post_game"
)

// Board is the client view of a 3x3 grid, "" marks an empty cell.
type Board [3][3]string

// PlayerView is what other clients may see of a player. An absent seat renders as {}.
type PlayerView struct {
	Name  string `json:"name,omitempty"`
	State string `json:"state,omitempty"`
}

type GameView struct {
	Board     Board        `json:"board"`
	HasWinner bool         `json:"hasWinner"`
	IsDraw    bool         `json:"isDraw"`
	GameOver  bool         `json:"gameOver"`
	Winner    string       `json:"winner"`
	NextMove  string       `json:"nextMove"`
	Players   []PlayerView `json:"players"`
}

type RoomState struct {
	State    string `json:"state"`
	Active   bool   `json:"active"`
	PreGame  bool   `json:"preGame"`
	NextMove string `json:"nextMove"`
}

// RoomSnapshot is the full room payload pushed to every client after a mutation.
type RoomSnapshot struct {
	Name      string    `json:"name"`
	GameState RoomState `json:"gameState"`
	Game      GameView  `json:"game"`
}

// NewRoomState derives the lifecycle metadata from the player count and the game view.
func NewRoomState(players int, game GameView) RoomState {
	state := RoomActive

	switch {
	case game.GameOver:
		state = RoomPostGame
	case players < 2:
		state = RoomPreGame
	}

	return RoomState{
		State:    state,
		Active:   state == RoomActive,
		PreGame:  state == RoomPreGame,
		NextMove: game.NextMove,
	}
}
