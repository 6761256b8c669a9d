package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/rocketscienceinc/gameroom-backend/internal/game"
)

const (
	boardSize  = 3
	totalCells = boardSize * boardSize

	emptyCell = ""
)

type cell struct {
	row, col int
}

// winLines are checked in order: rows, columns, main diagonal, anti diagonal.
var winLines = [][3]cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Game is the tic-tac-toe engine.
type Game struct {
	board [boardSize][boardSize]string
	moves int

	hasWinner bool
	isDraw    bool
	gameOver  bool
	winner    string
	nextMove  string

	players [2]*entity.Player
}

var _ game.Engine = (*Game)(nil)

func NewGame() *Game {
	return &Game{}
}

// NewEngine is the game.Factory for tic-tac-toe rooms.
func NewEngine() game.Engine {
	return NewGame()
}

// AddPlayer - the first player gets X and moves first, the second gets O.
func (that *Game) AddPlayer(player *entity.Player) error {
	switch {
	case that.players[0] == nil:
		player.Marker = entity.MarkerX
		that.players[0] = player
	case that.players[1] == nil:
		player.Marker = entity.MarkerO
		that.players[1] = player

		that.players[0].State = entity.PlayerActive
		that.players[1].State = entity.PlayerActive
		that.nextMove = that.players[0].Name
	default:
		return fmt.Errorf("%w: cannot add player %s", apperror.ErrRoomFull, player.Name)
	}

	return nil
}

func (that *Game) Move(playerName string, move entity.Move) error {
	if that.gameOver {
		return apperror.ErrGameFinished
	}

	if that.players[1] == nil {
		return apperror.ErrGameIsNotStarted
	}

	player, err := that.player(playerName)
	if err != nil {
		return err
	}

	if err = that.validateMove(player, move); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	that.board[move.Row][move.Col] = player.Marker
	that.moves++

	that.updateGameStatus()

	if that.gameOver {
		that.nextMove = ""
	} else {
		that.nextMove = that.opponent(player).Name
	}

	return nil
}

func (that *Game) Players() [2]*entity.Player {
	return that.players
}

func (that *Game) NextMove() string {
	return that.nextMove
}

func (that *Game) GameOver() bool {
	return that.gameOver
}

func (that *Game) View() entity.GameView {
	players := make([]entity.PlayerView, len(that.players))
	for i, player := range that.players {
		if player != nil {
			players[i] = player.View()
		}
	}

	return entity.GameView{
		Board:     entity.Board(that.board),
		HasWinner: that.hasWinner,
		IsDraw:    that.isDraw,
		GameOver:  that.gameOver,
		Winner:    that.winner,
		NextMove:  that.nextMove,
		Players:   players,
	}
}

// validateMove - checks turn order, bounds and occupancy.
func (that *Game) validateMove(player *entity.Player, move entity.Move) error {
	if that.nextMove != player.Name {
		return apperror.ErrNotYourTurn
	}

	if move.Row < 0 || move.Row >= boardSize || move.Col < 0 || move.Col >= boardSize {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if that.board[move.Row][move.Col] != emptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the board after a move.
func (that *Game) updateGameStatus() {
	for _, line := range winLines {
		a := that.board[line[0].row][line[0].col]
		b := that.board[line[1].row][line[1].col]
		c := that.board[line[2].row][line[2].col]

		if a != emptyCell && a == b && b == c {
			that.setWinner(a)
			return
		}
	}

	// the game continues until every cell is marked
	if that.moves == totalCells {
		that.isDraw = true
		that.gameOver = true
	}
}

func (that *Game) setWinner(marker string) {
	that.hasWinner = true
	that.gameOver = true

	for _, player := range that.players {
		if player.Marker == marker {
			that.winner = player.Name
			return
		}
	}
}

func (that *Game) player(name string) (*entity.Player, error) {
	for _, player := range that.players {
		if player != nil && player.Name == name {
			return player, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, name)
}

func (that *Game) opponent(player *entity.Player) *entity.Player {
	if that.players[0] == player {
		return that.players[1]
	}

	return that.players[0]
}
