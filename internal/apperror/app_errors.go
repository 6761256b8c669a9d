package apperror

import "errors"

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyExists = errors.New("room already exists")
	ErrInvalidRoomName   = errors.New("invalid room name")
	ErrRoomFull          = errors.New("room is full")

	ErrPlayerNotFound    = errors.New("player not found")
	ErrInvalidPlayerName = errors.New("invalid player name")

	ErrIllegalMove      = errors.New("illegal move")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameFinished     = errors.New("game is already finished")

	ErrUnknownMessageType = errors.New("unknown message type")
	ErrMalformedMessage   = errors.New("malformed message")
)

// Code maps an error to the short kind reported back to a client.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return "room_not_found"
	case errors.Is(err, ErrRoomFull):
		return "room_full"
	case errors.Is(err, ErrPlayerNotFound):
		return "player_not_found"
	case errors.Is(err, ErrGameIsNotStarted):
		return "game_not_started"
	case errors.Is(err, ErrGameFinished):
		return "game_finished"
	case errors.Is(err, ErrIllegalMove):
		return "illegal_move"
	default:
		return "bad_request"
	}
}
