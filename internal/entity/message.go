package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
)

const (
	TypeJoinGame = "join_game"
	TypeGameMove = "game_move"
	TypeError    = "error"
)

// Message is an inbound client message. The set of variants is closed:
// JoinGame and GameMove are the only implementations.
type Message interface {
	Room() string
	Player() string

	isMessage()
}

type JoinGame struct {
	PlayerName string
	GameName   string
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type GameMove struct {
	PlayerName string
	GameName   string
	Move       Move
}

func (that JoinGame) Room() string { return that.GameName }

func (that JoinGame) Player() string { return that.PlayerName }

func (JoinGame) isMessage() {}

func (that GameMove) Room() string { return that.GameName }

func (that GameMove) Player() string { return that.PlayerName }

func (GameMove) isMessage() {}

// envelope is the wire form of every inbound message.
type envelope struct {
	MessageType string `json:"message_type"`
	PlayerName  string `json:"player_name"`
	GameName    string `json:"game_name"`
	Move        *Move  `json:"move,omitempty"`
}

// DecodeMessage parses a raw frame into one of the Message variants.
func DecodeMessage(data []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
	}

	if env.MessageType != TypeJoinGame && env.MessageType != TypeGameMove {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMessageType, env.MessageType)
	}

	if env.PlayerName == "" {
		return nil, fmt.Errorf("%w: player_name is required", apperror.ErrMalformedMessage)
	}

	if env.GameName == "" {
		return nil, fmt.Errorf("%w: game_name is required", apperror.ErrMalformedMessage)
	}

	if env.MessageType == TypeJoinGame {
		return JoinGame{PlayerName: env.PlayerName, GameName: env.GameName}, nil
	}

	if env.Move == nil {
		return nil, fmt.Errorf("%w: move is required", apperror.ErrMalformedMessage)
	}

	return GameMove{PlayerName: env.PlayerName, GameName: env.GameName, Move: *env.Move}, nil
}

// ErrorMessage is sent to the originating connection only.
type ErrorMessage struct {
	MessageType string `json:"message_type"`
	Error       string `json:"error"`
	Message     string `json:"message"`
}

func NewErrorMessage(err error) ErrorMessage {
	return ErrorMessage{
		MessageType: TypeError,
		Error:       apperror.Code(err),
		Message:     err.Error(),
	}
}
