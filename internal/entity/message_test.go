package entity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
)

func TestDecodeMessage(t *testing.T) {
	t.Run("Join game", func(t *testing.T) {
		// When: a join frame is decoded
		msg, err := DecodeMessage([]byte(`{"message_type":"join_game","player_name":"alice","game_name":"r1"}`))

		// Then: a JoinGame is returned
		require.NoError(t, err)
		assert.Equal(t, JoinGame{PlayerName: "alice", GameName: "r1"}, msg)
		assert.Equal(t, "r1", msg.Room())
		assert.Equal(t, "alice", msg.Player())
	})

	t.Run("Game move", func(t *testing.T) {
		// When: a move frame is decoded
		msg, err := DecodeMessage([]byte(`{"message_type":"game_move","player_name":"bob","game_name":"r1","move":{"row":2,"col":1}}`))

		// Then: a GameMove is returned
		require.NoError(t, err)
		assert.Equal(t, GameMove{PlayerName: "bob", GameName: "r1", Move: Move{Row: 2, Col: 1}}, msg)
	})

	tests := []struct {
		name  string
		frame string
		want  error
	}{
		{"Broken JSON", `{"message_type":`, apperror.ErrMalformedMessage},
		{"Unknown type", `{"message_type":"chat","player_name":"alice","game_name":"r1"}`, apperror.ErrUnknownMessageType},
		{"Missing type", `{"player_name":"alice","game_name":"r1"}`, apperror.ErrUnknownMessageType},
		{"Missing player", `{"message_type":"join_game","game_name":"r1"}`, apperror.ErrMalformedMessage},
		{"Missing room", `{"message_type":"join_game","player_name":"alice"}`, apperror.ErrMalformedMessage},
		{"Move without coordinates", `{"message_type":"game_move","player_name":"alice","game_name":"r1"}`, apperror.ErrMalformedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: an invalid frame is decoded
			msg, err := DecodeMessage([]byte(tt.frame))

			// Then: the matching error kind is returned
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, msg)
		})
	}
}

func TestNewErrorMessage(t *testing.T) {
	// Given: a wrapped room error
	err := errors.Join(apperror.ErrRoomFull, errors.New("cannot add player carol"))

	// When: it is turned into a wire message
	data, marshalErr := json.Marshal(NewErrorMessage(err))
	require.NoError(t, marshalErr)

	// Then: the kind and detail are reported
	assert.JSONEq(t, `{
		"message_type": "error",
		"error": "room_full",
		"message": "room is full\ncannot add player carol"
	}`, string(data))
}
