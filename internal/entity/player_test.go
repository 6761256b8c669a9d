package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubConn string

func (that stubConn) ID() string {
	return string(that)
}

func (that stubConn) Send([]byte) error {
	return nil
}

func TestPlayer_Unbind(t *testing.T) {
	t.Run("Bound connection is cleared", func(t *testing.T) {
		// Given: a player on c1
		player := NewPlayer("alice", stubConn("c1"))

		// When: c1 is unbound
		ok := player.Unbind(stubConn("c1"))

		// Then: the player has no connection
		assert.True(t, ok)
		assert.Nil(t, player.Conn())
	})

	t.Run("Other connection is ignored", func(t *testing.T) {
		// Given: a player rebound from c1 to c2
		player := NewPlayer("alice", stubConn("c1"))
		player.Bind(stubConn("c2"))

		// When: c1 is unbound
		ok := player.Unbind(stubConn("c1"))

		// Then: c2 stays bound
		assert.False(t, ok)
		assert.Equal(t, stubConn("c2"), player.Conn())
	})

	t.Run("Unbound player", func(t *testing.T) {
		// Given: a player without a connection
		player := NewPlayer("alice", nil)

		// Then: unbinding is a no-op
		assert.False(t, player.Unbind(stubConn("c1")))
	})
}
