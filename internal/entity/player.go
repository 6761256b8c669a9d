package entity

const (
	PlayerWaiting = "waiting"
	PlayerActive  = "active"

	MarkerX = "X"
	MarkerO = "O"
)

// Conn is the transport handle a player is reachable through.
// Send must not block: implementations queue the payload and return.
type Conn interface {
	ID() string
	Send(payload []byte) error
}

// Player is a room participant. The connection is a weak reference owned by the transport.
type Player struct {
	Name   string
	State  string
	Marker string

	conn Conn
}

func NewPlayer(name string, conn Conn) *Player {
	return &Player{
		Name:  name,
		State: PlayerWaiting,
		conn:  conn,
	}
}

func (that *Player) Conn() Conn {
	return that.conn
}

// Bind replaces the connection handle, used on reconnect.
func (that *Player) Bind(conn Conn) {
	that.conn = conn
}

// Unbind clears the handle if conn is still the bound one. Reports whether it did.
func (that *Player) Unbind(conn Conn) bool {
	if that.conn == nil || conn == nil || that.conn.ID() != conn.ID() {
		return false
	}

	that.conn = nil

	return true
}

func (that *Player) View() PlayerView {
	return PlayerView{
		Name:  that.Name,
		State: that.State,
	}
}
