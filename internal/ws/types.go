package ws

const (
	// client - server
	MsgAction = "action"
	MsgPing   = "ping"

	// server - client
	MsgReady  = "ready"
	MsgResult = "result"
	MsgPong   = "pong"
	MsgError  = "error"
)
