package ws

import (
	"encoding/json"
	"errors"

	"puzzlebox/internal/game"
	"puzzlebox/internal/service"
	"puzzlebox/internal/session"
)

// handleMessage runs one client message and queues the reply.
func (c *Client) handleMessage(raw []byte) {
	var in Inbound
	if err := json.Unmarshal(raw, &in); err != nil {
		c.reply(ErrorPayload{Type: MsgError, Code: "bad_request", Message: "malformed message"})
		return
	}

	switch in.Type {
	case MsgPing:
		c.reply(map[string]string{"type": MsgPong, "ref": in.Ref})
	case MsgAction:
		if in.SessionID == "" || in.Action.Type == "" {
			c.reply(ErrorPayload{Type: MsgError, Ref: in.Ref, Code: "bad_request", Message: "session_id and action.type are required"})
			return
		}
		if c.Hub.actor == nil {
			c.reply(ErrorPayload{Type: MsgError, Ref: in.Ref, Code: "unavailable", Message: "actions are not accepted on this socket"})
			return
		}
		res, err := c.Hub.actor.Act(c.PlayerID, in.SessionID, in.Action)
		if err != nil {
			c.reply(ErrorPayload{Type: MsgError, Ref: in.Ref, Code: errorCode(err), Message: err.Error()})
			return
		}
		c.reply(ResultPayload{Type: MsgResult, Ref: in.Ref, Result: res})
	default:
		c.reply(ErrorPayload{Type: MsgError, Ref: in.Ref, Code: "bad_request", Message: "unknown message type " + in.Type})
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, session.ErrClosed):
		return "not_found"
	case errors.Is(err, game.ErrIncomplete):
		return "incomplete"
	case errors.Is(err, game.ErrInvalidMove):
		return "invalid_move"
	}
	return "internal"
}
