package ws

import "puzzlebox/internal/session"

// client → server
type Inbound struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id,omitempty"`
	Action    session.Action `json:"action"`
	// Ref is echoed back on the reply.
	Ref string `json:"ref,omitempty"`
}

// server → client
type ResultPayload struct {
	Type   string               `json:"type"`
	Ref    string               `json:"ref,omitempty"`
	Result session.ActionResult `json:"result"`
}

type ErrorPayload struct {
	Type    string `json:"type"`
	Ref     string `json:"ref,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
