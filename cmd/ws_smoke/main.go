package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

// ws_smoke drives a running server: it signs in as a guest, opens the
// event socket, starts a memory game and flips two cards over the socket.
func main() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	base := fmt.Sprintf("127.0.0.1:%s", port)

	var auth struct {
		Token string `json:"token"`
	}
	post("http://"+base+"/api/v1/auth/guest", "", map[string]string{"name": "smoke"}, &auth)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+base+"/ws?token="+auth.Token, nil)
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	expect(conn, "ready")

	var snap struct {
		ID string `json:"id"`
	}
	post("http://"+base+"/api/v1/games/memory/sessions", auth.Token, map[string]any{"seed": 42}, &snap)
	log.Printf("session %s started", snap.ID)

	for i, idx := range []int{0, 1} {
		msg := map[string]any{
			"type":       "action",
			"session_id": snap.ID,
			"ref":        fmt.Sprintf("flip-%d", i),
			"action":     map[string]any{"type": "flip", "index": idx},
		}
		if err := conn.WriteJSON(msg); err != nil {
			log.Fatalf("write: %v", err)
		}
	}

	// print everything for a second: results, state pushes, haptics
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		conn.SetReadDeadline(deadline)
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		log.Printf("got: %s", truncate(msg, 200))
	}

	log.Println("smoke test finished")
}

func post(url, token string, body, out any) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		log.Fatalf("POST %s: status %d", url, res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		log.Fatalf("POST %s: decode: %v", url, err)
	}
}

func expect(conn *websocket.Conn, typ string) {
	// a timed out read leaves the connection unusable, so one deadline covers the wait
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var obj map[string]any
		if err := conn.ReadJSON(&obj); err != nil {
			log.Fatalf("no %q message: %v", typ, err)
		}
		if t, ok := obj["type"].(string); ok && t == typ {
			return
		}
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
