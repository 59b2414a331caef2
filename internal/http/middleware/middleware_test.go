package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"puzzlebox/internal/service"

	"github.com/gin-gonic/gin"
)

func serve(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service.InitJWT("mw-secret")
	token, _ := service.GenerateJWT(service.Identity{PlayerID: "p-9", Name: "Zed"})

	r := gin.New()
	r.GET("/me", JWT(), func(c *gin.Context) {
		p, _ := Player(c)
		c.String(http.StatusOK, p.ID+"/"+p.Name)
	})

	if w := serve(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: %d", w.Code)
	}
	if w := serve(r, "/me", "junk"); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: %d", w.Code)
	}
	if w := serve(r, "/me", token); w.Code != http.StatusOK || w.Body.String() != "p-9/Zed" {
		t.Fatalf("header token: %d %s", w.Code, w.Body.String())
	}
	if w := serve(r, "/me?token="+token, ""); w.Code != http.StatusOK {
		t.Fatalf("query token: %d", w.Code)
	}
}

func TestSimpleRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", SimpleRateLimit(2, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		if w := serve(r, "/x", ""); w.Code != http.StatusOK {
			t.Fatalf("request %d: %d", i, w.Code)
		}
	}
	if w := serve(r, "/x", ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", w.Code)
	}
}

func TestActionRateLimitPerPlayer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service.InitJWT("mw-secret")
	ann, _ := service.GenerateJWT(service.Identity{PlayerID: "ann"})
	bob, _ := service.GenerateJWT(service.Identity{PlayerID: "bob"})

	r := gin.New()
	r.GET("/act", JWT(), ActionRateLimit(1, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	if w := serve(r, "/act", ann); w.Code != http.StatusOK || w.Header().Get("X-ActionRateLimit-Remaining") != "0" {
		t.Fatalf("first: %d remaining=%s", w.Code, w.Header().Get("X-ActionRateLimit-Remaining"))
	}
	if w := serve(r, "/act", ann); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second: %d", w.Code)
	}
	if w := serve(r, "/act", bob); w.Code != http.StatusOK {
		t.Fatalf("other player: %d", w.Code)
	}
}

func TestWindowLimiterResets(t *testing.T) {
	l := newWindowLimiter(1, 10*time.Millisecond)
	if ok, _ := l.allow("k"); !ok {
		t.Fatal("first hit rejected")
	}
	if ok, _ := l.allow("k"); ok {
		t.Fatal("second hit allowed")
	}
	time.Sleep(20 * time.Millisecond)
	if ok, n := l.allow("k"); !ok || n != 1 {
		t.Fatalf("after window: ok=%v n=%d", ok, n)
	}
}
