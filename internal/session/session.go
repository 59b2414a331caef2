package session

import (
	"errors"
	"sync"
	"time"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"
	"puzzlebox/internal/logger"

	"github.com/google/uuid"
)

var (
	ErrClosed = errors.New("session closed")
	ErrPaused = game.Invalid("session is paused")
)

type EventType string

const (
	EventState    EventType = "state"
	EventTick     EventType = "tick"
	EventHaptic   EventType = "haptic"
	EventNotice   EventType = "notice"
	EventFinished EventType = "finished"
	EventSettings EventType = "settings"
)

// Event is pushed to the player's event stream.
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	Payload   any       `json:"payload,omitempty"`
}

// Emitter receives session events. Emit is called with the session lock
// held and must not block.
type Emitter interface {
	Emit(playerID string, ev Event)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(playerID string, ev Event)

func (f EmitterFunc) Emit(playerID string, ev Event) { f(playerID, ev) }

// Finished describes a session that reached a terminal status.
type Finished struct {
	SessionID  string      `json:"session_id"`
	PlayerID   string      `json:"player_id"`
	PlayerName string      `json:"player_name"`
	Game       game.Type   `json:"game"`
	Status     game.Status `json:"status"`
	Elapsed    int         `json:"elapsed"`
	Summary    Summary     `json:"summary"`
}

type Config struct {
	Emitter  Emitter
	Settings func() domain.Settings
	// OnFinish runs in its own goroutine.
	OnFinish func(f Finished)
	// TickInterval is one elapsed second; zero means time.Second.
	TickInterval time.Duration
}

// Snapshot is a detached view of a session.
type Snapshot struct {
	ID        string      `json:"id"`
	Game      game.Type   `json:"game"`
	Status    game.Status `json:"status"`
	Elapsed   int         `json:"elapsed"`
	Paused    bool        `json:"paused"`
	Board     any         `json:"board"`
	Summary   Summary     `json:"summary"`
	CreatedAt time.Time   `json:"created_at"`
}

// ActionResult is the reply to a player action.
type ActionResult struct {
	Snapshot
	Haptic Haptic `json:"haptic,omitempty"`
	Notice string `json:"notice,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// Session owns one engine and serialises every access to it.
type Session struct {
	ID         string
	PlayerID   string
	PlayerName string
	CreatedAt  time.Time

	kind game.Type

	mu         sync.Mutex
	engine     Engine
	cfg        Config
	elapsed    int
	gen        uint64
	closed     bool
	paused     bool
	lastActive time.Time
	timerSeq   uint64
	timers     map[uint64]*time.Timer
	stepTimer  *time.Timer
	done       chan struct{}
}

// New wraps e in a running session.
func New(playerID, playerName string, e Engine, cfg Config) *Session {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	now := time.Now()
	s := &Session{
		ID:         uuid.NewString(),
		PlayerID:   playerID,
		PlayerName: playerName,
		CreatedAt:  now,
		kind:       e.Type(),
		engine:     e,
		cfg:        cfg,
		lastActive: now,
		timers:     make(map[uint64]*time.Timer),
		done:       make(chan struct{}),
	}

	s.mu.Lock()
	s.scheduleStep()
	s.emitState()
	s.mu.Unlock()

	go s.tickLoop()
	return s
}

func (s *Session) settings() domain.Settings {
	if s.cfg.Settings == nil {
		return domain.DefaultSettings()
	}
	return s.cfg.Settings()
}

func (s *Session) Game() game.Type { return s.kind }

// Act applies a on a clone of the engine. The clone replaces the live
// engine when the action succeeds or asks to be committed anyway.
func (s *Session) Act(a Action) (ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ActionResult{}, ErrClosed
	}
	s.lastActive = time.Now()
	if s.paused {
		return ActionResult{Snapshot: s.snapshot()}, ErrPaused
	}

	before := s.engine.Status()
	next := s.engine.Clone()
	out, err := next.Apply(a)
	if err == nil || out.Commit {
		s.engine = next
	}
	s.handle(out, before)

	res := ActionResult{
		Snapshot: s.snapshot(),
		Haptic:   out.Haptic,
		Notice:   out.Notice,
		Data:     out.Result,
	}
	if err != nil {
		logger.Debug("session action rejected", "session", s.ID, "game", s.engine.Type(), "action", a.Type, "error", err)
	}
	return res, err
}

// handle applies the side effects of an outcome. Caller holds mu.
func (s *Session) handle(out Outcome, before game.Status) {
	if out.Restarted {
		s.gen++
		s.elapsed = 0
		s.stopTimers()
		before = game.StatusReady
	}
	if out.Haptic != HapticNone && s.settings().VibrationEnabled {
		s.emit(EventHaptic, out.Haptic)
	}
	if out.Notice != "" {
		s.emit(EventNotice, out.Notice)
	}
	if out.After != nil {
		s.schedule(out.After)
	}
	s.emitState()

	after := s.engine.Status()
	if !before.Terminal() && after.Terminal() {
		s.finish(after)
	}
	s.scheduleStep()
}

func (s *Session) finish(status game.Status) {
	f := Finished{
		SessionID:  s.ID,
		PlayerID:   s.PlayerID,
		PlayerName: s.PlayerName,
		Game:       s.engine.Type(),
		Status:     status,
		Elapsed:    s.elapsed,
		Summary:    s.engine.Summary(),
	}
	s.emit(EventFinished, f)
	if s.cfg.OnFinish != nil {
		go s.cfg.OnFinish(f)
	}
}

// schedule arms c for the current generation.
func (s *Session) schedule(c *Continuation) {
	s.timerSeq++
	id, gen := s.timerSeq, s.gen
	s.timers[id] = time.AfterFunc(c.Delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.timers, id)
		if s.closed || gen != s.gen {
			return
		}
		before := s.engine.Status()
		s.handle(c.Run(s.engine), before)
	})
}

func (s *Session) stopTimers() {
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	if s.stepTimer != nil {
		s.stepTimer.Stop()
		s.stepTimer = nil
	}
}

// scheduleStep arms the next step of a real-time engine when none is pending.
func (s *Session) scheduleStep() {
	st, ok := s.engine.(Stepper)
	if !ok || s.stepTimer != nil || s.closed || s.paused || s.engine.Status().Terminal() {
		return
	}
	gen := s.gen
	s.stepTimer = time.AfterFunc(st.Interval(), func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || gen != s.gen {
			return
		}
		s.stepTimer = nil
		if s.paused {
			return
		}
		live, ok := s.engine.(Stepper)
		if !ok {
			return
		}
		before := s.engine.Status()
		s.handle(live.Step(), before)
	})
}

func (s *Session) tickLoop() {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.paused || s.engine.Status() != game.StatusPlaying || !s.settings().TimerEnabled {
		return
	}
	s.elapsed++
	s.emit(EventTick, map[string]int{"elapsed": s.elapsed})
}

// Pause stops the clock and the step loop; actions are rejected until Resume.
func (s *Session) Pause() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Snapshot{}, ErrClosed
	}
	s.lastActive = time.Now()
	if !s.paused {
		s.paused = true
		if s.stepTimer != nil {
			s.stepTimer.Stop()
			s.stepTimer = nil
		}
		s.emitState()
	}
	return s.snapshot(), nil
}

func (s *Session) Resume() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Snapshot{}, ErrClosed
	}
	s.lastActive = time.Now()
	if s.paused {
		s.paused = false
		s.scheduleStep()
		s.emitState()
	}
	return s.snapshot(), nil
}

// Close discards the session. Pending continuations become no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.stopTimers()
	close(s.done)
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		ID:        s.ID,
		Game:      s.engine.Type(),
		Status:    s.engine.Status(),
		Elapsed:   s.elapsed,
		Paused:    s.paused,
		Board:     s.engine.View(),
		Summary:   s.engine.Summary(),
		CreatedAt: s.CreatedAt,
	}
}

func (s *Session) emitState() {
	if s.cfg.Emitter == nil {
		return
	}
	s.emit(EventState, s.snapshot())
}

func (s *Session) emit(t EventType, payload any) {
	if s.cfg.Emitter == nil {
		return
	}
	s.cfg.Emitter.Emit(s.PlayerID, Event{Type: t, SessionID: s.ID, Payload: payload})
}
