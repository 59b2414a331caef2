package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"
	"puzzlebox/internal/logger"
	"puzzlebox/internal/session"
	"puzzlebox/internal/settings"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownGame     = errors.New("unknown game")
)

// GameServiceConfig wires the game service.
type GameServiceConfig struct {
	Settings     *settings.Provider
	Scores       *ScoreService
	History      *HistoryService
	Emitter      session.Emitter
	SessionTTL   time.Duration
	StrictSudoku bool
	// SweepEvery defaults to a minute.
	SweepEvery time.Duration
	// TickInterval is passed to every session; zero means one second.
	TickInterval time.Duration
}

// StartOptions pick the board of a new session.
type StartOptions struct {
	// Difficulty is a 0..2 level index; nil uses the player's default.
	Difficulty *int
	Level      int
	Seed       int64
}

// GameService holds the live sessions of every player. A player has at
// most one session per game; starting another replaces it.
type GameService struct {
	cfg GameServiceConfig

	mu       sync.RWMutex
	sessions map[string]*session.Session // session id -> session
	current  map[string]string           // player id + game -> session id

	stop     chan struct{}
	stopOnce sync.Once
}

func NewGameService(cfg GameServiceConfig) *GameService {
	if cfg.Settings == nil {
		cfg.Settings = settings.NewProvider(nil, domain.DefaultSettings())
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = time.Hour
	}
	if cfg.SweepEvery <= 0 {
		cfg.SweepEvery = time.Minute
	}
	s := &GameService{
		cfg:      cfg,
		sessions: make(map[string]*session.Session),
		current:  make(map[string]string),
		stop:     make(chan struct{}),
	}

	// Start cleanup goroutine for idle sessions
	go s.cleanupIdleSessions()

	return s
}

func currentKey(playerID string, t game.Type) string {
	return playerID + "/" + string(t)
}

// Start opens a new session of t for the player.
func (s *GameService) Start(ctx context.Context, player domain.Player, t game.Type, opts StartOptions) (*session.Session, error) {
	if !t.Valid() {
		return nil, ErrUnknownGame
	}

	prefs := s.cfg.Settings.Get(ctx, player.ID)
	eo := session.Options{
		Level:        opts.Level,
		Settings:     prefs,
		StrictSudoku: s.cfg.StrictSudoku,
		Seed:         opts.Seed,
	}
	if opts.Difficulty != nil {
		d := game.DifficultyFromIndex(*opts.Difficulty, game.Medium)
		eo.Difficulty = &d
	}
	engine, err := session.NewEngine(t, eo)
	if err != nil {
		return nil, err
	}

	playerID := player.ID
	sess := session.New(player.ID, player.Name, engine, session.Config{
		Emitter: s.cfg.Emitter,
		Settings: func() domain.Settings {
			return s.cfg.Settings.Get(context.Background(), playerID)
		},
		OnFinish:     s.onFinish,
		TickInterval: s.cfg.TickInterval,
	})

	s.mu.Lock()
	key := currentKey(player.ID, t)
	var replaced *session.Session
	if oldID, ok := s.current[key]; ok {
		replaced = s.sessions[oldID]
		delete(s.sessions, oldID)
	}
	s.sessions[sess.ID] = sess
	s.current[key] = sess.ID
	ActiveSessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	if replaced != nil {
		replaced.Close()
	}

	SessionsStarted.WithLabelValues(string(t)).Inc()
	logger.Info("session started", "session", sess.ID, "player", player.ID, "game", t)
	return sess, nil
}

// Get returns the player's session; sessions of other players are not found.
func (s *GameService) Get(playerID, id string) (*session.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || sess.PlayerID != playerID {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *GameService) Act(playerID, id string, a session.Action) (session.ActionResult, error) {
	sess, err := s.Get(playerID, id)
	if err != nil {
		return session.ActionResult{}, err
	}
	res, err := sess.Act(a)
	if errors.Is(err, game.ErrInvalidMove) || errors.Is(err, game.ErrIncomplete) {
		ActionsRejected.WithLabelValues(string(sess.Game())).Inc()
	}
	return res, err
}

func (s *GameService) Pause(playerID, id string) (session.Snapshot, error) {
	sess, err := s.Get(playerID, id)
	if err != nil {
		return session.Snapshot{}, err
	}
	return sess.Pause()
}

func (s *GameService) Resume(playerID, id string) (session.Snapshot, error) {
	sess, err := s.Get(playerID, id)
	if err != nil {
		return session.Snapshot{}, err
	}
	return sess.Resume()
}

// Close discards the session; pending continuations never fire.
func (s *GameService) Close(playerID, id string) error {
	sess, err := s.Get(playerID, id)
	if err != nil {
		return err
	}
	s.remove(sess)
	return nil
}

func (s *GameService) remove(sess *session.Session) {
	s.mu.Lock()
	delete(s.sessions, sess.ID)
	key := currentKey(sess.PlayerID, sess.Game())
	if s.current[key] == sess.ID {
		delete(s.current, key)
	}
	ActiveSessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	sess.Close()
}

// List returns snapshots of the player's sessions, newest first.
func (s *GameService) List(playerID string) []session.Snapshot {
	s.mu.RLock()
	var mine []*session.Session
	for _, sess := range s.sessions {
		if sess.PlayerID == playerID {
			mine = append(mine, sess)
		}
	}
	s.mu.RUnlock()

	out := make([]session.Snapshot, 0, len(mine))
	for _, sess := range mine {
		out = append(out, sess.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *GameService) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// onFinish records history for every finished session and a score for
// Sudoku and Minesweeper wins.
func (s *GameService) onFinish(f session.Finished) {
	result, ok := domain.ResultFromStatus(f.Status)
	if !ok {
		return
	}
	SessionsFinished.WithLabelValues(string(f.Game), string(result)).Inc()
	logger.Info("session finished", "session", f.SessionID, "player", f.PlayerID, "game", f.Game, "result", result, "elapsed", f.Elapsed)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.cfg.History != nil {
		s.cfg.History.Record(ctx, &domain.GameHistory{
			PlayerID:    f.PlayerID,
			SessionID:   f.SessionID,
			Game:        f.Game,
			Result:      result,
			Level:       f.Summary.Level,
			Moves:       f.Summary.Moves,
			DurationSec: f.Elapsed,
			Score:       f.Summary.Score,
			Details:     f.Summary.Details,
		})
	}

	if s.cfg.Scores != nil && result == domain.GameResultWin && ranked(f.Game) {
		s.cfg.Scores.Record(ctx, &domain.Score{
			PlayerID: f.PlayerID,
			Name:     f.PlayerName,
			Game:     f.Game,
			Time:     f.Elapsed,
			Errors:   f.Summary.Errors,
			Level:    f.Summary.Level,
		})
	}
}

func ranked(t game.Type) bool {
	return t == game.TypeSudoku || t == game.TypeMinesweeper
}

// cleanupIdleSessions closes sessions nobody touched within the TTL
func (s *GameService) cleanupIdleSessions() {
	ticker := time.NewTicker(s.cfg.SweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

func (s *GameService) sweep(now time.Time) int {
	s.mu.RLock()
	var idle []*session.Session
	for _, sess := range s.sessions {
		if now.Sub(sess.LastActive()) > s.cfg.SessionTTL {
			idle = append(idle, sess)
		}
	}
	s.mu.RUnlock()

	for _, sess := range idle {
		s.remove(sess)
		logger.Debug("idle session closed", "session", sess.ID, "player", sess.PlayerID)
	}
	return len(idle)
}

// Shutdown stops the sweeper and closes every session.
func (s *GameService) Shutdown() {
	s.stopOnce.Do(func() { close(s.stop) })

	s.mu.Lock()
	all := make([]*session.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.sessions = make(map[string]*session.Session)
	s.current = make(map[string]string)
	ActiveSessions.Set(0)
	s.mu.Unlock()

	for _, sess := range all {
		sess.Close()
	}
}
