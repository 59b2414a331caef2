package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/logger"

	"gopkg.in/yaml.v2"
)

var (
	ErrUnknownKey   = errors.New("unknown settings key")
	ErrInvalidValue = errors.New("invalid settings value")
)

// Keys lists the accepted settings keys.
var Keys = []string{"theme", "defaultLevelIndex", "timerEnabled", "flagModeOnStart", "vibrationEnabled"}

func knownKey(k string) bool {
	for _, x := range Keys {
		if x == k {
			return true
		}
	}
	return false
}

// Listener is notified after a player's settings change.
type Listener func(playerID string, s domain.Settings)

// Provider is the shared settings source. Store failures are logged and
// never reach callers.
type Provider struct {
	store    Store
	defaults domain.Settings

	mu    sync.RWMutex
	cache map[string]domain.Settings

	subMu  sync.RWMutex
	subSeq uint64
	subs   map[uint64]Listener
}

func NewProvider(store Store, defaults domain.Settings) *Provider {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Provider{
		store:    store,
		defaults: defaults,
		cache:    make(map[string]domain.Settings),
		subs:     make(map[uint64]Listener),
	}
}

// LoadDefaults reads a YAML file over the built-in defaults. An empty path
// returns the built-in defaults.
func LoadDefaults(path string) (domain.Settings, error) {
	d := domain.DefaultSettings()
	if path == "" {
		return d, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("read settings defaults: %w", err)
	}
	if err := yaml.Unmarshal(b, &d); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("parse settings defaults: %w", err)
	}
	if err := validate(d); err != nil {
		return domain.DefaultSettings(), err
	}
	return d, nil
}

func (p *Provider) Defaults() domain.Settings { return p.defaults }

// Get returns the player's settings merged over defaults.
func (p *Provider) Get(ctx context.Context, playerID string) domain.Settings {
	p.mu.RLock()
	s, ok := p.cache[playerID]
	p.mu.RUnlock()
	if ok {
		return s
	}

	s = p.load(ctx, playerID)
	p.mu.Lock()
	if cached, ok := p.cache[playerID]; ok {
		s = cached
	} else {
		p.cache[playerID] = s
	}
	p.mu.Unlock()
	return s
}

func (p *Provider) load(ctx context.Context, playerID string) domain.Settings {
	s := p.defaults
	b, err := p.store.Load(ctx, keyFor(playerID))
	if err != nil {
		logger.Warn("settings load failed", "player", playerID, "error", err)
		return s
	}
	if len(b) == 0 {
		return s
	}
	if err := json.Unmarshal(b, &s); err != nil {
		logger.Warn("stored settings are corrupt, using defaults", "player", playerID, "error", err)
		return p.defaults
	}
	if err := validate(s); err != nil {
		logger.Warn("stored settings are invalid, using defaults", "player", playerID, "error", err)
		return p.defaults
	}
	return s
}

// Update sets one key.
func (p *Provider) Update(ctx context.Context, playerID, key string, value any) (domain.Settings, error) {
	return p.Patch(ctx, playerID, map[string]any{key: value})
}

// Patch applies several keys at once; nothing changes if any key is rejected.
func (p *Provider) Patch(ctx context.Context, playerID string, patch map[string]any) (domain.Settings, error) {
	for k := range patch {
		if !knownKey(k) {
			return p.Get(ctx, playerID), fmt.Errorf("%w: %s", ErrUnknownKey, k)
		}
	}

	cur := p.Get(ctx, playerID)
	b, err := json.Marshal(patch)
	if err != nil {
		return cur, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	next := cur
	if err := json.Unmarshal(b, &next); err != nil {
		return cur, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if err := validate(next); err != nil {
		return cur, err
	}
	p.set(ctx, playerID, next)
	return next, nil
}

func (p *Provider) ToggleTheme(ctx context.Context, playerID string) domain.Settings {
	s := p.Get(ctx, playerID)
	if s.Theme == domain.ThemeDark {
		s.Theme = domain.ThemeLight
	} else {
		s.Theme = domain.ThemeDark
	}
	p.set(ctx, playerID, s)
	return s
}

// Reset drops the stored record and returns the defaults.
func (p *Provider) Reset(ctx context.Context, playerID string) domain.Settings {
	if err := p.store.Delete(ctx, keyFor(playerID)); err != nil {
		logger.Warn("settings reset failed", "player", playerID, "error", err)
	}
	p.mu.Lock()
	p.cache[playerID] = p.defaults
	p.mu.Unlock()
	p.notify(playerID, p.defaults)
	return p.defaults
}

// Subscribe registers fn and returns a function that removes it.
func (p *Provider) Subscribe(fn Listener) (unsubscribe func()) {
	p.subMu.Lock()
	p.subSeq++
	id := p.subSeq
	p.subs[id] = fn
	p.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.subMu.Lock()
			delete(p.subs, id)
			p.subMu.Unlock()
		})
	}
}

func (p *Provider) set(ctx context.Context, playerID string, s domain.Settings) {
	p.mu.Lock()
	p.cache[playerID] = s
	p.mu.Unlock()

	if b, err := json.Marshal(s); err != nil {
		logger.Warn("settings encode failed", "player", playerID, "error", err)
	} else if err := p.store.Save(ctx, keyFor(playerID), b); err != nil {
		logger.Warn("settings save failed", "player", playerID, "error", err)
	}
	p.notify(playerID, s)
}

func (p *Provider) notify(playerID string, s domain.Settings) {
	p.subMu.RLock()
	fns := make([]Listener, 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.subMu.RUnlock()

	for _, fn := range fns {
		fn(playerID, s)
	}
}

func validate(s domain.Settings) error {
	if s.Theme != domain.ThemeDark && s.Theme != domain.ThemeLight {
		return fmt.Errorf("%w: theme %q", ErrInvalidValue, s.Theme)
	}
	if s.DefaultLevelIndex < 0 || s.DefaultLevelIndex > 2 {
		return fmt.Errorf("%w: defaultLevelIndex %d", ErrInvalidValue, s.DefaultLevelIndex)
	}
	return nil
}
