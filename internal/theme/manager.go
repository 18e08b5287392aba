// internal/theme/manager.go
//
// Theme registry.
//
// Context
// -------
// The Manager owns the identifier → Theme map for one application.  Refresh
// rebuilds the whole map by running the loaders in order; it never mutates a
// live map, so readers always see a complete registry.  Filtering and
// override rules:
//
//   • A theme is admitted only when its Application matches the manager's
//     application identifier, or is the wildcard “*”.
//   • When two admitted themes share an identifier, the one from the later
//     loader wins (operator paths override packaged themes).
//
// The first read triggers a lazy refresh; concurrent first reads are
// collapsed through singleflight so the loaders run once.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
package theme

import (
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/yanizio/themes/internal/metrics"
)

// ErrNotFound is returned when an identifier is absent from the registry.
var ErrNotFound = errors.New("theme not found")

// Manager discovers themes through its loaders and answers lookups.
type Manager struct {
	appID   string
	loaders []Loader

	mu     sync.RWMutex
	themes map[string]*Theme
	loaded bool
	gen    uint64

	sfg singleflight.Group
}

// NewManager builds a Manager for the given application identifier.  Loaders
// run in the order given on every refresh.
func NewManager(appID string, loaders ...Loader) *Manager {
	return &Manager{
		appID:   appID,
		loaders: loaders,
		themes:  map[string]*Theme{},
	}
}

// Refresh rebuilds the registry from scratch.
func (m *Manager) Refresh() error {
	next := map[string]*Theme{}

	for _, load := range m.loaders {
		themes, err := load()
		if err != nil {
			return err
		}
		for _, th := range themes {
			if th.Application != m.appID && th.Application != "*" {
				zap.S().Debugw("theme rejected by application filter",
					"theme", th.Identifier, "application", th.Application)
				continue
			}
			if prev, ok := next[th.Identifier]; ok {
				zap.S().Debugw("theme overridden",
					"theme", th.Identifier, "old", prev.Path, "new", th.Path)
			}
			next[th.Identifier] = th
		}
	}

	m.mu.Lock()
	m.themes = next
	m.loaded = true
	m.gen++
	m.mu.Unlock()

	metrics.RegistryRefreshTotal.Inc()
	metrics.ThemesRegistered.Set(float64(len(next)))
	zap.S().Infow("theme registry refreshed", "themes", len(next))
	return nil
}

// ensure performs the lazy first refresh.
func (m *Manager) ensure() error {
	m.mu.RLock()
	loaded := m.loaded
	m.mu.RUnlock()
	if loaded {
		return nil
	}
	_, err, _ := m.sfg.Do("refresh", func() (interface{}, error) {
		m.mu.RLock()
		loaded := m.loaded
		m.mu.RUnlock()
		if loaded {
			return nil, nil
		}
		return nil, m.Refresh()
	})
	return err
}

// Get returns the theme for id, or ErrNotFound.
func (m *Manager) Get(id string) (*Theme, error) {
	if err := m.ensure(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	th, ok := m.themes[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return th, nil
}

// List returns every registered theme sorted by identifier.  A failed lazy
// refresh yields an empty list; the cause is logged since this signature
// cannot carry it.
func (m *Manager) List() []*Theme {
	if err := m.ensure(); err != nil {
		zap.S().Warnw("theme registry refresh failed", "err", err)
		return nil
	}
	m.mu.RLock()
	out := make([]*Theme, 0, len(m.themes))
	for _, th := range m.themes {
		out = append(out, th)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Identifier < out[j].Identifier
	})
	return out
}

// All returns a copy of the registry map.  As with List, a failed lazy
// refresh is logged and yields nil.
func (m *Manager) All() map[string]*Theme {
	if err := m.ensure(); err != nil {
		zap.S().Warnw("theme registry refresh failed", "err", err)
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*Theme, len(m.themes))
	for id, th := range m.themes {
		out[id] = th
	}
	return out
}

// Generation increments on every refresh; the render engine keys its parsed
// template cache on it so stale sets fall out after a rescan.
func (m *Manager) Generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gen
}
