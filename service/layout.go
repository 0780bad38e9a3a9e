package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/TrainerHol/MakeWheel/layout"
	"github.com/TrainerHol/MakeWheel/service/i"
	"github.com/google/uuid"
)

const (
	// reapDivisor sets how often the reaper wakes relative to the session TTL.
	reapDivisor = 4
)

var (
	ErrNilEngineFactory = errors.New("engine factory is required")
	ErrNilLogger        = errors.New("logger is required")
)

// layoutSession is one browser page's engine plus the bookkeeping around it.
// The embedded mutex serializes engine access; engines are single-threaded.
type layoutSession struct {
	engine   i.LayoutEngine
	lastUsed time.Time
	sync.Mutex
}

// LayoutSessionManager owns every live layout session, keyed by session id.
// Idle sessions are reaped after the configured TTL.
type LayoutSessionManager struct {
	sessions      map[uuid.UUID]*layoutSession
	engineFactory func() (i.LayoutEngine, error)
	ttl           time.Duration
	logger        i.Logger
	done          chan struct{}
	sync.RWMutex
}

type Config struct {
	EngineFactory func() (i.LayoutEngine, error)
	SessionTTL    time.Duration
	Logger        i.Logger
}

// NewLayoutSessionManager wires a session manager and starts its reaper.
func NewLayoutSessionManager(c *Config) (*LayoutSessionManager, error) {
	if c.EngineFactory == nil {
		return nil, ErrNilEngineFactory
	}
	if c.Logger == nil {
		return nil, ErrNilLogger
	}

	m := &LayoutSessionManager{
		sessions:      make(map[uuid.UUID]*layoutSession),
		engineFactory: c.EngineFactory,
		ttl:           c.SessionTTL,
		logger:        c.Logger,
		done:          make(chan struct{}),
	}
	if m.ttl > 0 {
		go m.reapLoop()
	}
	return m, nil
}

// CreateSession builds a fresh engine and registers it under a new id.
func (m *LayoutSessionManager) CreateSession() (uuid.UUID, error) {
	engine, err := m.engineFactory()
	if err != nil {
		m.logger.Error(fmt.Sprintf("creating engine for a new session: %s", err))
		return uuid.Nil, err
	}

	m.Lock()
	defer m.Unlock()
	sessionID := m.saveSession(engine)
	m.logger.Info(fmt.Sprintf("opened layout session: %s", sessionID))
	return sessionID, nil
}

// Generate2D runs a single-floor generation in the session.
func (m *LayoutSessionManager) Generate2D(sessionID uuid.UUID, p layout.Params2D) (*layout.Result, error) {
	var result *layout.Result
	err := m.withSession(sessionID, func(engine i.LayoutEngine) error {
		var genErr error
		result, genErr = engine.Generate2D(p)
		return genErr
	})
	if err != nil {
		return nil, err
	}

	m.logRepair(sessionID, result)
	m.logger.Info(fmt.Sprintf("generated 2D maze for session %s: %d elements", sessionID, len(result.Elements)))
	return result, nil
}

// Generate3D runs a multi-floor generation in the session.
func (m *LayoutSessionManager) Generate3D(sessionID uuid.UUID, p layout.Params3D) (*layout.Result, error) {
	var result *layout.Result
	err := m.withSession(sessionID, func(engine i.LayoutEngine) error {
		var genErr error
		result, genErr = engine.Generate3D(p)
		return genErr
	})
	if err != nil {
		return nil, err
	}

	m.logRepair(sessionID, result)
	m.logger.Info(fmt.Sprintf("generated 3D maze for session %s: %d elements", sessionID, len(result.Elements)))
	return result, nil
}

// Elements returns the session's current elements in emission order.
func (m *LayoutSessionManager) Elements(sessionID uuid.UUID) ([]layout.SceneObject, error) {
	var elements []layout.SceneObject
	err := m.withSession(sessionID, func(engine i.LayoutEngine) error {
		elements = engine.Elements()
		return nil
	})
	return elements, err
}

// Clear detaches everything in the session's current layout.
func (m *LayoutSessionManager) Clear(sessionID uuid.UUID) error {
	return m.withSession(sessionID, func(engine i.LayoutEngine) error {
		engine.Clear()
		return nil
	})
}

// Highlight paints one element of the session's layout.
func (m *LayoutSessionManager) Highlight(sessionID uuid.UUID, index int) error {
	return m.withSession(sessionID, func(engine i.LayoutEngine) error {
		return engine.Highlight(index)
	})
}

// ResetColor restores one element of the session's layout.
func (m *LayoutSessionManager) ResetColor(sessionID uuid.UUID, index int) error {
	return m.withSession(sessionID, func(engine i.LayoutEngine) error {
		return engine.ResetColor(index)
	})
}

// Counts returns the session's wall, floor and total element counts.
func (m *LayoutSessionManager) Counts(sessionID uuid.UUID) (walls, floors, total int, err error) {
	err = m.withSession(sessionID, func(engine i.LayoutEngine) error {
		walls = engine.WallCount()
		floors = engine.FloorCount()
		total = engine.TotalCount()
		return nil
	})
	return walls, floors, total, err
}

// Close stops the reaper. Live sessions stay usable.
func (m *LayoutSessionManager) Close() {
	close(m.done)
}

// withSession looks the session up, serializes on its mutex, refreshes its
// idle clock and runs the operation against its engine.
func (m *LayoutSessionManager) withSession(sessionID uuid.UUID, fn func(i.LayoutEngine) error) error {
	m.RLock()
	session, ok := m.sessions[sessionID]
	m.RUnlock()
	if !ok {
		m.logger.Error(fmt.Sprintf("request for unknown layout session: %s", sessionID))
		return i.ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()
	session.lastUsed = time.Now()
	return fn(session.engine)
}

// saveSession registers the engine under a fresh id. Callers hold the write
// lock.
func (m *LayoutSessionManager) saveSession(engine i.LayoutEngine) uuid.UUID {
	sessionID := uuid.New()
	for {
		if _, ok := m.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}

	m.sessions[sessionID] = &layoutSession{engine: engine, lastUsed: time.Now()}
	return sessionID
}

// logRepair complains loudly when a generation had to anchor cells; a healthy
// walk never leaves any behind.
func (m *LayoutSessionManager) logRepair(sessionID uuid.UUID, result *layout.Result) {
	if result.RepairedCells == 0 {
		return
	}
	m.logger.Error(fmt.Sprintf("connectivity repair anchored %d cells in session %s (seed %d)",
		result.RepairedCells, sessionID, result.Seed))
}

func (m *LayoutSessionManager) reapLoop() {
	ticker := time.NewTicker(m.ttl / reapDivisor)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.reapExpired(now)
		}
	}
}

// reapExpired drops every session idle past the TTL and releases its scene
// elements. Holding each session's mutex makes the teardown wait for any
// in-flight operation.
func (m *LayoutSessionManager) reapExpired(now time.Time) {
	m.Lock()
	expired := make([]*layoutSession, 0)
	for id, session := range m.sessions {
		session.Lock()
		idle := now.Sub(session.lastUsed)
		session.Unlock()
		if idle > m.ttl {
			delete(m.sessions, id)
			expired = append(expired, session)
			m.logger.Warning(fmt.Sprintf("reaped idle layout session: %s", id))
		}
	}
	m.Unlock()

	for _, session := range expired {
		session.Lock()
		session.engine.Clear()
		session.Unlock()
	}
}
