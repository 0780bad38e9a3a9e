package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/TrainerHol/MakeWheel/infrastruture/scene"
	"github.com/TrainerHol/MakeWheel/layout"
	"github.com/TrainerHol/MakeWheel/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures log lines; the reaper goroutine may write
// concurrently with assertions.
type recordingLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errs     []string
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, msg)
}

func (l *recordingLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errs)
}

func (l *recordingLogger) warningCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warnings)
}

func realEngineFactory() (i.LayoutEngine, error) {
	return layout.New(scene.NewGraph(), nil)
}

func newTestManager(t *testing.T) (*LayoutSessionManager, *recordingLogger) {
	t.Helper()
	logger := &recordingLogger{}
	m, err := NewLayoutSessionManager(&Config{
		EngineFactory: realEngineFactory,
		SessionTTL:    time.Hour,
		Logger:        logger,
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m, logger
}

func seeded2D(seed int64) layout.Params2D {
	return layout.Params2D{
		CellLength: 4, WallWidth: 1, WallHeight: 6,
		GridWidth: 2, GridHeight: 2, Seed: seed,
	}
}

func TestNewLayoutSessionManager(t *testing.T) {
	t.Run("requires an engine factory", func(t *testing.T) {
		_, err := NewLayoutSessionManager(&Config{Logger: &recordingLogger{}})
		assert.ErrorIs(t, err, ErrNilEngineFactory)
	})

	t.Run("requires a logger", func(t *testing.T) {
		_, err := NewLayoutSessionManager(&Config{EngineFactory: realEngineFactory})
		assert.ErrorIs(t, err, ErrNilLogger)
	})
}

func TestCreateSession(t *testing.T) {
	t.Run("hands out distinct ids", func(t *testing.T) {
		m, _ := newTestManager(t)

		first, err := m.CreateSession()
		require.NoError(t, err)
		second, err := m.CreateSession()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, first)
		assert.NotEqual(t, first, second)
	})

	t.Run("propagates factory failures", func(t *testing.T) {
		factoryErr := errors.New("no scene available")
		logger := &recordingLogger{}
		m, err := NewLayoutSessionManager(&Config{
			EngineFactory: func() (i.LayoutEngine, error) { return nil, factoryErr },
			SessionTTL:    time.Hour,
			Logger:        logger,
		})
		require.NoError(t, err)
		t.Cleanup(m.Close)

		_, err = m.CreateSession()
		assert.ErrorIs(t, err, factoryErr)
		assert.Equal(t, 1, logger.errorCount())
	})
}

// TestSessionFlow walks the whole surface a browser page drives: open a
// session, generate, inspect, recolor, clear.
func TestSessionFlow(t *testing.T) {
	m, _ := newTestManager(t)

	sessionID, err := m.CreateSession()
	require.NoError(t, err)

	result, err := m.Generate2D(sessionID, seeded2D(7))
	require.NoError(t, err)
	assert.Len(t, result.Elements, 10)

	elements, err := m.Elements(sessionID)
	require.NoError(t, err)
	assert.Len(t, elements, 10)

	walls, floors, total, err := m.Counts(sessionID)
	require.NoError(t, err)
	assert.Equal(t, 9, walls)
	assert.Zero(t, floors)
	assert.Equal(t, 10, total)

	require.NoError(t, m.Highlight(sessionID, 0))
	assert.Equal(t, layout.KindWall.HighlightColor(), elements[0].GetColor())
	require.NoError(t, m.ResetColor(sessionID, 0))
	assert.Equal(t, layout.KindWall.BaseColor(), elements[0].GetColor())

	require.NoError(t, m.Clear(sessionID))
	_, _, total, err = m.Counts(sessionID)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUnknownSessionIsRejected(t *testing.T) {
	m, _ := newTestManager(t)
	stranger := uuid.New()

	_, err := m.Generate2D(stranger, seeded2D(1))
	assert.ErrorIs(t, err, i.ErrSessionNotFound)

	_, err = m.Elements(stranger)
	assert.ErrorIs(t, err, i.ErrSessionNotFound)

	assert.ErrorIs(t, m.Clear(stranger), i.ErrSessionNotFound)
	assert.ErrorIs(t, m.Highlight(stranger, 0), i.ErrSessionNotFound)
	assert.ErrorIs(t, m.ResetColor(stranger, 0), i.ErrSessionNotFound)

	_, _, _, err = m.Counts(stranger)
	assert.ErrorIs(t, err, i.ErrSessionNotFound)
}

func TestSessionsAreIsolated(t *testing.T) {
	m, _ := newTestManager(t)

	busy, err := m.CreateSession()
	require.NoError(t, err)
	idle, err := m.CreateSession()
	require.NoError(t, err)

	_, err = m.Generate2D(busy, seeded2D(3))
	require.NoError(t, err)

	_, _, total, err := m.Counts(idle)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRejectedGenerationKeepsPreviousLayout(t *testing.T) {
	m, _ := newTestManager(t)

	sessionID, err := m.CreateSession()
	require.NoError(t, err)

	_, err = m.Generate2D(sessionID, seeded2D(5))
	require.NoError(t, err)

	bad := seeded2D(5)
	bad.GridWidth = 1
	_, err = m.Generate2D(sessionID, bad)
	assert.ErrorIs(t, err, layout.ErrInvalidParam)

	_, _, total, err := m.Counts(sessionID)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
}

func TestRepairsAreLoggedLoudly(t *testing.T) {
	logger := &recordingLogger{}
	m, err := NewLayoutSessionManager(&Config{
		EngineFactory: func() (i.LayoutEngine, error) { return &stubEngine{repaired: 2}, nil },
		SessionTTL:    time.Hour,
		Logger:        logger,
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)

	sessionID, err := m.CreateSession()
	require.NoError(t, err)

	_, err = m.Generate3D(sessionID, layout.Params3D{})
	require.NoError(t, err)
	assert.Equal(t, 1, logger.errorCount())
}

func TestReapExpired(t *testing.T) {
	m, logger := newTestManager(t)

	sessionID, err := m.CreateSession()
	require.NoError(t, err)
	_, err = m.Generate2D(sessionID, seeded2D(11))
	require.NoError(t, err)

	fresh, err := m.CreateSession()
	require.NoError(t, err)

	// Age only the first session past the TTL.
	m.Lock()
	m.sessions[sessionID].lastUsed = time.Now().Add(-2 * time.Hour)
	m.Unlock()

	m.reapExpired(time.Now())

	_, err = m.Elements(sessionID)
	assert.ErrorIs(t, err, i.ErrSessionNotFound)
	assert.Equal(t, 1, logger.warningCount())

	_, err = m.Elements(fresh)
	assert.NoError(t, err)
}

// stubEngine lets tests steer results the real engine never produces.
type stubEngine struct {
	repaired int
	cleared  bool
}

func (s *stubEngine) Generate2D(layout.Params2D) (*layout.Result, error) {
	return &layout.Result{RepairedCells: s.repaired}, nil
}

func (s *stubEngine) Generate3D(layout.Params3D) (*layout.Result, error) {
	return &layout.Result{RepairedCells: s.repaired}, nil
}

func (s *stubEngine) Clear()                         { s.cleared = true }
func (s *stubEngine) Elements() []layout.SceneObject { return nil }
func (s *stubEngine) Highlight(int) error            { return nil }
func (s *stubEngine) ResetColor(int) error           { return nil }
func (s *stubEngine) WallCount() int                 { return 0 }
func (s *stubEngine) FloorCount() int                { return 0 }
func (s *stubEngine) TotalCount() int                { return 0 }
