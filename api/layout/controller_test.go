package layoutapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sessionapi "github.com/TrainerHol/MakeWheel/api/session"
	"github.com/TrainerHol/MakeWheel/infrastruture/scene"
	"github.com/TrainerHol/MakeWheel/layout"
	"github.com/TrainerHol/MakeWheel/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeManager records the calls the controller routes and answers them with
// canned results.
type fakeManager struct {
	result      *layout.Result
	elements    []layout.SceneObject
	err         error
	lastSession uuid.UUID
	lastParams2 layout.Params2D
	lastParams3 layout.Params3D
	lastIndex   int
	cleared     bool
}

func (f *fakeManager) CreateSession() (uuid.UUID, error) {
	return uuid.Nil, f.err
}

func (f *fakeManager) Generate2D(sessionID uuid.UUID, p layout.Params2D) (*layout.Result, error) {
	f.lastSession, f.lastParams2 = sessionID, p
	return f.result, f.err
}

func (f *fakeManager) Generate3D(sessionID uuid.UUID, p layout.Params3D) (*layout.Result, error) {
	f.lastSession, f.lastParams3 = sessionID, p
	return f.result, f.err
}

func (f *fakeManager) Elements(sessionID uuid.UUID) ([]layout.SceneObject, error) {
	f.lastSession = sessionID
	return f.elements, f.err
}

func (f *fakeManager) Clear(sessionID uuid.UUID) error {
	f.lastSession, f.cleared = sessionID, true
	return f.err
}

func (f *fakeManager) Highlight(sessionID uuid.UUID, index int) error {
	f.lastSession, f.lastIndex = sessionID, index
	return f.err
}

func (f *fakeManager) ResetColor(sessionID uuid.UUID, index int) error {
	f.lastSession, f.lastIndex = sessionID, index
	return f.err
}

func (f *fakeManager) Counts(sessionID uuid.UUID) (int, int, int, error) {
	f.lastSession = sessionID
	return 9, 0, 10, f.err
}

// realResult runs the actual engine once so response assertions see genuine
// elements.
func realResult(t *testing.T, seed int64) *layout.Result {
	t.Helper()
	engine, err := layout.New(scene.NewGraph(), nil)
	require.NoError(t, err)

	result, err := engine.Generate2D(layout.Params2D{
		CellLength: 4, WallWidth: 1, WallHeight: 6,
		GridWidth: 2, GridHeight: 2, Seed: seed,
	})
	require.NoError(t, err)
	return result
}

// setupRouter registers the protected routes behind a middleware stub that
// plants the session id the way the real authorization layer does.
func setupRouter(t *testing.T, manager i.LayoutManager, sessionID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/api/v1")
	group.Use(func(ctx *gin.Context) { ctx.Set(sessionapi.ContextSessionID, sessionID) })

	controller, err := NewLayoutController(manager)
	require.NoError(t, err)
	controller.RegisterProtected(group)
	return router
}

func performJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func valid2DBody() gin.H {
	return gin.H{
		"cell_length": 4, "wall_width": 1, "wall_height": 6,
		"grid_width": 2, "grid_height": 2, "seed": 7,
	}
}

func TestNewLayoutController(t *testing.T) {
	_, err := NewLayoutController(nil)
	assert.Error(t, err)
}

func TestGenerateMaze(t *testing.T) {
	t.Run("returns the layout with tallies", func(t *testing.T) {
		sessionID := uuid.New()
		manager := &fakeManager{result: realResult(t, 7)}
		router := setupRouter(t, manager, sessionID)

		recorder := performJSON(router, http.MethodPost, "/api/v1/layouts/maze", valid2DBody())
		require.Equal(t, http.StatusOK, recorder.Code)

		var response LayoutResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Len(t, response.Elements, 10)
		assert.Equal(t, 9, response.WallCount)
		assert.Zero(t, response.FloorCount)
		assert.Equal(t, 10, response.TotalCount)
		assert.Equal(t, int64(7), response.Seed)
		assert.Equal(t, "marker", response.Elements[9].Kind)

		assert.Equal(t, sessionID, manager.lastSession)
		assert.Equal(t, int64(7), manager.lastParams2.Seed)
		assert.Equal(t, 2, manager.lastParams2.GridWidth)
	})

	t.Run("rejects malformed bodies before the service", func(t *testing.T) {
		manager := &fakeManager{result: realResult(t, 7)}
		router := setupRouter(t, manager, uuid.New())

		body := valid2DBody()
		delete(body, "cell_length")
		recorder := performJSON(router, http.MethodPost, "/api/v1/layouts/maze", body)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, uuid.Nil, manager.lastSession)
	})

	t.Run("maps invalid parameters to 400", func(t *testing.T) {
		manager := &fakeManager{err: fmt.Errorf("%w: gridWidth", layout.ErrInvalidParam)}
		router := setupRouter(t, manager, uuid.New())

		recorder := performJSON(router, http.MethodPost, "/api/v1/layouts/maze", valid2DBody())
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "gridWidth")
	})

	t.Run("maps unknown sessions to 404", func(t *testing.T) {
		manager := &fakeManager{err: i.ErrSessionNotFound}
		router := setupRouter(t, manager, uuid.New())

		recorder := performJSON(router, http.MethodPost, "/api/v1/layouts/maze", valid2DBody())
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("rejects requests without a session", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		controller, err := NewLayoutController(&fakeManager{})
		require.NoError(t, err)
		controller.RegisterProtected(router.Group("/api/v1"))

		recorder := performJSON(router, http.MethodPost, "/api/v1/layouts/maze", valid2DBody())
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestGenerateMaze3D(t *testing.T) {
	sessionID := uuid.New()
	manager := &fakeManager{result: realResult(t, 3)}
	router := setupRouter(t, manager, sessionID)

	recorder := performJSON(router, http.MethodPost, "/api/v1/layouts/maze3d", gin.H{
		"cell_length": 4, "wall_width": 1, "wall_height": 6,
		"grid_width": 2, "grid_height": 2, "floors": 2,
		"floor_length": 4, "floor_width": 4, "seed": 3,
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, sessionID, manager.lastSession)
	assert.Equal(t, 2, manager.lastParams3.Floors)
	assert.Equal(t, 4.0, manager.lastParams3.FloorLength)
}

func TestElementsSnapshot(t *testing.T) {
	result := realResult(t, 5)
	manager := &fakeManager{elements: result.Elements}
	router := setupRouter(t, manager, uuid.New())

	recorder := performJSON(router, http.MethodGet, "/api/v1/layouts/elements", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response LayoutResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Len(t, response.Elements, 10)
	assert.Equal(t, 9, response.WallCount)
	assert.Equal(t, 10, response.TotalCount)

	// Indexes in the snapshot address highlight requests.
	for idx, el := range response.Elements {
		assert.Equal(t, idx, el.Index)
	}
}

func TestClearLayout(t *testing.T) {
	manager := &fakeManager{}
	router := setupRouter(t, manager, uuid.New())

	recorder := performJSON(router, http.MethodDelete, "/api/v1/layouts/elements", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.True(t, manager.cleared)
}

func TestHighlightRoutes(t *testing.T) {
	t.Run("element zero binds", func(t *testing.T) {
		manager := &fakeManager{lastIndex: -1}
		router := setupRouter(t, manager, uuid.New())

		recorder := performJSON(router, http.MethodPost, "/api/v1/layouts/highlight", gin.H{"index": 0})
		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Zero(t, manager.lastIndex)
	})

	t.Run("missing index is rejected", func(t *testing.T) {
		manager := &fakeManager{}
		router := setupRouter(t, manager, uuid.New())

		recorder := performJSON(router, http.MethodPost, "/api/v1/layouts/highlight", gin.H{})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("out-of-range index maps to 404", func(t *testing.T) {
		manager := &fakeManager{err: layout.ErrIndexOutOfRange}
		router := setupRouter(t, manager, uuid.New())

		recorder := performJSON(router, http.MethodPost, "/api/v1/layouts/highlight", gin.H{"index": 99})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("reset mirrors highlight", func(t *testing.T) {
		manager := &fakeManager{lastIndex: -1}
		router := setupRouter(t, manager, uuid.New())

		recorder := performJSON(router, http.MethodPost, "/api/v1/layouts/highlight/reset", gin.H{"index": 3})
		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, 3, manager.lastIndex)
	})
}

func TestCounts(t *testing.T) {
	manager := &fakeManager{}
	router := setupRouter(t, manager, uuid.New())

	recorder := performJSON(router, http.MethodGet, "/api/v1/layouts/counts", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response CountsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 9, response.WallCount)
	assert.Zero(t, response.FloorCount)
	assert.Equal(t, 10, response.TotalCount)
}
