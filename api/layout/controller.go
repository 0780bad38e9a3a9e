package layoutapi

import (
	"errors"
	"net/http"

	sessionapi "github.com/TrainerHol/MakeWheel/api/session"
	"github.com/TrainerHol/MakeWheel/layout"
	"github.com/TrainerHol/MakeWheel/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LayoutController serves maze generation and element operations against the
// session the request's bearer token names.
type LayoutController struct {
	manager i.LayoutManager
}

// NewLayoutController initializes a LayoutController.
func NewLayoutController(manager i.LayoutManager) (*LayoutController, error) {
	if manager == nil {
		return nil, errors.New("layout manager is required")
	}
	return &LayoutController{manager: manager}, nil
}

// RegisterPublic registers public routes.
func (c *LayoutController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (c *LayoutController) RegisterProtected(route *gin.RouterGroup) {
	layouts := route.Group("/layouts")
	{
		layouts.POST("/maze", c.generateMaze)
		layouts.POST("/maze3d", c.generateMaze3D)
		layouts.GET("/elements", c.elements)
		layouts.DELETE("/elements", c.clear)
		layouts.POST("/highlight", c.highlight)
		layouts.POST("/highlight/reset", c.resetHighlight)
		layouts.GET("/counts", c.counts)
	}
}

// generateMaze handles single-floor generation requests.
func (c *LayoutController) generateMaze(ctx *gin.Context) {
	sessionID, ok := requestSession(ctx)
	if !ok {
		return
	}

	var request Maze2DRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.manager.Generate2D(sessionID, layout.Params2D{
		CellLength: request.CellLength,
		WallWidth:  request.WallWidth,
		WallHeight: request.WallHeight,
		GridWidth:  request.GridWidth,
		GridHeight: request.GridHeight,
		Seed:       request.Seed,
	})
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toLayoutResponse(result))
}

// generateMaze3D handles stacked multi-floor generation requests.
func (c *LayoutController) generateMaze3D(ctx *gin.Context) {
	sessionID, ok := requestSession(ctx)
	if !ok {
		return
	}

	var request Maze3DRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.manager.Generate3D(sessionID, layout.Params3D{
		CellLength:  request.CellLength,
		WallWidth:   request.WallWidth,
		WallHeight:  request.WallHeight,
		GridWidth:   request.GridWidth,
		GridHeight:  request.GridHeight,
		Floors:      request.Floors,
		FloorLength: request.FloorLength,
		FloorWidth:  request.FloorWidth,
		Seed:        request.Seed,
	})
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toLayoutResponse(result))
}

// elements returns the current layout as one consistent snapshot.
func (c *LayoutController) elements(ctx *gin.Context) {
	sessionID, ok := requestSession(ctx)
	if !ok {
		return
	}

	elements, err := c.manager.Elements(sessionID)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	responses, walls, floors := toElementResponses(elements)
	ctx.JSON(http.StatusOK, &LayoutResponse{
		Elements:   responses,
		WallCount:  walls,
		FloorCount: floors,
		TotalCount: len(responses),
	})
}

// clear detaches every element of the current layout.
func (c *LayoutController) clear(ctx *gin.Context) {
	sessionID, ok := requestSession(ctx)
	if !ok {
		return
	}

	if err := c.manager.Clear(sessionID); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// highlight paints one element with its kind's highlight color.
func (c *LayoutController) highlight(ctx *gin.Context) {
	c.recolor(ctx, c.manager.Highlight)
}

// resetHighlight restores one element to its kind's base color.
func (c *LayoutController) resetHighlight(ctx *gin.Context) {
	c.recolor(ctx, c.manager.ResetColor)
}

// recolor binds an element index and applies one of the two color operations
// to it.
func (c *LayoutController) recolor(ctx *gin.Context, op func(uuid.UUID, int) error) {
	sessionID, ok := requestSession(ctx)
	if !ok {
		return
	}

	var request HighlightRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := op(sessionID, *request.Index); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// counts reports the wall, floor and total element tallies.
func (c *LayoutController) counts(ctx *gin.Context) {
	sessionID, ok := requestSession(ctx)
	if !ok {
		return
	}

	walls, floors, total, err := c.manager.Counts(sessionID)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &CountsResponse{
		WallCount:  walls,
		FloorCount: floors,
		TotalCount: total,
	})
}

// requestSession pulls the session id the authorization middleware resolved.
// Requests that somehow reach a handler without one are rejected.
func requestSession(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, ok := sessionapi.SessionID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		ctx.Abort()
	}
	return sessionID, ok
}

// statusFor maps service and engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, i.ErrSessionNotFound), errors.Is(err, layout.ErrIndexOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, layout.ErrInvalidParam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
