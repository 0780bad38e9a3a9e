package sessionapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/TrainerHol/MakeWheel/service/i"
	"github.com/gin-gonic/gin"
)

// SessionController hands out layout sessions and the tokens that name them.
type SessionController struct {
	manager   i.LayoutManager
	tokenizer i.Tokenizer
	tokenTTL  time.Duration
}

// NewSessionController initializes a SessionController.
func NewSessionController(manager i.LayoutManager, tokenizer i.Tokenizer, tokenTTL time.Duration) (*SessionController, error) {
	if manager == nil {
		return nil, errors.New("layout manager is required")
	}
	if tokenizer == nil {
		return nil, errors.New("tokenizer is required")
	}
	return &SessionController{
		manager:   manager,
		tokenizer: tokenizer,
		tokenTTL:  tokenTTL,
	}, nil
}

// RegisterPublic registers public routes.
func (c *SessionController) RegisterPublic(route *gin.RouterGroup) {
	layouts := route.Group("/layouts")
	{
		layouts.POST("", c.createSession)
	}
}

// RegisterProtected registers protected routes.
func (c *SessionController) RegisterProtected(route *gin.RouterGroup) {}

// createSession opens a fresh layout session and returns its id together
// with the bearer token the protected routes expect.
func (c *SessionController) createSession(ctx *gin.Context) {
	sessionID, err := c.manager.CreateSession()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not open a layout session"})
		return
	}

	token, err := c.tokenizer.Issue(sessionID, c.tokenTTL)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue a session token"})
		return
	}

	response := &SessionResponse{
		ID:    sessionID.String(),
		Token: token,
	}
	ctx.JSON(http.StatusCreated, response)
}
