package i

import "github.com/gin-gonic/gin"

// Controller registers a feature's routes on the router's groups. Session
// issuance goes on the public group; everything touching a layout goes on
// the bearer-protected one.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
