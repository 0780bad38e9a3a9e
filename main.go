package main

import (
	"fmt"
	"os"
	"time"

	"github.com/TrainerHol/MakeWheel/api"
	api_i "github.com/TrainerHol/MakeWheel/api/i"
	layoutapi "github.com/TrainerHol/MakeWheel/api/layout"
	sessionapi "github.com/TrainerHol/MakeWheel/api/session"
	"github.com/TrainerHol/MakeWheel/config"
	"github.com/TrainerHol/MakeWheel/infrastruture/log"
	"github.com/TrainerHol/MakeWheel/infrastruture/scene"
	"github.com/TrainerHol/MakeWheel/infrastruture/token"
	"github.com/TrainerHol/MakeWheel/layout"
	"github.com/TrainerHol/MakeWheel/service"
	"github.com/TrainerHol/MakeWheel/service/i"
)

// Global variables for dependencies
var (
	jwtTokenizer      i.Tokenizer
	layoutManager     i.LayoutManager
	sessionController api_i.Controller
	layoutController  api_i.Controller
	router            *api.Router
	appLogger         i.Logger
	engineLogger      i.Logger
)

// countLogger reports element tallies the way the browser page surfaces them
// in its count display. Implements layout.CountReporter.
type countLogger struct {
	logger i.Logger
}

func (c *countLogger) ReportCounts(walls, floors, total int) {
	c.logger.Info(fmt.Sprintf("layout elements: %d walls, %d floors, %d total", walls, floors, total))
}

// newEngine builds one layout engine drawing into its own in-memory scene
// graph. Every session gets a fresh pair.
func newEngine() (i.LayoutEngine, error) {
	return layout.New(scene.NewGraph(), &countLogger{logger: engineLogger})
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initLayoutManager() {
	var err error
	engineLogger, err = log.New("ENGINE", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating engine logger: %v", err))
		os.Exit(1)
	}

	layoutLogger, err := log.New("LAYOUT", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating layout manager logger: %v", err))
		os.Exit(1)
	}

	layoutManager, err = service.NewLayoutSessionManager(&service.Config{
		EngineFactory: newEngine,
		SessionTTL:    time.Duration(config.Envs.SessionTTLMinutes) * time.Minute,
		Logger:        layoutLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating layout session manager: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Layout session manager initialized")
}

func initSessionController() {
	tokenTTL := time.Duration(config.Envs.SessionTTLMinutes) * time.Minute
	controller, err := sessionapi.NewSessionController(layoutManager, jwtTokenizer, tokenTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session controller: %v", err))
		os.Exit(1)
	}

	sessionController = controller
	appLogger.Info("Session controller initialized")
}

func initLayoutController() {
	controller, err := layoutapi.NewLayoutController(layoutManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating layout controller: %v", err))
		os.Exit(1)
	}

	layoutController = controller
	appLogger.Info("Layout controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		GinMode:                 config.Envs.GinMode,
		Controllers:             []api_i.Controller{sessionController, layoutController},
		AuthorizationMiddleware: sessionapi.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	// Initialize dependencies
	appLogger, _ = log.New("APP", config.ColorGreen, os.Stdout)

	initJWTTokenizer()
	initLayoutManager()
	initSessionController()
	initLayoutController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
