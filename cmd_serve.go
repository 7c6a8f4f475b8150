package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/frontier-maze/api"
	api_i "github.com/beka-birhanu/frontier-maze/api/i"
	"github.com/beka-birhanu/frontier-maze/api/identity"
	mazeapi "github.com/beka-birhanu/frontier-maze/api/maze"
	"github.com/beka-birhanu/frontier-maze/config"
	"github.com/beka-birhanu/frontier-maze/infrastruture/token"
	"github.com/beka-birhanu/frontier-maze/logger"
	"github.com/beka-birhanu/frontier-maze/service"
	"github.com/beka-birhanu/frontier-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Run the maze HTTP API",
	RunE:  serve,
	Args:  cobra.NoArgs,
}

func init() {
	mainCommand.AddCommand(commandServe)
}

// Dependencies wired by serve
var (
	mazeGenerator  i.MazeGenerator
	mazeController api_i.Controller
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	authController api_i.Controller
	router         *api.Router
)

func initMazeService() error {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stderr, logger.WithLevel(appConfig.LogLevel))
	if err != nil {
		return fmt.Errorf("creating maze logger: %w", err)
	}

	mazeGenerator, err = service.NewMazeService(service.MazeOptions{
		DefaultSize: appConfig.DefaultMazeSize,
		MaxSize:     appConfig.MaxMazeSize,
		Logger:      mazeLogger,
	})
	if err != nil {
		return fmt.Errorf("creating maze service: %w", err)
	}

	appLogger.Info("Maze service initialized", "default_size", appConfig.DefaultMazeSize, "max_size", appConfig.MaxMazeSize)
	return nil
}

func initMazeController() error {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeGenerator)
	if err != nil {
		return fmt.Errorf("creating maze controller: %w", err)
	}
	appLogger.Info("Maze controller initialized")
	return nil
}

func initJWTTokenizer() error {
	if err := service.CheckSecretStrength(appConfig.JWTSecret); err != nil {
		return fmt.Errorf("JWT_SECRET: %w", err)
	}
	jwtTokenizer = token.NewJwtService(appConfig.JWTSecret, appConfig.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
	return nil
}

func initAuthService() error {
	var err error
	authService, err = service.NewAuthService(appConfig.ClientID, appConfig.ClientSecretHash, jwtTokenizer, appConfig.JWTTTL)
	if err != nil {
		return fmt.Errorf("creating auth service: %w", err)
	}
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth service initialized")
	return nil
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:                    appConfig.Addr(),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authorize(jwtTokenizer),
	})
	appLogger.Info("Router initialized", "addr", appConfig.Addr())
}

func serve(cmd *cobra.Command, args []string) error {
	defer func() {
		_ = appLogger.Sync()
	}()

	if err := appConfig.ValidateServer(); err != nil {
		return err
	}
	gin.SetMode(appConfig.GinMode)

	for _, step := range []func() error{
		initMazeService,
		initMazeController,
		initJWTTokenizer,
		initAuthService,
	} {
		if err := step(); err != nil {
			appLogger.Error("Starting server", "error", err)
			return err
		}
	}
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error("Server stopped", "error", err)
		return err
	}
	return nil
}
