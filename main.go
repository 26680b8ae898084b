package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	gridapi "github.com/beka-birhanu/vinom-pathfinder/api/grid"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	searchapi "github.com/beka-birhanu/vinom-pathfinder/api/search"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/lock"
	logger "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient      *mongo.Client
	redisClient      *redis.Client
	userRepo         i.UserRepo
	runRepo          i.RunRepo
	searchLock       i.SearchLock
	workspaces       *service.Workspaces
	jwtTokenizer     i.Tokenizer
	authService      i.Authenticator
	authController   api_i.Controller
	gridController   api_i.Controller
	searchController api_i.Controller
	router           *api.Router
	appLogger        i.Logger
)

func newLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating %s logger: %v", prefix, err))
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRepos(ctx context.Context, client *mongo.Client) {
	var err error
	userRepo, err = repo.NewUserRepo(ctx, client, config.Envs.DBName, "users")
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating user repository: %v", err))
		os.Exit(1)
	}
	appLogger.Info("User repository initialized")

	runRepo, err = repo.NewRunRepo(ctx, client, config.Envs.DBName, "search_runs")
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating run repository: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Run repository initialized")
}

// initSearchLock uses redis when REDIS_ADDR is set, so that replicas share
// the one-search-per-grid rule, and an in-process lock otherwise.
func initSearchLock(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		searchLock = lock.NewLocalLock()
		appLogger.Warning("REDIS_ADDR not set, using in-process search lock")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}

	var err error
	searchLock, err = lock.NewRedisLock(redisClient, "pathfinder:", config.Envs.LockTTLSec)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating redis search lock: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initWorkspaces() {
	var err error
	workspaces, err = service.NewWorkspaces(&service.Config{
		Rows:          config.Envs.GridRows,
		Cols:          config.Envs.GridCols,
		StepDelay:     time.Duration(config.Envs.StepDelayMs) * time.Millisecond,
		PathDelay:     time.Duration(config.Envs.PathDelayMs) * time.Millisecond,
		SearchTimeout: time.Duration(config.Envs.SearchTimeoutSec) * time.Second,
		IdleTTL:       time.Duration(config.Envs.IdleWorkspaceMin) * time.Minute,
		Lock:          searchLock,
		Runs:          runRepo,
		Logger:        newLogger("WORKSPACE", config.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating workspace service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Workspace service initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)
	gridController = gridapi.NewGridController(workspaces)
	searchController = searchapi.NewSearchController(workspaces, workspaces, newLogger("SEARCH", config.ColorMagenta))
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, gridController, searchController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRepos(ctx, mongoClient)
	initSearchLock(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	initWorkspaces()
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go workspaces.Janitor(janitorCtx, time.Minute)

	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
