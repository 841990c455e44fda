package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	gameapi "github.com/beka-birhanu/vinom-maze/api/game"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/runstore"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       *repo.UserRepo
	recordRepo     *repo.RecordRepo
	runStore       i.RunStore
	playService    i.Player
	runController  api_i.Controller
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	authController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

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

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(ctx context.Context, client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Warning(fmt.Sprintf("Creating user indexes: %v", err))
	}

	recordRepo = repo.NewRecordRepo(client, config.Envs.DBName, "records")
	if err := recordRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Warning(fmt.Sprintf("Creating record indexes: %v", err))
	}
	appLogger.Info("Repositories initialized")
}

func initRunStore() {
	var err error
	runStore, err = runstore.NewRedisRunStore(redisClient, config.Envs.RunTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating run store: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Run store initialized")
}

func initPlayService() {
	playLogger, err := logger.New("PLAY", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating play logger: %v", err))
		os.Exit(1)
	}

	playService, err = service.NewPlayService(runStore, recordRepo, userRepo, playLogger, &service.PlayOptions{
		DefaultRows: config.Envs.MazeDefaultRows,
		DefaultCols: config.Envs.MazeDefaultCols,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating play service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Play service initialized")
}

func initRunController() {
	var err error
	runController, err = gameapi.NewRunController(playService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating run controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Run controller initialized")
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

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, runController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos(ctx, mongoClient)
	initRunStore()
	initPlayService()
	initRunController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
