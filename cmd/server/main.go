package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/itsryu/ZeDoBambu/internal/system/client"
	"github.com/itsryu/ZeDoBambu/internal/system/config"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	applog "github.com/itsryu/ZeDoBambu/internal/system/log"
	"github.com/itsryu/ZeDoBambu/internal/system/managers"
	"github.com/itsryu/ZeDoBambu/internal/system/middleware"
)

func main() {
	home := getServerHome()
	const configFile = "config/deployment.yaml"

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	// Load the configuration file
	cfg, err := config.LoadConfig(home, configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize runtime configurations.
	if err := config.InitializeRuntime(home, cfg); err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	// Initialize logger
	if err := applog.Init(cfg.Log.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := applog.GetLogger()

	ctx := context.Background()
	clients, err := client.NewClients(ctx, cfg.Firebase)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase clients.", applog.Error(err))
	}
	defer func() { _ = clients.Close() }()

	redisClient := client.NewRedisClient(cfg.Redis)
	defer func() { _ = redisClient.Close() }()

	mux := initMultiplexer(cfg, clients, redisClient)
	handler := middleware.CORS(cfg.Auth.CORSAllowedOrigins, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Addr.Host, cfg.Addr.Port)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener.", applog.Error(err))
	}

	logger.Info("ZeDoBambu API started.", applog.String("addr", serverAddr))

	server := &http.Server{Handler: handler}
	if err := server.Serve(ln); err != nil {
		logger.Error("Failed to serve requests.", applog.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(cfg *config.Config, clients *client.Clients, redisClient *redis.Client) *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, managers.Dependencies{
		Config:    cfg,
		Firestore: clients.Firestore,
		Identity:  client.NewIdentityClient(clients.Auth),
		Redis:     redisClient,
	})

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		applog.GetLogger().Error("Failed to register the services.", applog.Error(err))
	}

	return mux
}

func getServerHome() string {

	projectHome := ""
	projectHomeFlag := flag.String("home", "", "Path to the server home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		projectHome = *projectHomeFlag
	} else {
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			log.Fatalf("Failed to get current working directory: %v", dirErr)
		}
		projectHome = dir
	}

	return projectHome
}
