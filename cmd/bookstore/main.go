package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/bookworm-labs/bookstore-api/internal/auth/http"
	authservice "github.com/bookworm-labs/bookstore-api/internal/auth/service"
	cataloghttp "github.com/bookworm-labs/bookstore-api/internal/catalog/http"
	catalogrepo "github.com/bookworm-labs/bookstore-api/internal/catalog/repository"
	catalogservice "github.com/bookworm-labs/bookstore-api/internal/catalog/service"
	"github.com/bookworm-labs/bookstore-api/internal/common/clock"
	"github.com/bookworm-labs/bookstore-api/internal/common/config"
	commoncrypto "github.com/bookworm-labs/bookstore-api/internal/common/crypto"
	commonhttp "github.com/bookworm-labs/bookstore-api/internal/common/http"
	"github.com/bookworm-labs/bookstore-api/internal/common/logger"
	srv "github.com/bookworm-labs/bookstore-api/internal/common/server"
	userrepo "github.com/bookworm-labs/bookstore-api/internal/user/repository"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "bookstore", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	userRepo := userrepo.NewMemoryRepository()
	catalogRepo := catalogrepo.NewMemoryRepository(catalogrepo.SeedBooks())

	authService := authservice.NewAuthService(
		authservice.AuthServiceDeps{
			Repo:        userRepo,
			Hasher:      &commoncrypto.BcryptHasher{},
			IDGenerator: commoncrypto.NewUUIDGenerator(),
			Clock:       clock.NewRealClock(),
			Log:         log,
		},
		authservice.AuthServiceConfig{
			JWTSecret: cfg.JWTSecret,
			TokenTTL:  cfg.TokenTTL,
		},
	)
	queryService := catalogservice.NewQueryService(catalogRepo, log)
	reviewService := catalogservice.NewReviewService(catalogRepo, log)

	authHandler := authhttp.NewHandler(authService, cfg.RequestTimeout, log)
	catalogHandler := cataloghttp.NewHandler(queryService, reviewService, cfg.JWTSecret, cfg.RequestTimeout, log)

	mux := http.NewServeMux()
	mux.Handle("/register", authHandler)
	mux.Handle("/login", authHandler)
	mux.Handle("/books", catalogHandler)
	mux.Handle("/books/", catalogHandler)
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())

	baseHandler := commonhttp.BuildBaseHandler(log, mux)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, baseHandler)

	srv.StartWithGracefulShutdown(server, log, "bookstore")
}
