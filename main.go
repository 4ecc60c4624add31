package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roommate_server/config"
	"roommate_server/logging"
	"roommate_server/routes"
	"roommate_server/services"

	"github.com/rs/cors"
)

// stores is the pair of store implementations picked by STORE_BACKEND
type stores struct {
	profiles services.ProfileStore
	logins   services.LoginStore
	close    func(context.Context) error
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Store.Backend {
	case config.BackendMongo:
		mongoService, err := services.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, err
		}
		return &stores{profiles: mongoService, logins: mongoService, close: mongoService.Close}, nil
	case config.BackendMemory:
		memory := services.NewMemoryStore()
		return &stores{profiles: memory, logins: memory, close: noop}, nil
	default:
		client, err := services.InitializeDynamoDBClient(ctx, cfg.AWS.Region, cfg.AWS.DynamoDBEndpoint)
		if err != nil {
			return nil, err
		}
		dynamoService := &services.DynamoService{
			Client:        client,
			ProfilesTable: cfg.Store.ProfilesTable,
			LoginsTable:   cfg.Store.LoginsTable,
		}
		return &stores{profiles: dynamoService, logins: dynamoService, close: noop}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	ctx := context.Background()

	logging.Info().Str("backend", cfg.Store.Backend).Msg("opening document stores")
	st, err := openStores(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to open stores")
	}

	svc := routes.Services{
		UserAccounts: &services.UserAccountService{Profiles: st.profiles, Logins: st.logins},
		Roommates:    &services.RoommateService{Profiles: st.profiles, Logins: st.logins},
	}
	if cfg.Photos.Bucket != "" {
		photos, err := services.NewPhotoService(ctx, cfg.Photos.Region, cfg.Photos.Bucket, cfg.Photos.BaseURL)
		if err != nil {
			logging.Warn().Err(err).Msg("photo uploads disabled")
		} else {
			svc.Photos = photos
		}
	}

	r := routes.NewRouter(svc)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := st.close(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("failed to close stores")
	}
	logging.Info().Msg("server stopped")
}
