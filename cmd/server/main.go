package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-chi/chi/v5"

	"github.com/plantpal/plantpal-service/internal/careguide"
	"github.com/plantpal/plantpal-service/internal/challenge"
	"github.com/plantpal/plantpal-service/internal/config"
	"github.com/plantpal/plantpal-service/internal/dashboard"
	"github.com/plantpal/plantpal-service/internal/database"
	"github.com/plantpal/plantpal-service/internal/httpapi"
	"github.com/plantpal/plantpal-service/internal/identify"
	"github.com/plantpal/plantpal-service/internal/journal"
	"github.com/plantpal/plantpal-service/internal/recipe"
	"github.com/plantpal/plantpal-service/internal/season"
	"github.com/plantpal/plantpal-service/internal/sighting"
	"github.com/plantpal/plantpal-service/internal/support"
	"github.com/plantpal/plantpal-service/pkg/auth"
	"github.com/plantpal/plantpal-service/pkg/logging"
	"github.com/plantpal/plantpal-service/pkg/server"
)

const serviceName = "plantpal-service"

type repositories struct {
	season    season.Repository
	challenge challenge.Repository
	journal   journal.Repository
	sighting  sighting.Repository
	recipe    recipe.Repository
	careguide careguide.Repository
}

func main() {
	ctx := context.Background()
	logger := logging.NewLogger(serviceName)

	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("dotenv not loaded", slog.Any("error", err))
	}
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	repos, cleanup, err := newRepositories(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("repository init error: %w", err))
	}
	defer cleanup()
	logger.Info("repositories ready", slog.String("datastore", string(cfg.DataStore)))

	clock := support.NewSystemClock()
	ids := support.NewUUIDGenerator()

	seasonService, err := season.NewService(repos.season, clock)
	if err != nil {
		panic(fmt.Errorf("season service init error: %w", err))
	}
	challengeService, err := challenge.NewService(repos.challenge)
	if err != nil {
		panic(fmt.Errorf("challenge service init error: %w", err))
	}
	journalService, err := journal.NewService(repos.journal, clock, ids)
	if err != nil {
		panic(fmt.Errorf("journal service init error: %w", err))
	}
	sightingService, err := sighting.NewService(repos.sighting, clock, ids)
	if err != nil {
		panic(fmt.Errorf("sighting service init error: %w", err))
	}
	recipeService, err := recipe.NewService(repos.recipe)
	if err != nil {
		panic(fmt.Errorf("recipe service init error: %w", err))
	}
	careGuideService, err := careguide.NewService(repos.careguide)
	if err != nil {
		panic(fmt.Errorf("care guide service init error: %w", err))
	}
	dashboardService, err := dashboard.NewService(repos.sighting, repos.recipe)
	if err != nil {
		panic(fmt.Errorf("dashboard service init error: %w", err))
	}

	verifier, err := auth.NewVerifier(auth.Config{
		Mode:     cfg.Auth.Mode,
		JWKSURL:  cfg.Auth.JWKSURL,
		Secret:   cfg.Auth.Secret,
		Audience: cfg.Auth.Audience,
		Issuer:   cfg.Auth.Issuer,
	})
	if err != nil {
		panic(fmt.Errorf("auth verifier error: %w", err))
	}

	router := server.NewRouter(serviceName, logger, func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(verifier))

			httpapi.RegisterRoutes(r, httpapi.Dependencies{
				Season:           seasonService,
				Challenges:       challengeService,
				Journal:          journalService,
				Sightings:        sightingService,
				Recipes:          recipeService,
				CareGuides:       careGuideService,
				Dashboard:        dashboardService,
				Classifier:       identify.NewClassifier(nil),
				LeaderboardLimit: cfg.LeaderboardLimit,
				Logger:           logger,
			})
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := server.Run(ctx, srv, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func newRepositories(ctx context.Context, cfg config.Config) (repositories, func(), error) {
	switch cfg.DataStore {
	case config.DataStoreFirestore:
		if cfg.Firestore.EmulatorHost != "" {
			if err := os.Setenv("FIRESTORE_EMULATOR_HOST", cfg.Firestore.EmulatorHost); err != nil {
				return repositories{}, nil, fmt.Errorf("set FIRESTORE_EMULATOR_HOST: %w", err)
			}
		}

		databaseID := cfg.Firestore.Database
		if databaseID == "" {
			databaseID = firestore.DefaultDatabaseID
		}
		client, err := firestore.NewClientWithDatabase(ctx, cfg.GCPProjectID, databaseID)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("firestore client: %w", err)
		}

		repos := repositories{
			season:    season.NewFirestoreRepository(client),
			challenge: challenge.NewFirestoreRepository(client),
			journal:   journal.NewFirestoreRepository(client),
			sighting:  sighting.NewFirestoreRepository(client),
			recipe:    recipe.NewFirestoreRepository(client),
			careguide: careguide.NewFirestoreRepository(client),
		}
		return repos, func() { _ = client.Close() }, nil
	case config.DataStorePostgres:
		pool, err := database.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("postgres: %w", err)
		}

		repos := repositories{
			season:    season.NewPostgresRepository(pool),
			challenge: challenge.NewPostgresRepository(pool),
			journal:   journal.NewPostgresRepository(pool),
			sighting:  sighting.NewPostgresRepository(pool),
			recipe:    recipe.NewPostgresRepository(pool),
			careguide: careguide.NewPostgresRepository(pool),
		}
		return repos, pool.Close, nil
	default:
		return memoryRepositories(time.Now().UTC()), func() {}, nil
	}
}
