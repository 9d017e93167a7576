package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/afyachat/afyachat/internal/config"
	"github.com/afyachat/afyachat/internal/domain/catalog"
	"github.com/afyachat/afyachat/internal/domain/consult"
	"github.com/afyachat/afyachat/internal/domain/session"
	"github.com/afyachat/afyachat/internal/platform/auth"
	"github.com/afyachat/afyachat/internal/platform/db"
	"github.com/afyachat/afyachat/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "triage-server",
		Short: "AfyaChat symptom triage API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(catalogCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the triage API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the clinical catalog",
	}
	cmd.AddCommand(catalogValidateCmd())
	cmd.AddCommand(catalogStatsCmd())
	return cmd
}

func catalogValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a catalog file (or the builtin catalog)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalogFromFlag(cmd.Context(), file)
			if err != nil {
				return err
			}
			fmt.Printf("catalog ok: %d symptoms, %d conditions, %d medication groups\n",
				len(cat.Symptoms), len(cat.Conditions), len(cat.Medications))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a catalog JSON file (default: builtin catalog)")
	return cmd
}

func catalogStatsCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print catalog statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalogFromFlag(cmd.Context(), file)
			if err != nil {
				return err
			}

			medCount := 0
			for _, meds := range cat.Medications {
				medCount += len(meds)
			}
			fmt.Printf("symptoms:           %d\n", len(cat.Symptoms))
			fmt.Printf("conditions:         %d\n", len(cat.Conditions))
			fmt.Printf("medication groups:  %d (%d medications)\n", len(cat.Medications), medCount)
			fmt.Printf("duration patterns:  %d\n", len(cat.DurationPatterns))
			fmt.Printf("onset phrases:      %d\n", len(cat.OnsetPhrases))
			fmt.Printf("emergency phrases:  %d\n", len(cat.EmergencyPhrases))
			fmt.Printf("high phrases:       %d\n", len(cat.HighPhrases))
			fmt.Printf("urgency pairs:      %d\n", len(cat.UrgencyPairs))
			if dormant := cat.DormantPairs(); len(dormant) > 0 {
				fmt.Println("dormant urgency pairs (members not in the lexicon):")
				for _, p := range dormant {
					fmt.Printf("  %s + %s -> %s\n", p.First, p.Second, p.Level)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a catalog JSON file (default: builtin catalog)")
	return cmd
}

func loadCatalogFromFlag(ctx context.Context, file string) (*catalog.Catalog, error) {
	var loader catalog.Loader = catalog.BuiltinLoader{}
	if file != "" {
		loader = catalog.FileLoader{Path: file}
	}
	return loader.Load(ctx)
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()

	// Catalog
	var loader catalog.Loader
	var dbHealth echo.HandlerFunc
	switch cfg.CatalogSource {
	case "file":
		loader = catalog.FileLoader{Path: cfg.CatalogFile}
	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		loader = catalog.NewPGLoader(pool)
		dbHealth = db.HealthHandler(pool)
	default:
		loader = catalog.BuiltinLoader{}
	}
	cat, err := loader.Load(ctx)
	if err != nil {
		logger.Fatal().Err(err).Str("source", cfg.CatalogSource).Msg("failed to load catalog")
	}
	logger.Info().
		Str("source", cfg.CatalogSource).
		Int("symptoms", len(cat.Symptoms)).
		Int("conditions", len(cat.Conditions)).
		Msg("catalog loaded")
	for _, p := range cat.DormantPairs() {
		logger.Warn().
			Str("first", p.First).
			Str("second", p.Second).
			Msg("urgency pair names a token outside the symptom lexicon; it will never fire")
	}

	// Sessions
	store := session.NewMemoryStore(cfg.SessionTTL())
	defer store.Close()

	// Services
	consultSvc, err := consult.NewService(cat, store)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build consult service")
	}
	catalogSvc := catalog.NewService(cat)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("64K"))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	if cfg.ResolvedAuthMode() == "development" {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware([]byte(cfg.AuthSigningKey)))
	}

	// API group
	apiV1 := e.Group("/api/v1")

	// Rate limiting middleware
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Routes
	consult.NewHandler(consultSvc).RegisterRoutes(apiV1)
	catalog.NewHandler(catalogSvc).RegisterRoutes(apiV1)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		count, _ := store.Count(c.Request().Context())
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":          "ok",
			"version":         "0.1.0",
			"active_sessions": count,
		})
	})
	if dbHealth != nil {
		e.GET("/health/db", dbHealth)
	}

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
