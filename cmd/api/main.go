package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/Lelo88/listas-api/internal/auth"
	"github.com/Lelo88/listas-api/internal/config"
	"github.com/Lelo88/listas-api/internal/db"
	"github.com/Lelo88/listas-api/internal/docs"
	"github.com/Lelo88/listas-api/internal/health"
	"github.com/Lelo88/listas-api/internal/httpx"
	"github.com/Lelo88/listas-api/internal/items"
	"github.com/Lelo88/listas-api/internal/lists"
	"github.com/Lelo88/listas-api/internal/logging"
	"github.com/Lelo88/listas-api/internal/vocabulary"
)

const shutdownTimeout = 10 * time.Second

// appPool es lo que la app necesita del pool: consultas, ping para /ready y cierre.
type appPool interface {
	db.DB
	Ping(ctx context.Context) error
	Close()
}

// appDeps agrupa las dependencias externas de run para poder testearlo.
type appDeps struct {
	loadEnv     func() error
	loadConfig  func() (config.Config, error)
	setupLogger func(level string) *slog.Logger
	newPool     func(ctx context.Context, url string) (appPool, error)
	serve       func(ctx context.Context, server *http.Server) error
}

var (
	loadEnvFn     = func() error { return godotenv.Load() }
	loadConfigFn  = config.Load
	setupLoggerFn = logging.Setup
	newPoolFn     = func(ctx context.Context, url string) (appPool, error) {
		pool, err := db.NewPool(ctx, url)
		if err != nil {
			return nil, err
		}
		return pool, nil
	}
	serveFn = serveHTTP
	fatal   = func(err error) {
		slog.Error("api stopped", "error", err)
		os.Exit(1)
	}
)

func main() {
	// Contexto raíz del proceso: se cancela con Ctrl+C o SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := appDeps{
		loadEnv:     loadEnvFn,
		loadConfig:  loadConfigFn,
		setupLogger: setupLoggerFn,
		newPool:     newPoolFn,
		serve:       serveFn,
	}
	if err := run(ctx, deps); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, deps appDeps) error {
	// El .env es opcional: en producción las variables vienen del entorno.
	if err := deps.loadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := deps.loadConfig()
	if err != nil {
		return err
	}

	logger := deps.setupLogger(cfg.LogLevel)

	pool, err := deps.newPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTAudience)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           buildRouter(pool, verifier, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("listening", "addr", server.Addr)
	return deps.serve(ctx, server)
}

// serveHTTP atiende hasta que ctx se cancela y después apaga el server ordenadamente.
func serveHTTP(ctx context.Context, server *http.Server) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

func buildRouter(pool appPool, verifier auth.TokenVerifier, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpx.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	// Errores de routing se manejan a nivel router.
	// Se registran antes de /api para que el subrouter los herede.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, r, http.StatusNotFound, "not_found", "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	healthHandler := health.New(pool)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	docs.RegisterRoutes(r)

	itemsRepository := items.NewRepository(pool)
	itemsHandler := items.NewHandler(items.NewService(itemsRepository))
	listsHandler := lists.NewHandler(lists.NewService(lists.NewRepository(pool), itemsRepository))

	vocabularies := make([]*vocabulary.Handler, 0, 2)
	for _, kind := range []vocabulary.Kind{vocabulary.Categories, vocabulary.Suggestions} {
		service := vocabulary.NewService(vocabulary.NewRepository(pool, kind))
		vocabularies = append(vocabularies, vocabulary.NewHandler(service, kind))
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(auth.RequireSession(verifier))

		lists.RegisterRoutes(api, listsHandler)
		items.RegisterRoutes(api, itemsHandler)
		for _, handler := range vocabularies {
			vocabulary.RegisterRoutes(api, handler)
		}
	})

	return r
}
