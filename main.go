package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"SpudSRI/internal/auth"
	"SpudSRI/internal/calc/analysis"
	"SpudSRI/internal/calc/batch"
	"SpudSRI/internal/calc/export"
	"SpudSRI/internal/calc/importer"
	"SpudSRI/internal/calc/report"
	"SpudSRI/internal/config"
	"SpudSRI/internal/log"
	"SpudSRI/internal/repo"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// catalog names the rig store backing the API.
type catalog struct {
	repo.Repository
	kind string
}

func openCatalog(ctx context.Context, cfg *config.Config) (catalog, func(), error) {
	if cfg.DatabaseURL == "" {
		return catalog{Repository: repo.NewMemoryRigDB(), kind: "memory"}, func() {}, nil
	}
	db, err := repo.OpenDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return catalog{}, nil, err
	}
	rigs := repo.NewPostgresRigDB(db)
	if err := rigs.Migrate(ctx); err != nil {
		db.Close()
		return catalog{}, nil, err
	}
	return catalog{Repository: rigs, kind: "postgres"}, func() { db.Close() }, nil
}

func HandleList(router *mux.Router, cfg *config.Config, rigs catalog) {
	svc := &analysis.Service{
		Rigs: rigs,
		Defaults: analysis.Defaults{
			Dz:                cfg.DefaultDz,
			MaxDepth:          cfg.DefaultMaxDepth,
			Workers:           cfg.SweepWorkers,
			ParallelThreshold: cfg.ParallelThreshold,
		},
	}
	analysisH := &analysis.Handler{Service: svc}
	rigH := &analysis.RigHandler{Repo: rigs}
	exportH := &export.Handler{Analysis: analysisH}
	reportH := &report.Handler{Analysis: analysisH}
	batchH := &batch.Handler{Runner: &batch.Runner{Service: svc}}
	importH := &importer.Handler{}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "ok",
			"auth":    cfg.AuthEnabled(),
			"catalog": rigs.kind,
		})
	}).Methods("GET")

	secureApi := api.NewRoute().Subrouter()
	if cfg.AuthEnabled() {
		authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), PasswordHash: []byte(cfg.AccessPasswordHash)}
		api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
		secureApi.Use(authEnv.AuthMiddleware)
	}

	secureApi.HandleFunc("/analysis", analysisH.Calc).Methods("POST")
	secureApi.HandleFunc("/analysis/csv", exportH.CSV).Methods("POST")
	secureApi.HandleFunc("/analysis/xlsx", exportH.XLSX).Methods("POST")
	secureApi.HandleFunc("/analysis/pdf", reportH.PDF).Methods("POST")
	secureApi.HandleFunc("/batch", batchH.Run).Methods("POST")

	secureApi.HandleFunc("/soil/import", importH.Soil).Methods("POST")
	secureApi.HandleFunc("/soil/template", importH.Template).Methods("GET")

	secureApi.HandleFunc("/rigs", rigH.List).Methods("GET")
	secureApi.HandleFunc("/rigs/{name}", rigH.Get).Methods("GET")
	secureApi.HandleFunc("/rigs/{name}", rigH.Put).Methods("PUT")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := log.Init(cfg.Debug); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer log.Sync()

	rigs, closeRigs, err := openCatalog(ctx, cfg)
	if err != nil {
		log.Fatalf("open rig catalog: %v", err)
	}
	defer closeRigs()

	router := mux.NewRouter()
	HandleList(router, cfg, rigs)
	handler := log.AccessLog(CORS(router))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          log.ServerErrorLog(),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infow("starting server", "addr", cfg.Addr, "catalog", rigs.kind, "auth", cfg.AuthEnabled())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Infow("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server shutdown", "error", err)
	}
	wg.Wait()
	log.Infow("server stopped")
}
