package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/orevault/orevault/internal/config"
	"github.com/orevault/orevault/internal/event"
	"github.com/orevault/orevault/internal/multiplier"
	"github.com/orevault/orevault/internal/reward"
	"github.com/orevault/orevault/internal/scheduler"
	"github.com/orevault/orevault/internal/server"
	"github.com/orevault/orevault/internal/stats"
	"github.com/orevault/orevault/internal/storage"
	"github.com/orevault/orevault/internal/vein"
	"github.com/orevault/orevault/internal/worker"
)

const (
	sweepInterval      = time.Second
	veinEvictInterval  = time.Minute
	shutdownTimeout    = 10 * time.Second
	veinEvictAgeFactor = 20
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, backend, err := storage.Open(ctx, &cfg.Storage)
	if err != nil {
		slog.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}
	store = storage.NewCached(storage.NewResilient(store),
		storage.SettingsCacheSize, storage.SettingsCacheTTL)
	slog.Info("Storage ready", "backend", backend)

	multipliers := multiplier.New(&cfg.Multipliers)
	detector, ticks := vein.FromConfig(&cfg.VeinMining)
	hooks := event.NewHooks()

	pool := worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize)
	pool.Start()
	defer pool.Stop()

	engine := reward.NewEngine(cfg, multipliers, detector, store, reward.LoggingLedger{}, hooks, pool)
	aggregator := stats.New(store)

	sched := scheduler.New()
	sched.Schedule(sweepInterval, multiplier.NewSweepJob(multipliers))
	sched.Schedule(veinEvictInterval, vein.NewEvictJob(detector, veinEvictAge(&cfg.VeinMining)))
	defer sched.Stop()

	reload := func(context.Context) error {
		fresh, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		engine.Reload(fresh)
		return nil
	}

	srv := server.NewServer(&cfg.Server, engine, aggregator, store, multipliers, ticks, reload)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

// veinEvictAge keeps state long enough that eviction can never race an
// active vein window.
func veinEvictAge(cfg *config.VeinMiningConfig) int64 {
	if cfg.TimeoutTicks > 0 {
		return cfg.TimeoutTicks * veinEvictAgeFactor
	}
	if cfg.TimeoutMS > 0 {
		return cfg.TimeoutMS * veinEvictAgeFactor
	}
	return vein.DefaultEvictAgeMS
}
