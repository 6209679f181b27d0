package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/gasproni/eventlog"
	"github.com/gasproni/eventlog/internal/config"
)

var cfgPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the heartbeat emitter and metrics endpoint",
	RunE:  runDaemon,
}

func init() {
	runCmd.Flags().StringVar(&cfgPath, "config", "configs/eventlogd.yaml", "Path to YAML config")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	// Load environment variables from .env file if it exists.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found", "error", err)
	}
	if env := os.Getenv("EVENTLOGD_CONFIG"); env != "" && !cmd.Flags().Changed("config") {
		cfgPath = env
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(cfgPath)
	if err != nil {
		return err
	}
	cfg := loader.Config()
	if err := config.Validate(cfg); err != nil {
		return err
	}

	sink, closeSink, err := openSink(cfg.Logger.Output)
	if err != nil {
		return err
	}
	var sinkMu sync.Mutex
	defer func() {
		sinkMu.Lock()
		defer sinkMu.Unlock()
		closeSink()
	}()

	// ── Event logger ─────────────────────────────────────────────────────────
	opts := []eventlog.Option{eventlog.WithOutput(sink)}
	var corr *eventlog.CorrelationID
	if cfg.Logger.Correlation {
		corr = eventlog.NewCorrelationID(nil)
		corr.Set("")
		opts = append(opts, eventlog.WithCorrelationID(corr))
	}
	events := eventlog.NewTextStreamEventLogger(opts...)

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	currentOutput := cfg.Logger.Output
	loader.OnChange(func(newCfg *config.Config) {
		if err := config.Validate(newCfg); err != nil {
			slog.Warn("hot-reload skipped: config invalid", "err", err)
			return
		}
		sinkMu.Lock()
		defer sinkMu.Unlock()
		if newCfg.Logger.Output == currentOutput {
			return
		}
		newSink, newClose, err := openSink(newCfg.Logger.Output)
		if err != nil {
			slog.Warn("hot-reload skipped: cannot open sink", "output", newCfg.Logger.Output, "err", err)
			return
		}
		events.SetOutput(newSink)
		closeSink()
		closeSink = newClose
		currentOutput = newCfg.Logger.Output
		slog.Info("sink hot-swapped", "output", currentOutput)
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── Metrics endpoint ─────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", "err", err)
		}
	}()
	slog.Info("metrics endpoint up", "addr", cfg.Metrics.Addr)

	// ── Heartbeat loop ───────────────────────────────────────────────────────
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	interval := time.Duration(cfg.Heartbeat.IntervalMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("emitting heartbeats", "interval", interval, "output", cfg.Logger.Output)
	start := time.Now()
	var seq uint64
	for {
		select {
		case <-ctx.Done():
			slog.Info("shutting down")
			shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			defer stop()
			return srv.Shutdown(shutdownCtx)
		case t := <-ticker.C:
			seq++
			hb := heartbeat{Seq: seq, At: t, Uptime: time.Since(start)}
			if err := events.Log(hb); err != nil {
				slog.Error("heartbeat not logged", "err", err)
			}
		}
	}
}

// heartbeat is the demo event emitted on every tick.
type heartbeat struct {
	Seq    uint64
	At     time.Time
	Uptime time.Duration
}

func (h heartbeat) EventType() string { return "Heartbeat" }

func (h heartbeat) EventFields() []eventlog.Field {
	return []eventlog.Field{
		eventlog.Uint("seq", h.Seq),
		eventlog.Time("at", h.At),
		eventlog.Float("uptime_seconds", h.Uptime.Seconds()),
	}
}

// openSink resolves a config output target to a writer plus cleanup.
func openSink(target string) (io.Writer, func(), error) {
	switch target {
	case config.OutputStdout:
		return os.Stdout, func() {}, nil
	case config.OutputStderr:
		return os.Stderr, func() {}, nil
	default:
		f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
}
