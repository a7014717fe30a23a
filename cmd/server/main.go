package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_typography_normalizer/internal/config"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
	"github.com/baditaflorin/go_typography_normalizer/internal/warmup"
)

// DefaultConcurrency of 0 means use GOMAXPROCS
const DefaultConcurrency = 0

func main() {
	defaults := config.Default().Server

	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	addr := flag.String("addr", defaults.Addr, "HTTP listen address")
	readTimeout := flag.Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", defaults.MaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := flag.Bool("warm-up", defaults.WarmUp, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Server.Addr = *addr
		case "read-timeout":
			cfg.Server.ReadTimeout = *readTimeout
		case "write-timeout":
			cfg.Server.WriteTimeout = *writeTimeout
		case "max-request-size":
			cfg.Server.MaxRequestSize = *maxRequestSize
		case "warm-up":
			cfg.Server.WarmUp = *warmUp
		case "log-file":
			cfg.Log.File = *logFile
		}
	})

	log, err := createLogger(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting typography HTTP server",
		"addr", cfg.Server.Addr,
		"read_timeout", cfg.Server.ReadTimeout,
		"write_timeout", cfg.Server.WriteTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", *concurrency,
		"stages", cfg.Stages,
	)

	app, err := newApp(log, cfg)
	if err != nil {
		log.Error("Failed to initialize normalizers", "error", err)
		os.Exit(1)
	}

	if cfg.Server.WarmUp {
		manager := warmup.NewManager(log, warmup.DefaultWarmupConfig())
		manager.RegisterNormalizer(app.service.Pipeline())
		manager.WarmUp(context.Background())
	}

	log.Info("Normalizers initialized successfully",
		"warm_up", cfg.Server.WarmUp,
		"cpus", runtime.NumCPU(),
	)

	server := &fasthttp.Server{
		Handler:               app.requestHandler,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		MaxRequestBodySize:    cfg.Server.MaxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
		Logger:                nil, // requests are logged by the handler
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	log.Info("Server listening", "address", cfg.Server.Addr)
	if err := server.ListenAndServe(cfg.Server.Addr); err != nil {
		log.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-idleConnsClosed
	log.Info("Server stopped")
}

// createLogger creates a JSON logger writing to logFile, or stdout when it is empty
func createLogger(logFile string) (ports.Logger, error) {
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	lc := logger.Config(output, true)
	lc.MaxFileSize = 100 * 1024 * 1024 // 100MB
	return logger.NewCustomStdLogger(lc)
}
