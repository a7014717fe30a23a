package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/transport"
	"github.com/baditaflorin/go_typography_normalizer/internal/config"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "Path to the YAML config file")
	logFile := flag.String("log-file", "", "Log file path (empty = stderr)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs never go there
	output := os.Stderr
	if *logFile != "" {
		output, err = os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
	}
	log, err := logger.NewCustomStdLogger(logger.Config(output, true))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	factory, err := cfg.NormalizerFactory()
	if err != nil {
		log.Error("Invalid symbols", "error", err)
		os.Exit(1)
	}
	service, err := transport.NewService(log, factory, cfg.Stages, transport.WithStopOnError(cfg.StopOnError))
	if err != nil {
		log.Error("Failed to build pipeline", "error", err)
		os.Exit(1)
	}

	srv := server.NewMCPServer("typography-normalizer", version, server.WithToolCapabilities(false))
	transport.RegisterMCPTools(srv, service)

	log.Info("Serving MCP over stdio", "stages", service.Pipeline().Stages())
	if err := server.ServeStdio(srv); err != nil {
		log.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}
