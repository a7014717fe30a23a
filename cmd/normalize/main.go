package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/stream"
	"github.com/baditaflorin/go_typography_normalizer/internal/adapters/transport"
	"github.com/baditaflorin/go_typography_normalizer/internal/config"
	"github.com/baditaflorin/go_typography_normalizer/internal/ports"
)

// Command-line flags
var (
	inputFile  string
	outputFile string
	configPath string
	stages     string
	text       string
	parallel   bool
	workers    int
	repl       bool
	quiet      bool
	verbose    bool
)

func init() {
	// Inputs and outputs
	flag.StringVar(&inputFile, "input", "", "Article file to normalize (empty = stdin)")
	flag.StringVar(&outputFile, "output", "", "File to write normalized articles to (empty = stdout)")
	flag.StringVar(&text, "text", "", "Normalize this text instead of reading articles")

	// Normalization options
	flag.StringVar(&configPath, "config", "", "Path to the YAML config file")
	flag.StringVar(&stages, "stages", "", "Comma separated stages to run (empty = all, in default order)")

	// Performance options
	flag.BoolVar(&parallel, "parallel", false, "Normalize articles concurrently")
	flag.IntVar(&workers, "workers", 0, "Number of workers for parallel mode (0 = number of CPUs)")

	// Modes and output
	flag.BoolVar(&repl, "repl", false, "Start an interactive session")
	flag.BoolVar(&quiet, "quiet", false, "Do not print the summary")
	flag.BoolVar(&verbose, "verbose", false, "Print diagnostics of every article")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --input=articles.txt --output=clean.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --text='Він сказав: \"Привіт\"'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=big.txt --parallel --workers=8 --stages=quotation,phone\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --repl\n", os.Args[0])
	}
}

func main() {
	flag.Parse()

	// The summary goes to stderr so that stdout carries only articles
	pterm.SetDefaultOutput(os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		pterm.Error.Println(err)
		flag.Usage()
		os.Exit(1)
	}

	log, err := createLogger(cfg.Log)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	defer log.Close()

	factory, err := cfg.NormalizerFactory()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	switch {
	case repl:
		service, err := transport.NewService(log, factory, cfg.Stages, transport.WithStopOnError(cfg.StopOnError))
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		if err := runREPL(service); err != nil {
			pterm.Error.Println(err)
			os.Exit(3)
		}
	case text != "":
		service, err := transport.NewService(log, factory, cfg.Stages, transport.WithStopOnError(cfg.StopOnError))
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		resp, _ := service.NormalizeText(text, nil)
		fmt.Println(resp.Text)
		printDiagnostics(resp.Warnings, resp.Errors)
		if len(resp.Errors) > 0 {
			os.Exit(2)
		}
	default:
		processor, err := stream.NewProcessorFactory(log, factory).CreateProcessor(cfg.Stages, stream.ProcessorConfig{
			Parallel:  cfg.Stream.Parallel,
			Workers:   cfg.Stream.Workers,
			QueueSize: cfg.Stream.QueueSize,
		})
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}

		result, err := processFiles(processor)
		if err != nil {
			pterm.Error.Printf("Processing failed: %v\n", err)
			os.Exit(1)
		}
		if !quiet {
			printSummary(result, verbose)
		}
		if hasErrors(result) {
			os.Exit(2)
		}
	}
}

// loadConfig reads the config file and applies the command-line overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	if stages != "" {
		cfg.Stages = transport.SplitList(stages)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "parallel":
			cfg.Stream.Parallel = parallel
		case "workers":
			cfg.Stream.Workers = workers
		}
	})
	if quiet {
		cfg.Log.File = os.DevNull
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// createLogger logs to the configured file, or stderr when none is set
func createLogger(lc config.LogConfig) (ports.Logger, error) {
	var output io.Writer = os.Stderr
	if lc.File != "" {
		file, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}
	return logger.NewCustomStdLogger(logger.Config(output, lc.JSON))
}

// processFiles streams articles from the input to the output, stopping on SIGINT
func processFiles(processor ports.StreamProcessor) (ports.StreamResult, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var in io.Reader = os.Stdin
	if inputFile != "" {
		file, err := os.Open(inputFile)
		if err != nil {
			return ports.StreamResult{}, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		in = file
	}

	var out io.Writer = os.Stdout
	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return ports.StreamResult{}, fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		out = file
	}

	return processor.ProcessStream(ctx, in, out)
}
