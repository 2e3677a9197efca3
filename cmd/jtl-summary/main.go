package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/edgecomet/jtl-summary/internal/common/config"
	"github.com/edgecomet/jtl-summary/internal/common/logger"
	"github.com/edgecomet/jtl-summary/internal/pipeline"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-c config.yaml] <input.jtl> <output.csv>\n\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "Summarizes a JMeter result log into per-endpoint response times and error rates.")
	fmt.Fprintln(flag.CommandLine.Output())
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("c", "", "path to configuration file (optional)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath, outputPath := flag.Arg(0), flag.Arg(1)

	// Create initial logger for startup
	initialLogger, err := logger.NewDefaultLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	cfg, err := config.Load(*configPath, initialLogger)
	if err != nil {
		initialLogger.Fatal("Failed to load config", zap.Error(err))
	}

	zapLogger, err := logger.NewLogger(cfg.Log)
	if err != nil {
		initialLogger.Fatal("Failed to create configured logger", zap.Error(err))
	}
	defer zapLogger.Sync()

	result, err := pipeline.New(cfg, zapLogger).Run(inputPath, outputPath)
	if err != nil {
		zapLogger.Error("Summary failed", zap.Error(err))
		zapLogger.Sync()
		os.Exit(1)
	}

	zapLogger.Info("Done",
		zap.String("run_id", result.RunID),
		zap.Int("samples", result.Samples),
		zap.Int("endpoints", len(result.Rows)),
		zap.Duration("duration", result.Duration))
}
