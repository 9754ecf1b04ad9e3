package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"intake-service/internal/app/config"
	"intake-service/internal/app/delivery/cli"
	"intake-service/internal/app/drivers/logger"
)

func main() {
	format := flag.String("format", cli.FormatJSON, "output format of the intake document: json or yaml")
	outPath := flag.String("out", "", "write the intake document to this file instead of stdout")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig.App.Env, driverConfig.Logger.Level, os.Stderr)

	if *format != cli.FormatJSON && *format != cli.FormatYAML {
		log.Fatalf("Unknown format %q, use json or yaml", *format)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Questions go to stderr when the document itself is written to stdout.
	var prompts io.Writer = os.Stdout
	if *outPath == "" {
		prompts = os.Stderr
	}

	document, err := cli.NewRunner(os.Stdin, prompts, log).Run(ctx)
	if err != nil {
		log.WithError(err).Fatal("Intake walk-through failed")
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		file, err := os.Create(*outPath)
		if err != nil {
			log.WithError(err).Fatal("Cannot create output file")
		}
		defer file.Close()
		out = file
	}

	if err := cli.WriteDocument(out, document, *format); err != nil {
		log.WithError(err).Fatal("Cannot write intake document")
	}
	log.WithField("format", *format).Debug("Intake document written")
}
