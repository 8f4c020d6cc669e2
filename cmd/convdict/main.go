package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ekisa-team/convdict/convert"
	"github.com/ekisa-team/convdict/internal/config"
	"github.com/ekisa-team/convdict/internal/env"
	"github.com/ekisa-team/convdict/internal/logger"
	"github.com/ekisa-team/convdict/internal/xfs"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		flagFields = flag.String("fields", "", "Path to field file (default: $CONVDICT_FIELDS or "+config.DefaultFieldsFile+" in the config directory)")
		flagSchema = flag.String("schema", "", "Path to field file JSON schema (default: embedded)")
		flagFormat = flag.String("format", "auto", "Document format: json, yaml or auto")
		flagOutput = flag.String("output", "json", "Output format: json or yaml")
		flagWatch  = flag.Bool("watch", false, "Re-run whenever the document or the field file changes")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <document>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	settings := env.FromEnv()

	slog.SetDefault(
		logger.New(settings.Env,
			logger.WithLevel(settings.LogLevel),
			logger.WithLogToFile(settings.LogFile != ""),
			logger.WithLogFile(xfs.ExpandTilde(settings.LogFile)),
		),
	)

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}

	ex := &extractor{
		docPath:    xfs.ExpandTilde(flag.Arg(0)),
		fieldsPath: config.ResolveFieldsPath(*flagFields),
		schemaPath: xfs.ExpandTilde(*flagSchema),
		format:     *flagFormat,
		output:     *flagOutput,
		registry:   convert.NewRegistry(),
	}

	if err := ex.run(os.Stdout); err != nil {
		slog.Error("Failed to extract fields", "document", ex.docPath, "fields", ex.fieldsPath, "error", err)
		if !*flagWatch {
			return 1
		}
	}

	if !*flagWatch {
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := config.NewWatcher([]string{ex.docPath, ex.fieldsPath}, func(path string) {
		if err := ex.run(os.Stdout); err != nil {
			slog.Error("Failed to extract fields", "changed", path, "error", err)
		}
	})
	if err != nil {
		slog.Error("Failed to create file watcher", "error", err)
		return 1
	}

	slog.Info("Watching for changes", "document", ex.docPath, "fields", ex.fieldsPath)

	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Watcher stopped", "error", err)
		return 1
	}

	return 0
}
