// Command send-report converts a security assessment report to PDF and
// emails it to a client through Microsoft Graph (or Resend).
//
// Usage:
//
//	send-report [-config path] [-type label] [-v] <report-file> [recipient-email]
//	send-report -version
//
// Release builds set the version with:
//
//	go build -ldflags "-X main.version=v1.2.0" ./cmd/send-report
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/reportmail/internal/config"
	"github.com/dmitrymomot/reportmail/internal/pipeline"
	"github.com/dmitrymomot/reportmail/pkg/logger"
	"github.com/dmitrymomot/reportmail/pkg/oauth"
)

const (
	program      = "send-report"
	flushTimeout = 2 * time.Second
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", config.DefaultFilename, "path to the JSON configuration file")
	reportType := fs.String("type", "", "report type used in the subject and intro (default from config, else \"Security Assessment\")")
	verbose := fs.Bool("v", false, "enable debug logging")
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", program, version)
		return 0
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return 1
	}

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		printError(stderr, err)
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.NewWithSentry(
		sentryConfig(cfg),
		logger.WithWriter(stderr),
		logger.WithLevel(level),
		logger.WithExtractors(logger.RunIDExtractor()),
	)
	defer logger.Flush(flushTimeout)

	ctx = logger.WithRunID(ctx, logger.NewRunID())

	session, err := pipeline.New(ctx, cfg, pipeline.WithOutput(stdout), pipeline.WithLogger(log))
	if err != nil {
		printError(stderr, err)
		return 1
	}

	req := pipeline.Request{ReportPath: fs.Arg(0), ReportType: *reportType}
	if fs.NArg() == 2 {
		req.Recipient = fs.Arg(1)
	}

	res, err := session.Deliver(ctx, req)
	if err != nil {
		log.ErrorContext(ctx, "report delivery failed", slog.String("report", req.ReportPath), slog.String("error", err.Error()))
		printError(stderr, err)
		return 1
	}
	if !res.Delivered {
		log.ErrorContext(ctx, "report delivery failed",
			slog.String("report", req.ReportPath),
			slog.String("recipient", res.Recipient),
			slog.String("error", res.Failure.Error()),
		)
		return 1
	}
	return 0
}

func sentryConfig(cfg *config.Config) logger.SentryConfig {
	return logger.SentryConfig{DSN: cfg.SentryDSN, Environment: program, Release: program + "@" + version}
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: %s [flags] <report-file> [recipient-email]\n", program)
	fmt.Fprintln(w, "\nExample:")
	fmt.Fprintf(w, "  %s example-domain-com.md\n", program)
	fmt.Fprintf(w, "  %s example-domain-com.pdf\n", program)
	fmt.Fprintf(w, "  %s example-domain-com.pdf client@example.com\n", program)
	fmt.Fprintln(w, "\nNote: Accepts both .md (markdown) and .pdf files")
	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}

func printError(w io.Writer, err error) {
	var authErr *oauth.AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		fmt.Fprintln(w, "Failed to acquire access token")
		fmt.Fprintf(w, "Error: %s\n", authErr.Code)
		fmt.Fprintf(w, "Description: %s\n", authErr.Description)
	} else {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	if hint := pipeline.Hint(err); hint != "" {
		fmt.Fprintln(w, hint)
	}
}
