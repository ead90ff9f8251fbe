// Package cmd holds the startup steps shared by service commands: load the
// environment, parse config, run under telemetry.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/smarthealth/internal/platform/config"
	"github.com/louisbranch/smarthealth/internal/platform/otel"
)

// ServiceWeb names the browser-facing health web service.
const ServiceWeb = "web"

// DotEnvFile is the dotenv file commands read from the working directory.
const DotEnvFile = ".env"

const defaultTelemetryShutdown = 5 * time.Second

// LoadEnvironment exports DotEnvFile into the process environment. Variables
// already set win and a missing file is ignored.
func LoadEnvironment() error {
	return config.LoadDotEnv(DotEnvFile)
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs loads defaults from env and then parses flags.
// Flags registered against cfg fields override only when present in args.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

type runSettings struct {
	shutdownTimeout time.Duration
	setup           func(context.Context, string) (func(context.Context) error, error)
}

// RunOption adjusts RunWithTelemetry.
type RunOption func(*runSettings)

// WithShutdownTimeout bounds how long pending spans may take to flush.
func WithShutdownTimeout(d time.Duration) RunOption {
	return func(s *runSettings) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithTelemetrySetup replaces the environment-driven tracing setup.
func WithTelemetrySetup(setup func(context.Context, string) (func(context.Context) error, error)) RunOption {
	return func(s *runSettings) {
		if setup != nil {
			s.setup = setup
		}
	}
}

// RunWithTelemetry configures tracing, executes run, and flushes traces once
// run returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error, opts ...RunOption) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	settings := runSettings{shutdownTimeout: defaultTelemetryShutdown, setup: otel.Setup}
	for _, opt := range opts {
		opt(&settings)
	}

	shutdown, err := settings.setup(ctx, service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown service=%s err=%v", service, err)
		}
	}()
	return run(ctx)
}
