package cmd

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Address string `env:"SMART_HEALTH_CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	DBPath  string `env:"SMART_HEALTH_CMD_TEST_DB_PATH" envDefault:"data/web.db"`
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("SMART_HEALTH_CMD_TEST_ADDRESS", "configarg:9000")
	t.Setenv("SMART_HEALTH_CMD_TEST_DB_PATH", "configarg.db")

	cfg := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "address", "", "address")
	fs.StringVar(&cfg.DBPath, "db-path", "", "db path")
	if err := ParseConfigFromArgs(&cfg, fs, []string{"-address", "flag:9002"}); err != nil {
		t.Fatalf("ParseConfigFromArgs() error = %v", err)
	}
	if cfg.Address != "flag:9002" {
		t.Fatalf("Address = %q, want %q", cfg.Address, "flag:9002")
	}
	if cfg.DBPath != "configarg.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "configarg.db")
	}
}

func TestParseConfigUsesDefaults(t *testing.T) {
	t.Setenv("SMART_HEALTH_CMD_TEST_ADDRESS", "")
	t.Setenv("SMART_HEALTH_CMD_TEST_DB_PATH", "")

	var cfg testConfig
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Address != "127.0.0.1:8080" || cfg.DBPath != "data/web.db" {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected nil parser error")
	}
}

func TestLoadEnvironmentReadsDotEnvFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DotEnvFile), []byte("SMART_HEALTH_CMD_TEST_DOTENV=from-file\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("SMART_HEALTH_CMD_TEST_DOTENV") })

	if err := LoadEnvironment(); err != nil {
		t.Fatalf("LoadEnvironment() error = %v", err)
	}
	if got := os.Getenv("SMART_HEALTH_CMD_TEST_DOTENV"); got != "from-file" {
		t.Fatalf("SMART_HEALTH_CMD_TEST_DOTENV = %q, want %q", got, "from-file")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	t.Parallel()

	if err := RunWithTelemetry(context.Background(), " ", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceWeb, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryFlushesAfterRun(t *testing.T) {
	t.Parallel()

	var order []string
	setup := func(_ context.Context, service string) (func(context.Context) error, error) {
		order = append(order, "setup "+service)
		return func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("shutdown context has no deadline")
			}
			order = append(order, "shutdown")
			return nil
		}, nil
	}
	want := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServiceWeb, func(context.Context) error {
		order = append(order, "run")
		return want
	}, WithTelemetrySetup(setup), WithShutdownTimeout(time.Second))
	if !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetry() error = %v, want %v", err, want)
	}
	if len(order) != 3 || order[0] != "setup web" || order[1] != "run" || order[2] != "shutdown" {
		t.Fatalf("order = %v", order)
	}
}

func TestRunWithTelemetryReportsSetupFailure(t *testing.T) {
	t.Parallel()

	failing := func(context.Context, string) (func(context.Context) error, error) {
		return nil, errors.New("collector unreachable")
	}
	ran := false
	err := RunWithTelemetry(context.Background(), ServiceWeb, func(context.Context) error {
		ran = true
		return nil
	}, WithTelemetrySetup(failing))
	if err == nil || ran {
		t.Fatalf("err = %v, ran = %t; want setup error before run", err, ran)
	}
}
