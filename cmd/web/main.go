// Package main starts the community health web service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/smarthealth/internal/cmd/web"
	entrypoint "github.com/louisbranch/smarthealth/internal/platform/cmd"
)

func main() {
	log.SetPrefix("[WEB] ")
	if err := entrypoint.LoadEnvironment(); err != nil {
		log.Fatalf("load env: %v", err)
	}
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
