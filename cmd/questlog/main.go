// Package main starts the questlog web application.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	questlogcmd "github.com/Thijsn04/QuestLog/internal/cmd/questlog"
	platformcmd "github.com/Thijsn04/QuestLog/internal/platform/cmd"
)

func main() {
	cfg, err := questlogcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[QUESTLOG] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceQuestLog, func(ctx context.Context) error {
		return questlogcmd.Run(ctx, cfg)
	})
	if err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
