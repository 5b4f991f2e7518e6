package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"syspulse/internal/agent"
)

func main() {
	configPath := flag.String("config", "./agent.json", "path to agent config json")
	flag.Parse()

	a, err := agent.New(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	log.Println("sp-agent stopped")
}
