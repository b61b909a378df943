package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"dialogen/adapters/api"
	"dialogen/adapters/jsonl"
	"dialogen/adapters/llm"
	"dialogen/app"
	"dialogen/internal"
	"dialogen/internal/config"
	"dialogen/internal/rng"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	client, err := llm.NewOpenAIClient(cfg.LLM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "llm client: %v\n", err)
		os.Exit(1)
	}

	generation := app.NewGenerationService(client, cfg.Generation, cfg.LLM, nil)
	mining := app.NewMiningService(rng.New())
	writer := jsonl.NewWriter(cfg.Output)

	server := api.NewApp(cfg, generation, mining, writer)
	internal.DefaultLogger.Info("api listening on :%s", cfg.Server.Port)
	if err := server.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
