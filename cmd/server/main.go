package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"

	"portfolio-terminal/internal/config"
	"portfolio-terminal/internal/content"
	"portfolio-terminal/internal/server"
)

func main() {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "portfolio",
	}))

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal("load config", "err", err)
	}

	runtime, err := server.New(cfg, content.Default())
	if err != nil {
		log.Fatal("build ssh server", "err", err)
	}

	if err := runtime.Run(context.Background()); err != nil {
		log.Fatal("run ssh server", "err", err)
	}
}
