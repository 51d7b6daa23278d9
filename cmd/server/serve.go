package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mossline/gardenlog/internal/app"
	"github.com/mossline/gardenlog/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Gardenlog API server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	gin.SetMode(cfg.GinMode)

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal("Failed to start:", err)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Gardenlog server on %s", addr)
	if cfg.TestMode {
		log.Println("TEST MODE ENABLED - Authentication bypassed")
	}
	log.Fatal(a.Router().Run(addr))
}
