package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"furniro/config"
	"furniro/internal/app"
)

func main() {
	cfg, loader, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer func() {
		if err := server.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	loader.OnChange(func(c *config.Config) {
		server.Shop.SetDefaultItemsPerPage(c.ItemsPerPage)
		log.Printf("Default page size is now %d", c.ItemsPerPage)
	})
	loader.Watch()

	if err := server.Start(ctx); err != nil {
		log.Printf("Failed to start background workers: %v", err)
		return
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.AppPort)
		if err := server.Fiber.Listen(cfg.AppPort); err != nil {
			log.Printf("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := server.Fiber.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
