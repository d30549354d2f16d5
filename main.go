package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"inkwell/config"
	"inkwell/database"
	"inkwell/site"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	s := site.New(db, cfg)
	r := s.Routes()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Running on http://localhost%s", cfg.Addr)
		if err := http.ListenAndServe(cfg.Addr, r); err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	// Block until a signal is received
	<-signals
	log.Println("Shutting down gracefully...")

	database.Close(db)
}
