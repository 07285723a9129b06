package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/radix-trie/internal/api"
	"github.com/kumarlokesh/radix-trie/internal/config"
	"github.com/kumarlokesh/radix-trie/internal/dictionary"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	addr := flag.String("addr", "", "server address (overrides config)")
	dictPath := flag.String("dict", "", "word list to preload, one word per line (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	if *debug || cfg.Server.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("Debug logging enabled")
	}

	listenAddr := cfg.Addr()
	if *addr != "" {
		listenAddr = *addr
	}
	wordList := cfg.Dictionary.Path
	if *dictPath != "" {
		wordList = *dictPath
	}

	dict := dictionary.NewService()
	if wordList != "" {
		if _, err := dict.LoadFile(wordList); err != nil {
			log.Fatal().Err(err).Msg("Failed to preload dictionary")
		}
	}

	server := api.NewServer(listenAddr, dict)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Error during shutdown")
		} else {
			log.Info().Msg("Server stopped")
		}
	}
}
