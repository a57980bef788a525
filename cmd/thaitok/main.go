package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"thaitok/config"
	"thaitok/internal/app"
	"thaitok/internal/lib/logger/sl"
	"thaitok/internal/utils"
	"thaitok/internal/utils/frequency"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("thaitok", "env", cfg.Env, "dict_path", cfg.DictPath)

	application := app.New(log, cfg)
	log.Info("tokenizer ready", "stats", application.Tokenizer.Sealed().Stats())

	var stopOnce sync.Once
	shutdown := func() {
		stopOnce.Do(func() {
			if err := application.Stop(); err != nil {
				log.Error("failed to close trie cache", "error", sl.Err(err))
			}
		})
	}
	defer shutdown()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		shutdown()
		log.Info("gracefully stopped")
		os.Exit(0)
	}()

	ctx := context.Background()

	text, err := readInput(cfg.InputPath)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	start := time.Now()
	tokens := application.Tokenizer.TokenizeConcurrent(ctx, text, cfg.Workers)
	fmt.Printf("Tokenized %d tokens in %s\n", len(tokens), utils.FormatDuration(time.Since(start)))

	freq := &frequency.Frequency{Interval: time.Second, LastTime: time.Now()}
	for _, tok := range tokens {
		fmt.Println(tok)
		freq.Add(1)
		freq.Check(log)
	}
}

// readInput reads text from path, or from stdin if path is empty.
func readInput(path string) (string, error) {
	if path == "" {
		scanner := bufio.NewScanner(os.Stdin)
		var sb []byte
		for scanner.Scan() {
			sb = append(sb, scanner.Bytes()...)
			sb = append(sb, '\n')
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return string(sb), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	return log
}
