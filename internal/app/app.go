// Package app wires configuration, logging, the trie cache, and the
// tokenizer facade together into a single runnable application, the way
// the teacher's internal/app package wires storage and the FTS service.
package app

import (
	"log/slog"

	"thaitok/config"
	"thaitok/internal/lib/logger/sl"
	"thaitok/internal/storage/triecache"
	"thaitok/internal/utils"
	"thaitok/tokenizer"
)

// App bundles the built tokenizer with the cache store backing it, if
// caching is enabled.
type App struct {
	Tokenizer *tokenizer.Tokenizer
	cache     *triecache.Store
}

// New builds a tokenizer per cfg, consulting the trie cache first when
// enabled. It panics on an unrecoverable setup failure (a missing
// dictionary file), mirroring the teacher's own fail-fast app.New.
func New(log *slog.Logger, cfg *config.Config) *App {
	if !cfg.TrieCache.Enabled {
		tok, err := buildFromFile(log, cfg.DictPath)
		if err != nil {
			panic(err)
		}
		return &App{Tokenizer: tok}
	}

	cache, err := triecache.Open(log, cfg.TrieCache.Dir)
	if err != nil {
		panic(err)
	}

	key, err := triecache.KeyForFile(cfg.DictPath)
	if err != nil {
		panic(err)
	}

	if sealed, err := cache.Get(key); err == nil {
		log.Info("loaded sealed trie from cache", "dict_path", cfg.DictPath)
		return &App{Tokenizer: tokenizer.NewFromSealed(sealed), cache: cache}
	} else if err != triecache.ErrNotFound {
		log.Error("failed to read trie cache", "error", sl.Err(err))
	}

	tok, err := buildFromFile(log, cfg.DictPath)
	if err != nil {
		panic(err)
	}

	if err := cache.Put(key, tok.Sealed()); err != nil {
		log.Error("failed to populate trie cache", "error", sl.Err(err))
	}

	return &App{Tokenizer: tok, cache: cache}
}

// buildFromFile loads and seals a dictionary file into a tokenizer,
// logging the heap delta the build costs — dictionary parsing and trie
// sealing are the dominant one-time allocation in this process, so this
// is the one build step worth measuring.
func buildFromFile(log *slog.Logger, dictPath string) (*tokenizer.Tokenizer, error) {
	var tok *tokenizer.Tokenizer
	var buildErr error

	mem := utils.MeasureMemory(func() {
		tok, buildErr = tokenizer.NewFromFile(dictPath)
	})
	if buildErr != nil {
		return nil, buildErr
	}

	log.Info("built tokenizer from dictionary",
		"dict_path", dictPath,
		"heap_alloc_delta", mem.HeapAlloc,
		"total_alloc_delta", mem.TotalAlloc,
		"heap_objects_delta", mem.HeapObjects,
	)
	return tok, nil
}

// Stop releases the cache store, if one was opened.
func (a *App) Stop() error {
	if a.cache == nil {
		return nil
	}
	return a.cache.Close()
}
