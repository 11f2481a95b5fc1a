// Package questlog wires configuration and startup for the questlog binary.
package questlog

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Thijsn04/QuestLog/internal/ai"
	platformcmd "github.com/Thijsn04/QuestLog/internal/platform/cmd"
	"github.com/Thijsn04/QuestLog/internal/storage/sqlite"
	"github.com/Thijsn04/QuestLog/internal/web"
)

// Config holds the questlog command configuration.
type Config struct {
	HTTPAddr     string `env:"QUESTLOG_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath       string `env:"QUESTLOG_DB_PATH" envDefault:"questlog.db"`
	GeminiAPIKey string `env:"QUESTLOG_GEMINI_API_KEY"`
	GeminiModel  string `env:"QUESTLOG_GEMINI_MODEL"`
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens storage, picks the AI collaborator, and serves HTTP until the
// context is canceled.
func Run(ctx context.Context, cfg Config) error {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	collaborator, err := newCollaborator(cfg)
	if err != nil {
		return err
	}

	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Store:    store,
		AI:       collaborator,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	log.Printf("serving on http://%s", cfg.HTTPAddr)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

// newCollaborator picks Gemini when a key is configured and the offline
// fallback otherwise.
func newCollaborator(cfg Config) (ai.Collaborator, error) {
	if cfg.GeminiAPIKey == "" {
		log.Print("no Gemini API key configured, AI features run on fallbacks")
		return ai.Fallback{}, nil
	}
	gemini, err := ai.NewGemini(ai.GeminiConfig{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini collaborator: %w", err)
	}
	return gemini, nil
}
