package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucianotheforce/quotedesk/internal/budget"
	"github.com/lucianotheforce/quotedesk/internal/cli"
	"github.com/lucianotheforce/quotedesk/internal/db"
	"github.com/lucianotheforce/quotedesk/internal/intelligence"
	"github.com/lucianotheforce/quotedesk/internal/llm"
	"github.com/lucianotheforce/quotedesk/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.quotedesk/quotedesk.db
	dbPath := os.Getenv("QUOTEDESK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".quotedesk", "quotedesk.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	budgetRepo := repository.NewSQLiteBudgetRepo(database, uow)

	loaded, err := budgetRepo.Load(context.Background())
	if err != nil {
		return fmt.Errorf("loading quote: %w", err)
	}
	store := budget.NewStore(loaded)

	app := &cli.App{
		Store:   store,
		Budgets: budgetRepo,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the AI gateway (only when the generator is enabled).
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)
		app.BulkEdit = intelligence.NewBulkEditService(llmClient, store, budgetRepo)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
