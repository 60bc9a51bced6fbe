package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aretw0/peat"
	"github.com/aretw0/peat/internal/config"
	"github.com/aretw0/peat/internal/tui"
	"github.com/aretw0/peat/pkg/core"
)

var (
	verbose    bool
	configPath string
	stateDir   string
	backend    string
	readOnly   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "peat",
	Short: "A single pane notebook for your terminal",
	Long: `Peat keeps quick notes one keystroke away.
Running it with no arguments opens the interactive notebook; the
subcommands cover the same notes from scripts and pipelines.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		store, err := openStore(ctx, settings)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer store.Close()

		// Live reload is a bonus; backends without change feeds still work.
		var events <-chan core.Event
		if ch, err := store.Watch(ctx, "*"); err == nil {
			events = ch
		} else {
			slog.Debug("storage watch unavailable", "error", err)
		}

		model := tui.New(tui.Config{
			Store:  store,
			Logger: slog.Default(),
			Editor: settings.Editor,
			Events: events,
		})
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fatal("Notebook crashed", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (JSONC)")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "Directory holding the notebook state")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Storage backend (file, sqlite, memory)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Never write to storage")
}

// loadSettings resolves the effective configuration: files first, then any
// flags the user set on top.
func loadSettings() config.Config {
	wd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get working directory", err)
	}

	cfg, err := config.Load(configPath, wd)
	if err != nil {
		fatal("Failed to load config", err)
	}

	if stateDir != "" {
		cfg.StateDir = stateDir
	}
	if backend != "" {
		cfg.Backend = backend
	}
	return cfg
}

// openStore opens the note store the way every subcommand does.
func openStore(ctx context.Context, cfg config.Config) (*core.Store, error) {
	return peat.Open(ctx, cfg.StateDir,
		peat.WithBackend(cfg.Backend),
		peat.WithReadOnly(readOnly),
		peat.WithLogger(slog.Default()),
	)
}
