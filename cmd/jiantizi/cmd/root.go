// Package cmd contains all CLI commands for the jiantizi tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/f3rmion/jiantizi/internal/config"
	"github.com/f3rmion/jiantizi/internal/pinyin"
	"github.com/f3rmion/jiantizi/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	settings config.Settings
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jiantizi",
	Short: "Type and store Chinese words with tone-marked pinyin",
	Long: `jiantizi converts numbered pinyin to tone marks and back, and keeps
a small vocabulary of simplified Chinese words.

  ni3 hao3  →  nǐ hǎo
  nǐ hǎo    →  ni3 hao3 / ni hao

Running 'jiantizi' without arguments launches the interactive pinyin input.`,
	PersistentPreRunE: loadSettings,
	RunE:              runInput,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <data-dir>/config.yaml)")
	config.RegisterFlags(rootCmd.PersistentFlags(), config.DefaultSettings())
}

// loadSettings reads settings for every command and sets up logging.
func loadSettings(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(config.LoadOptions{
		Flags:      cmd.Flags(),
		ConfigFile: cfgFile,
		Defaults:   config.DefaultSettings(),
	})
	if err != nil {
		return err
	}
	settings = loaded
	setupLogger(cmd.ErrOrStderr(), loaded.Verbose)
	slog.Debug("settings loaded", "data_dir", loaded.DataDir, "database", loaded.Database, "rules", loaded.Rules)
	return nil
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(w io.Writer, verbose bool) {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

// encoder returns the tone mark encoder for the configured rules.
func encoder() (*pinyin.Encoder, error) {
	enc, err := settings.Encoder()
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	return enc, nil
}

// openStore opens the configured word database, creating its directory.
func openStore(ctx context.Context) (*store.Store, error) {
	enc, err := encoder()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureDir(filepath.Dir(settings.Database)); err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, settings.Database, enc)
	if err != nil {
		return nil, fmt.Errorf("opening word store: %w", err)
	}
	return st, nil
}
