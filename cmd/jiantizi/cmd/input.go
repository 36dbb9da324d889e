package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/jiantizi/internal/tui"
	"github.com/spf13/cobra"
)

var inputCmd = &cobra.Command{
	Use:     "input",
	Aliases: []string{"i", "ui"},
	Short:   "Launch the interactive pinyin input",
	Long: `Launch a terminal UI for entering words.

Type numbered pinyin (ni3 hao3) and see it with tone marks (nǐ hǎo) as you
type. Leaving the character field fills in its reading.

Controls:
  Tab       Next field
  Enter     Save word
  Ctrl+Y    Copy pinyin
  Esc       Quit`,
	Args: cobra.NoArgs,
	RunE: runInput,
}

func init() {
	rootCmd.AddCommand(inputCmd)
}

func runInput(cmd *cobra.Command, args []string) error {
	enc, err := encoder()
	if err != nil {
		return err
	}

	var words tui.WordStore
	st, err := openStore(cmd.Context())
	if err != nil {
		// Still usable for conversion without a database.
		slog.Warn("word store unavailable", "error", err)
	} else {
		defer st.Close()
		words = st
	}

	p := tea.NewProgram(
		tui.New(enc, words),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
