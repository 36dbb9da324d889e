package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/f3rmion/jiantizi/internal/config"
	"github.com/f3rmion/jiantizi/internal/store"
	"github.com/f3rmion/jiantizi/internal/vocab"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the vocabulary word list",
	Long: `Add, list, search and delete words in the vocabulary database, and
import or export YAML word lists.

Pinyin may be given with tone numbers; it is stored with tone marks.

Example:
  jiantizi words add 你好 "ni3 hao3" hello
  jiantizi words search hao
  jiantizi words import words.yaml`,
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <jiantizi> <pinyin> [english...]",
	Short: "Add a word",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		w, err := st.Add(cmd.Context(), vocab.Word{
			Jiantizi: args[0],
			Pinyin:   args[1],
			English:  strings.Join(args[2:], " "),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added #%d %s %s\n", w.ID, w.Jiantizi, w.Pinyin)
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all words",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		words, err := st.List(cmd.Context())
		if err != nil {
			return err
		}
		printWords(cmd.OutOrStdout(), words)
		return nil
	},
}

var wordsSearchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search by characters, pinyin (tones optional) or english",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		words, err := st.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		printWords(cmd.OutOrStdout(), words)
		return nil
	},
}

var wordsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a word by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Delete(cmd.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("word %d not found", id)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d\n", id)
		return nil
	},
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import words from a YAML word list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := config.LoadWords(args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		added, skipped, err := st.Import(cmd.Context(), words)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words (%d skipped)\n", added, skipped)
		return nil
	},
}

var wordsExportCmd = &cobra.Command{
	Use:   "export <file.yaml>",
	Short: "Export all words to a YAML word list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		words, err := st.List(cmd.Context())
		if err != nil {
			return err
		}
		if err := config.SaveWords(args[0], words); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s\n", len(words), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.AddCommand(wordsAddCmd, wordsListCmd, wordsSearchCmd, wordsDeleteCmd, wordsImportCmd, wordsExportCmd)
}

// printWords prints one word per line with the character column aligned
// by display width.
func printWords(out io.Writer, words []vocab.Word) {
	if len(words) == 0 {
		fmt.Fprintln(out, "No words found.")
		return
	}

	charWidth, pinyinWidth := 0, 0
	for _, w := range words {
		charWidth = max(charWidth, runewidth.StringWidth(w.Jiantizi))
		pinyinWidth = max(pinyinWidth, runewidth.StringWidth(w.Pinyin))
	}

	for _, w := range words {
		line := fmt.Sprintf("%4d  %s  %s  %s",
			w.ID,
			runewidth.FillRight(w.Jiantizi, charWidth),
			runewidth.FillRight(w.Pinyin, pinyinWidth),
			w.English,
		)
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
}
