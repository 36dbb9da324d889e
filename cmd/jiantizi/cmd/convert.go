package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/f3rmion/jiantizi/internal/pinyin"
	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark [phrase...]",
	Short: "Convert numbered pinyin to tone marks",
	Long: `Convert numbered pinyin to tone-marked pinyin. Each space-separated
syllable ending in a tone digit 1-4 gets its mark; everything else is
printed unchanged. Reads stdin line by line when no phrase is given.

Example:
  jiantizi mark ni3 hao3        # nǐ hǎo
  jiantizi mark --rules basic xue2
  echo "xue2 xi2" | jiantizi mark`,
	RunE: runMark,
}

var stripCmd = &cobra.Command{
	Use:   "strip [text...]",
	Short: "Remove tone marks from pinyin",
	Long: `Remove every tone mark, leaving base vowels.

Example:
  jiantizi strip nǐ hǎo          # ni hao`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertLines(cmd, args, pinyin.RemoveToneMarks)
	},
}

var numberCmd = &cobra.Command{
	Use:   "number [text...]",
	Short: "Convert tone marks to numbered pinyin",
	Long: `Convert tone-marked pinyin to numbered pinyin. Syllables without a
tone mark are printed unchanged.

Example:
  jiantizi number nǐ hǎo ma      # ni3 hao3 ma`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertLines(cmd, args, pinyin.Numbered)
	},
}

func init() {
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(numberCmd)
}

func runMark(cmd *cobra.Command, args []string) error {
	enc, err := encoder()
	if err != nil {
		return err
	}
	return convertLines(cmd, args, enc.ConvertNumbered)
}

// convertLines prints convert applied to the joined args, or to each line
// of stdin when there are no args.
func convertLines(cmd *cobra.Command, args []string, convert func(string) string) error {
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		fmt.Fprintln(out, convert(strings.Join(args, " ")))
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		fmt.Fprintln(out, convert(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
