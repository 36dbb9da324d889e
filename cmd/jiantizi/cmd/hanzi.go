package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/jiantizi/internal/pinyin"
	"github.com/spf13/cobra"
)

var hanziCmd = &cobra.Command{
	Use:   "hanzi <characters>",
	Short: "Show the pinyin of Chinese characters",
	Long: `Look up the pinyin of Chinese characters and display it:
  - with tone marks
  - with tone numbers
  - without tones

Characters without a reading are skipped.

Example:
  hanzi 你好
  hanzi 好 --all   # every reading of each character`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHanzi,
}

var hanziAll bool

func init() {
	rootCmd.AddCommand(hanziCmd)
	hanziCmd.Flags().BoolVarP(&hanziAll, "all", "a", false, "List every reading of each character")
}

func runHanzi(cmd *cobra.Command, args []string) error {
	parser := pinyin.NewParser()
	out := cmd.OutOrStdout()
	input := strings.Join(args, "")

	if hanziAll {
		for _, char := range input {
			charStr := string(char)
			readings := parser.Readings(charStr)
			if len(readings) == 0 {
				continue
			}
			numbered := make([]string, len(readings))
			for i, r := range readings {
				numbered[i] = pinyin.Numbered(r)
			}
			fmt.Fprintf(out, "%s  %s  (%s)\n", charStr, strings.Join(readings, ", "), strings.Join(numbered, ", "))
		}
		return nil
	}

	reading := parser.Phrase(input)
	if reading.Hanzi == "" {
		return fmt.Errorf("no Chinese characters found in: %s", input)
	}

	fmt.Fprintf(out, "Characters: %s\n", reading.Hanzi)
	fmt.Fprintf(out, "Pinyin:     %s\n", reading.Marked)
	fmt.Fprintf(out, "Numbered:   %s\n", reading.Numbered)
	fmt.Fprintf(out, "Plain:      %s\n", reading.Plain)
	return nil
}
