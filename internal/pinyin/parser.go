package pinyin

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Parser looks up readings of Chinese characters.
type Parser struct {
	args gopinyin.Args
}

// NewParser creates a new pinyin parser.
func NewParser() *Parser {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // Returns tone marks: zhōng
	args.Heteronym = true      // Return all possible readings
	return &Parser{args: args}
}

// Reading is a phrase of characters with its pinyin in three forms.
type Reading struct {
	Hanzi    string // Characters that have a reading (e.g., "你好")
	Marked   string // e.g., "nǐ hǎo"
	Numbered string // e.g., "ni3 hao3"
	Plain    string // e.g., "ni hao"
}

// Readings returns all marked readings for a single character.
func (p *Parser) Readings(char string) []string {
	result := gopinyin.Pinyin(char, p.args)
	if len(result) == 0 {
		return nil
	}
	return result[0]
}

// Phrase returns the first reading of every character in hanzi. Characters
// without a reading (punctuation, Latin letters) are skipped.
func (p *Parser) Phrase(hanzi string) Reading {
	var chars strings.Builder
	var syllables []string

	for _, r := range hanzi {
		readings := p.Readings(string(r))
		if len(readings) == 0 {
			continue
		}
		chars.WriteRune(r)
		syllables = append(syllables, readings[0])
	}

	marked := strings.Join(syllables, " ")
	return Reading{
		Hanzi:    chars.String(),
		Marked:   marked,
		Numbered: Numbered(marked),
		Plain:    RemoveToneMarks(marked),
	}
}
