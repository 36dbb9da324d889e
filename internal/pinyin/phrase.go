package pinyin

import (
	"strings"
	"unicode/utf8"
)

// ConvertNumbered converts a phrase of numbered syllables with the standard
// rules, e.g. "ni3 hao3" to "nǐ hǎo".
func ConvertNumbered(phrase string) string {
	return defaultEncoder.ConvertNumbered(phrase)
}

// ConvertNumbered splits phrase on single spaces and marks every token that
// ends in a tone digit 1-4. Other tokens, including ones ending in 0 or 5-9,
// pass through unchanged. Tokens are rejoined with single spaces, so runs of
// spaces survive.
func (e *Encoder) ConvertNumbered(phrase string) string {
	tokens := strings.Split(phrase, " ")
	for i, tok := range tokens {
		tokens[i] = e.convertToken(tok)
	}
	return strings.Join(tokens, " ")
}

func (e *Encoder) convertToken(tok string) string {
	last, size := utf8.DecodeLastRuneInString(tok)
	if size == 0 || last < '1' || last > '4' {
		return tok
	}
	return e.AddToneMarks(tok[:len(tok)-size], Tone(last-'0'))
}
