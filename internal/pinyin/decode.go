package pinyin

import (
	"strconv"
	"strings"
)

// stripper replaces every tone glyph with its base vowel. Glyph sets are
// disjoint across vowels and tones, so pair order does not matter.
var stripper = func() *strings.Replacer {
	var pairs []string
	for _, v := range vowels {
		row := toneMarks[v]
		for _, g := range row[1:] {
			pairs = append(pairs, string(g), string(v))
		}
	}
	return strings.NewReplacer(pairs...)
}()

// RemoveToneMarks replaces every tone-marked vowel in text with its base
// vowel. All other characters are left untouched.
func RemoveToneMarks(text string) string {
	return stripper.Replace(text)
}

// Syllable is one space-delimited unit of pinyin split into its toneless
// letters and its tone.
type Syllable struct {
	Text string
	Tone Tone
}

// Marked returns the syllable with its tone mark applied.
func (s Syllable) Marked() string {
	return AddToneMarks(s.Text, s.Tone)
}

// Numbered returns the syllable with its tone digit appended. Neutral
// syllables carry no digit.
func (s Syllable) Numbered() string {
	if !s.Tone.Marked() {
		return s.Text
	}
	return s.Text + strconv.Itoa(int(s.Tone))
}

// Syllables splits marked text on whitespace. The tone of each syllable is
// taken from its first tone mark.
func Syllables(text string) []Syllable {
	fields := strings.Fields(text)
	out := make([]Syllable, 0, len(fields))
	for _, f := range fields {
		out = append(out, parseMarked(f))
	}
	return out
}

// Numbered converts marked pinyin to numbered pinyin, e.g. "nǐ hǎo" to
// "ni3 hao3". Tokens without a tone mark are returned unchanged.
func Numbered(text string) string {
	tokens := strings.Split(text, " ")
	for i, tok := range tokens {
		if s := parseMarked(tok); s.Tone.Marked() {
			tokens[i] = s.Numbered()
		}
	}
	return strings.Join(tokens, " ")
}

func parseMarked(token string) Syllable {
	s := Syllable{Text: token}
	for _, r := range token {
		if _, tone, ok := ToneOf(r); ok && tone.Marked() {
			s.Tone = tone
			break
		}
	}
	if s.Tone.Marked() {
		s.Text = RemoveToneMarks(token)
	}
	return s
}
