// Package pinyin converts between numbered-tone pinyin ("ni3") and
// tone-marked pinyin ("nǐ").
//
// All conversion functions are fail-soft: input they cannot interpret is
// returned unchanged. The tables behind them are built once at package
// initialization and never written again, so every function is safe for
// concurrent use.
package pinyin

// Tone represents the four tones of Mandarin plus the neutral tone.
type Tone int

const (
	ToneNeutral Tone = 0 // No tone mark
	Tone1       Tone = 1 // First tone (high level) - ˉ
	Tone2       Tone = 2 // Second tone (rising) - ˊ
	Tone3       Tone = 3 // Third tone (dipping) - ˇ
	Tone4       Tone = 4 // Fourth tone (falling) - ˋ
)

// Marked reports whether t selects a tone mark.
func (t Tone) Marked() bool {
	return t >= Tone1 && t <= Tone4
}

// vowels lists the base vowels in table order.
var vowels = []rune{'a', 'e', 'i', 'o', 'u', 'ü'}

// toneMarks maps each base vowel to its glyph for tones 0 through 4.
// Index 0 is always the base vowel itself.
var toneMarks = map[rune][5]rune{
	'a': {'a', 'ā', 'á', 'ǎ', 'à'},
	'e': {'e', 'ē', 'é', 'ě', 'è'},
	'i': {'i', 'ī', 'í', 'ǐ', 'ì'},
	'o': {'o', 'ō', 'ó', 'ǒ', 'ò'},
	'u': {'u', 'ū', 'ú', 'ǔ', 'ù'},
	'ü': {'ü', 'ǖ', 'ǘ', 'ǚ', 'ǜ'},
}

type glyphInfo struct {
	base rune
	tone Tone
}

// glyphs is the reverse of toneMarks.
var glyphs = func() map[rune]glyphInfo {
	m := make(map[rune]glyphInfo, len(vowels)*5)
	for _, v := range vowels {
		for t, g := range toneMarks[v] {
			m[g] = glyphInfo{base: v, tone: Tone(t)}
		}
	}
	return m
}()

// Vowels returns the base vowels that can carry a tone mark.
func Vowels() []rune {
	out := make([]rune, len(vowels))
	copy(out, vowels)
	return out
}

// Glyph returns the glyph for vowel v carrying tone t. Tone 0 returns v.
// It reports false when v is not a base vowel or t is outside 0-4.
func Glyph(v rune, t Tone) (rune, bool) {
	row, ok := toneMarks[v]
	if !ok || t < ToneNeutral || t > Tone4 {
		return 0, false
	}
	return row[t], true
}

// ToneOf looks up a glyph in the tone table and returns its base vowel and
// tone. Base vowels report ToneNeutral.
func ToneOf(r rune) (base rune, tone Tone, ok bool) {
	info, ok := glyphs[r]
	if !ok {
		return r, ToneNeutral, false
	}
	return info.base, info.tone, true
}

// isVowel reports whether r is a base vowel.
func isVowel(r rune) bool {
	_, ok := toneMarks[r]
	return ok
}
