// Package vocab provides the vocabulary word record shared by storage,
// word lists and the TUI.
package vocab

import (
	"strings"

	"github.com/f3rmion/jiantizi/internal/pinyin"
)

// Word is a simplified Chinese word with its pinyin and gloss.
type Word struct {
	ID       int64  `yaml:"-" json:"id,omitempty"`
	Jiantizi string `yaml:"jiantizi" json:"jiantizi"`                   // Simplified characters (e.g., "你好")
	Pinyin   string `yaml:"pinyin" json:"pinyin"`                       // Tone-marked pinyin (e.g., "nǐ hǎo")
	English  string `yaml:"english,omitempty" json:"english,omitempty"` // Optional gloss
}

// Normalize trims every field and converts numbered pinyin ("ni3 hao3")
// to tone marks with enc. Pinyin that is already marked is unaffected.
func (w Word) Normalize(enc *pinyin.Encoder) Word {
	w.Jiantizi = strings.TrimSpace(w.Jiantizi)
	w.English = strings.TrimSpace(w.English)
	w.Pinyin = enc.ConvertNumbered(strings.Join(strings.Fields(w.Pinyin), " "))
	return w
}

// PlainPinyin returns the pinyin without tone marks, lowercased.
func (w Word) PlainPinyin() string {
	return strings.ToLower(pinyin.RemoveToneMarks(w.Pinyin))
}

// Valid reports whether the word has the fields storage requires.
func (w Word) Valid() bool {
	return w.Jiantizi != "" && w.Pinyin != ""
}
