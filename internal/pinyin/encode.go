package pinyin

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ClusterRule selects which vowel of a cluster carries the tone mark.
// If a syllable contains Pattern, the Target inside it is marked.
type ClusterRule struct {
	Pattern string
	Target  rune
}

// Rule set names accepted by RulesByName.
const (
	RulesBasic    = "basic"
	RulesStandard = "standard"
)

var basicRules = []ClusterRule{
	{Pattern: "iu", Target: 'u'},
	{Pattern: "ui", Target: 'i'},
	{Pattern: "ian", Target: 'a'},
	{Pattern: "ia", Target: 'a'},
	{Pattern: "ao", Target: 'a'},
	{Pattern: "ai", Target: 'a'},
}

// extraRules only apply to syllables the basic rules leave to the
// first-vowel fallback.
var extraRules = []ClusterRule{
	{Pattern: "ue", Target: 'e'},
	{Pattern: "üe", Target: 'e'},
	{Pattern: "uo", Target: 'o'},
	{Pattern: "ie", Target: 'e'},
	{Pattern: "ei", Target: 'e'},
	{Pattern: "ou", Target: 'o'},
	{Pattern: "ua", Target: 'a'},
	{Pattern: "io", Target: 'o'},
}

// BasicRules returns the six cluster rules: iu, ui, ian, ia, ao, ai.
func BasicRules() []ClusterRule {
	out := make([]ClusterRule, len(basicRules))
	copy(out, basicRules)
	return out
}

// StandardRules returns the basic rules followed by the rules for the
// remaining two-vowel finals (ue, üe, uo, ie, ei, ou, ua, io).
func StandardRules() []ClusterRule {
	out := make([]ClusterRule, 0, len(basicRules)+len(extraRules))
	out = append(out, basicRules...)
	return append(out, extraRules...)
}

// RulesByName returns the rule set registered under name.
func RulesByName(name string) ([]ClusterRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RulesBasic:
		return BasicRules(), nil
	case RulesStandard, "":
		return StandardRules(), nil
	default:
		return nil, fmt.Errorf("unknown rule set %q (expected %s|%s)", name, RulesBasic, RulesStandard)
	}
}

// Encoder places tone marks on syllables using an ordered list of
// cluster rules. The first matching rule wins; when none match, the first
// vowel of the syllable is marked.
type Encoder struct {
	rules []ClusterRule
}

// NewEncoder creates an encoder that checks rules in order.
func NewEncoder(rules []ClusterRule) *Encoder {
	e := &Encoder{rules: make([]ClusterRule, 0, len(rules))}
	for _, r := range rules {
		// A rule whose target is not a vowel of its pattern can never fire.
		if !isVowel(r.Target) || !strings.ContainsRune(r.Pattern, r.Target) {
			continue
		}
		e.rules = append(e.rules, r)
	}
	return e
}

// Rules returns a copy of the encoder's rules.
func (e *Encoder) Rules() []ClusterRule {
	out := make([]ClusterRule, len(e.rules))
	copy(out, e.rules)
	return out
}

var defaultEncoder = NewEncoder(StandardRules())

// AddToneMarks marks syllable with tone using the standard rules.
func AddToneMarks(syllable string, tone Tone) string {
	return defaultEncoder.AddToneMarks(syllable, tone)
}

// AddToneMarks returns syllable with one vowel replaced by its tone-marked
// glyph. Tones outside 1-4 and syllables without a vowel are returned
// unchanged.
func (e *Encoder) AddToneMarks(syllable string, tone Tone) string {
	if !tone.Marked() || syllable == "" {
		return syllable
	}

	pos, vowel := e.target(syllable)
	if pos < 0 {
		return syllable
	}

	glyph, _ := Glyph(vowel, tone)
	_, size := utf8.DecodeRuneInString(syllable[pos:])
	return syllable[:pos] + string(glyph) + syllable[pos+size:]
}

// target returns the byte offset of the vowel to mark and its lowercase
// form, or -1 if the syllable has no vowel. A matching rule marks the first
// occurrence of its target in the syllable.
func (e *Encoder) target(s string) (int, rune) {
	for _, r := range e.rules {
		if strings.Contains(s, r.Pattern) {
			return strings.IndexRune(s, r.Target), r.Target
		}
	}

	for i, r := range s {
		if lower := unicode.ToLower(r); isVowel(lower) {
			return i, lower
		}
	}
	return -1, 0
}
