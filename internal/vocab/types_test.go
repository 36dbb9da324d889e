package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/f3rmion/jiantizi/internal/pinyin"
)

func TestWordNormalize(t *testing.T) {
	t.Parallel()

	enc := pinyin.NewEncoder(pinyin.StandardRules())

	got := Word{Jiantizi: " 学习 ", Pinyin: "  xue2   xi2 ", English: " study "}.Normalize(enc)
	assert.Equal(t, Word{Jiantizi: "学习", Pinyin: "xué xí", English: "study"}, got)

	marked := Word{Jiantizi: "你好", Pinyin: "nǐ hǎo"}.Normalize(enc)
	assert.Equal(t, "nǐ hǎo", marked.Pinyin)
}

func TestWordPlainPinyin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "zhong wen", Word{Pinyin: "Zhōng wén"}.PlainPinyin())
	assert.Equal(t, "lü cha", Word{Pinyin: "lǜ chá"}.PlainPinyin())
}

func TestWordValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Word{Jiantizi: "你好", Pinyin: "nǐ hǎo"}.Valid())
	assert.False(t, Word{Jiantizi: "你好"}.Valid())
	assert.False(t, Word{Pinyin: "nǐ hǎo"}.Valid())
}
