package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/f3rmion/jiantizi/internal/vocab"
)

func TestRenderWord(t *testing.T) {
	t.Parallel()

	card := RenderWord(vocab.Word{Jiantizi: "你好", Pinyin: "nǐ hǎo", English: "hello"})
	assert.Contains(t, card, "你好")
	assert.Contains(t, card, "nǐ hǎo")
	assert.Contains(t, card, "hello")
	assert.Equal(t, 5, lipgloss.Height(card)) // border + three lines
}

func TestRenderWordWithoutEnglish(t *testing.T) {
	t.Parallel()

	card := RenderWord(vocab.Word{Jiantizi: "学习", Pinyin: "xué xí"})
	assert.Contains(t, card, "学习")
	assert.Contains(t, card, "xué xí")
	assert.Equal(t, 4, lipgloss.Height(card))
}

func TestRenderWordRowStopsAtWidth(t *testing.T) {
	t.Parallel()

	words := []vocab.Word{
		{Jiantizi: "中文", Pinyin: "zhōng wén"},
		{Jiantizi: "你好", Pinyin: "nǐ hǎo"},
		{Jiantizi: "学习", Pinyin: "xué xí"},
	}

	all := RenderWordRow(words, 0)
	for _, w := range words {
		assert.Contains(t, all, w.Jiantizi)
	}

	one := RenderWordRow(words, lipgloss.Width(RenderWord(words[0]))+1)
	assert.Contains(t, one, "中文")
	assert.NotContains(t, one, "你好")

	assert.Empty(t, RenderWordRow(nil, 80))
}
