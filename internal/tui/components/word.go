// Package components provides shared UI components for the TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/jiantizi/internal/vocab"
	"github.com/mattn/go-runewidth"
)

const minCardWidth = 10

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 2)

	cardCharStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d"))

	cardPinyinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Italic(true)

	cardEnglishStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))
)

// RenderWord renders a word as a card: characters, pinyin, and the english
// gloss when there is one.
func RenderWord(w vocab.Word) string {
	lines := []string{w.Jiantizi, w.Pinyin}
	if w.English != "" {
		lines = append(lines, w.English)
	}

	width := minCardWidth
	for _, l := range lines {
		if lw := runewidth.StringWidth(l); lw > width {
			width = lw
		}
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	rendered := []string{
		center.Inherit(cardCharStyle).Render(w.Jiantizi),
		center.Inherit(cardPinyinStyle).Render(w.Pinyin),
	}
	if w.English != "" {
		rendered = append(rendered, center.Inherit(cardEnglishStyle).Render(w.English))
	}

	return cardStyle.Render(strings.Join(rendered, "\n"))
}

// RenderWordRow renders cards side by side, stopping before the row would
// exceed maxWidth. A maxWidth of zero or less renders every card.
func RenderWordRow(words []vocab.Word, maxWidth int) string {
	var cards []string
	used := 0
	for _, w := range words {
		card := RenderWord(w)
		cw := lipgloss.Width(card) + 1
		if maxWidth > 0 && len(cards) > 0 && used+cw > maxWidth {
			break
		}
		cards = append(cards, card, " ")
		used += cw
	}
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards[:len(cards)-1]...)
}
