package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/jiantizi/internal/pinyin"
	"github.com/f3rmion/jiantizi/internal/tui/components"
	"github.com/f3rmion/jiantizi/internal/vocab"
)

// Input fields, in focus order.
const (
	fieldJiantizi = iota
	fieldPinyin
	fieldEnglish
	fieldCount
)

const recentLimit = 6

var fieldLabels = [fieldCount]string{"汉字", "Pinyin", "English"}

// WordStore is the storage the TUI saves words to.
type WordStore interface {
	Add(ctx context.Context, w vocab.Word) (vocab.Word, error)
	Recent(ctx context.Context, limit int) ([]vocab.Word, error)
}

// Message types
type savedMsg struct {
	word vocab.Word
	err  error
}

type recentLoadedMsg struct {
	words []vocab.Word
	err   error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Model is the pinyin input view. The pinyin field accepts numbered
// syllables and shows them with tone marks as they are typed.
type Model struct {
	inputs [fieldCount]textinput.Model
	focus  int

	enc    *pinyin.Encoder
	parser *pinyin.Parser
	store  WordStore

	recent []vocab.Word
	status string
	err    error
	copied bool

	width  int
	height int
}

// New creates the input view. store may be nil, in which case words
// cannot be saved.
func New(enc *pinyin.Encoder, store WordStore) Model {
	if enc == nil {
		enc = pinyin.NewEncoder(pinyin.StandardRules())
	}

	placeholders := [fieldCount]string{
		"Enter Chinese characters...",
		"Enter pinyin with numbers (e.g., ni3 hao3)",
		"Meaning (optional)",
	}

	m := Model{enc: enc, parser: pinyin.NewParser(), store: store}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 80
		ti.Width = 40
		ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
		ti.TextStyle = lipgloss.NewStyle().Foreground(ColorText)
		m.inputs[i] = ti
	}
	m.inputs[fieldJiantizi].TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	m.inputs[fieldJiantizi].Focus()

	return m
}

// Init loads the most recent words.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadRecent())
}

// Converted returns the pinyin field with tone marks applied.
func (m Model) Converted() string {
	return m.enc.ConvertNumbered(m.inputs[fieldPinyin].Value())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			cmd := m.setFocus((m.focus + 1) % fieldCount)
			return m, cmd
		case "shift+tab", "up":
			cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, cmd
		case "enter":
			return m.submit()
		case "ctrl+y":
			converted := m.Converted()
			if converted == "" {
				return m, nil
			}
			if err := clipboard.WriteAll(converted); err != nil {
				m.err = fmt.Errorf("copying to clipboard: %w", err)
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Saved %s (%s)", msg.word.Jiantizi, msg.word.Pinyin)
		for i := range m.inputs {
			m.inputs[i].Reset()
		}
		focusCmd := m.setFocus(fieldJiantizi)
		return m, tea.Batch(focusCmd, m.loadRecent())

	case recentLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.recent = msg.words
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves focus to field i. Leaving the character field with an
// empty pinyin field fills in the characters' reading.
func (m *Model) setFocus(i int) tea.Cmd {
	if m.focus == fieldJiantizi && i != fieldJiantizi {
		hanzi := strings.TrimSpace(m.inputs[fieldJiantizi].Value())
		if hanzi != "" && strings.TrimSpace(m.inputs[fieldPinyin].Value()) == "" {
			if r := m.parser.Phrase(hanzi); r.Numbered != "" {
				m.inputs[fieldPinyin].SetValue(r.Numbered)
			}
		}
	}

	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m Model) current() vocab.Word {
	return vocab.Word{
		Jiantizi: m.inputs[fieldJiantizi].Value(),
		Pinyin:   m.inputs[fieldPinyin].Value(),
		English:  m.inputs[fieldEnglish].Value(),
	}.Normalize(m.enc)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.store == nil {
		m.err = errors.New("no word store attached")
		return m, nil
	}

	word := m.current()
	if !word.Valid() {
		m.err = errors.New("characters and pinyin are required")
		return m, nil
	}

	store := m.store
	return m, func() tea.Msg {
		saved, err := store.Add(context.Background(), word)
		return savedMsg{word: saved, err: err}
	}
}

func (m Model) loadRecent() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		words, err := store.Recent(context.Background(), recentLimit)
		return recentLoadedMsg{words: words, err: err}
	}
}

// View renders the input view.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("拼音 Pinyin Input"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := LabelStyle
		if i == m.focus {
			label = LabelActiveStyle
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render(fieldLabels[i]), m.inputs[i].View()))
		b.WriteString("\n")
	}

	if converted := m.Converted(); converted != "" {
		b.WriteString("\n")
		b.WriteString(PreviewStyle.Render(converted))
		b.WriteString("\n")
	}

	if w := m.current(); w.Valid() {
		b.WriteString(components.RenderWord(w))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case m.copied:
		b.WriteString(StatusStyle.Render("Copied to clipboard"))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(StatusStyle.Render(m.status))
		b.WriteString("\n")
	}

	if len(m.recent) > 0 {
		b.WriteString(SectionStyle.Render("Recent words"))
		b.WriteString("\n")
		b.WriteString(components.RenderWordRow(m.recent, m.width))
		b.WriteString("\n")
	}

	help := []string{"tab: next field", "enter: save", "ctrl+y: copy pinyin", "esc: quit"}
	b.WriteString(HelpStyle.Render(strings.Join(help, " • ")))

	return b.String()
}
