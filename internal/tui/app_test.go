package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/jiantizi/internal/pinyin"
	"github.com/f3rmion/jiantizi/internal/vocab"
)

type fakeStore struct {
	mu     sync.Mutex
	words  []vocab.Word
	addErr error
}

func (f *fakeStore) Add(_ context.Context, w vocab.Word) (vocab.Word, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return vocab.Word{}, f.addErr
	}
	w.ID = int64(len(f.words) + 1)
	f.words = append(f.words, w)
	return w, nil
}

func (f *fakeStore) Recent(_ context.Context, limit int) ([]vocab.Word, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []vocab.Word
	for i := len(f.words) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.words[i])
	}
	return out, nil
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestPinyinFieldConvertsAsTyped(t *testing.T) {
	t.Parallel()

	m := New(nil, nil)
	m, _ = update(t, m, key(tea.KeyTab))
	require.Equal(t, fieldPinyin, m.focus)

	m = typeText(t, m, "ni3 hao3")
	assert.Equal(t, "nǐ hǎo", m.Converted())
	assert.Contains(t, m.View(), "nǐ hǎo")

	m = typeText(t, m, " de")
	assert.Equal(t, "nǐ hǎo de", m.Converted())
}

func TestConvertedUsesEncoderRules(t *testing.T) {
	t.Parallel()

	m := New(pinyin.NewEncoder(pinyin.BasicRules()), nil)
	m, _ = update(t, m, key(tea.KeyTab))
	m = typeText(t, m, "xue2")
	assert.Equal(t, "xúe", m.Converted())
}

func TestLeavingCharacterFieldPrefillsReading(t *testing.T) {
	t.Parallel()

	m := New(nil, nil)
	m = typeText(t, m, "你好")
	m, _ = update(t, m, key(tea.KeyTab))

	assert.Equal(t, "ni3 hao3", m.inputs[fieldPinyin].Value())
	assert.Equal(t, "nǐ hǎo", m.Converted())
}

func TestPrefillKeepsTypedPinyin(t *testing.T) {
	t.Parallel()

	m := New(nil, nil)
	m, _ = update(t, m, key(tea.KeyTab))
	m = typeText(t, m, "hao4")
	m, _ = update(t, m, key(tea.KeyShiftTab))
	m = typeText(t, m, "好")
	m, _ = update(t, m, key(tea.KeyTab))

	assert.Equal(t, "hao4", m.inputs[fieldPinyin].Value())
}

func TestEnterSavesWord(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	m := New(nil, store)
	m = typeText(t, m, "学习")
	m, _ = update(t, m, key(tea.KeyTab))
	m, _ = update(t, m, key(tea.KeyTab))
	m = typeText(t, m, "study")

	m, cmd := update(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg := cmd()
	saved, ok := msg.(savedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	require.Len(t, store.words, 1)
	assert.Equal(t, vocab.Word{ID: 1, Jiantizi: "学习", Pinyin: "xué xí", English: "study"}, store.words[0])

	m, _ = update(t, m, msg)
	assert.Empty(t, m.inputs[fieldJiantizi].Value())
	assert.Empty(t, m.inputs[fieldPinyin].Value())
	assert.Equal(t, fieldJiantizi, m.focus)
	assert.Contains(t, m.View(), "Saved 学习 (xué xí)")

	recent, err := store.Recent(context.Background(), recentLimit)
	require.NoError(t, err)
	m, _ = update(t, m, recentLoadedMsg{words: recent})
	assert.Contains(t, m.View(), "Recent words")
}

func TestEnterRequiresFields(t *testing.T) {
	t.Parallel()

	m := New(nil, &fakeStore{})
	m, cmd := update(t, m, key(tea.KeyEnter))
	assert.Nil(t, cmd)
	require.Error(t, m.err)
}

func TestEnterWithoutStore(t *testing.T) {
	t.Parallel()

	m := New(nil, nil)
	m = typeText(t, m, "你")
	m, cmd := update(t, m, key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "no word store attached")
}

func TestSaveErrorIsShown(t *testing.T) {
	t.Parallel()

	m := New(nil, &fakeStore{addErr: errors.New("disk full")})
	m, _ = update(t, m, savedMsg{err: errors.New("disk full")})
	assert.Contains(t, m.View(), "disk full")
}

func TestEscQuits(t *testing.T) {
	t.Parallel()

	m := New(nil, nil)
	_, cmd := update(t, m, key(tea.KeyEsc))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
