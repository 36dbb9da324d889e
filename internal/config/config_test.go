package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/jiantizi/internal/pinyin"
	"github.com/f3rmion/jiantizi/internal/vocab"
)

func testDefaults(t *testing.T) Settings {
	t.Helper()
	return Settings{DataDir: t.TempDir(), Rules: pinyin.RulesStandard}
}

func TestLoadDefaults(t *testing.T) {
	defaults := testDefaults(t)

	s, err := Load(LoadOptions{Defaults: defaults})
	require.NoError(t, err)

	assert.Equal(t, defaults.DataDir, s.DataDir)
	assert.Equal(t, filepath.Join(defaults.DataDir, "words.db"), s.Database)
	assert.Equal(t, pinyin.RulesStandard, s.Rules)
	assert.False(t, s.Verbose)
}

func TestLoadConfigFileInDataDir(t *testing.T) {
	defaults := testDefaults(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(defaults.DataDir, "config.yaml"),
		[]byte("rules: basic\ndatabase: /tmp/custom.db\n"),
		0644,
	))

	s, err := Load(LoadOptions{Defaults: defaults})
	require.NoError(t, err)

	assert.Equal(t, pinyin.RulesBasic, s.Rules)
	assert.Equal(t, "/tmp/custom.db", s.Database)
}

func TestLoadExplicitConfigFileMissing(t *testing.T) {
	defaults := testDefaults(t)

	_, err := Load(LoadOptions{
		Defaults:   defaults,
		ConfigFile: filepath.Join(defaults.DataDir, "missing.yaml"),
	})
	require.Error(t, err)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	defaults := testDefaults(t)
	t.Setenv("JIANTIZI_RULES", "basic")
	t.Setenv("JIANTIZI_DATABASE", "/from/env.db")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)
	require.NoError(t, fs.Parse([]string{"--db", "/from/flag.db", "--verbose"}))

	s, err := Load(LoadOptions{Flags: fs, Defaults: defaults})
	require.NoError(t, err)

	assert.Equal(t, "/from/flag.db", s.Database)
	assert.Equal(t, pinyin.RulesBasic, s.Rules)
	assert.True(t, s.Verbose)
}

func TestLoadRejectsUnknownRules(t *testing.T) {
	defaults := testDefaults(t)
	defaults.Rules = "fancy"

	_, err := Load(LoadOptions{Defaults: defaults})
	require.Error(t, err)
}

func TestSettingsEncoder(t *testing.T) {
	t.Parallel()

	enc, err := Settings{Rules: pinyin.RulesBasic}.Encoder()
	require.NoError(t, err)
	assert.Equal(t, "xúe", enc.AddToneMarks("xue", pinyin.Tone2))

	enc, err = Settings{Rules: pinyin.RulesStandard}.Encoder()
	require.NoError(t, err)
	assert.Equal(t, "xué", enc.AddToneMarks("xue", pinyin.Tone2))
}

func TestWordsRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.yaml")
	words := []vocab.Word{
		{Jiantizi: "你好", Pinyin: "nǐ hǎo", English: "hello"},
		{Jiantizi: "学习", Pinyin: "xué xí"},
	}

	require.NoError(t, SaveWords(path, words))

	got, err := LoadWords(path)
	require.NoError(t, err)
	assert.Equal(t, words, got)
}

func TestLoadWordsNumbered(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`words:
  - jiantizi: 中文
    pinyin: zhong1 wen2
    english: Chinese
`), 0644))

	got, err := LoadWords(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "zhong1 wen2", got[0].Pinyin)
	assert.Equal(t, "zhōng wén", got[0].Normalize(pinyin.NewEncoder(pinyin.StandardRules())).Pinyin)
}

func TestLoadWordsErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := LoadWords(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("words: [unclosed"), 0644))
	_, err = LoadWords(bad)
	require.Error(t, err)
}
