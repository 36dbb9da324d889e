// Package config handles settings and YAML word lists for jiantizi.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/jiantizi/internal/pinyin"
	"github.com/f3rmion/jiantizi/internal/vocab"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings holds the runtime configuration.
type Settings struct {
	DataDir  string `mapstructure:"data_dir"`
	Database string `mapstructure:"database"` // Defaults to <data_dir>/words.db
	Rules    string `mapstructure:"rules"`    // Tone placement rule set: basic or standard
	Verbose  bool   `mapstructure:"verbose"`
}

// LoadOptions controls where Load reads settings from.
type LoadOptions struct {
	Flags      *pflag.FlagSet
	ConfigFile string
	Defaults   Settings
}

// flag name -> settings key
var flagKeys = map[string]string{
	"data-dir": "data_dir",
	"db":       "database",
	"rules":    "rules",
	"verbose":  "verbose",
}

// DefaultSettings returns settings rooted at the default config directory.
func DefaultSettings() Settings {
	dir, err := GetConfigDir()
	if err != nil {
		dir = ".jiantizi"
	}
	return Settings{
		DataDir: dir,
		Rules:   pinyin.RulesStandard,
	}
}

// RegisterFlags adds the settings flags to fs.
func RegisterFlags(fs *pflag.FlagSet, defaults Settings) {
	fs.String("data-dir", defaults.DataDir, "Directory for the word database and config.yaml")
	fs.String("db", defaults.Database, "Path to the word database (default <data-dir>/words.db)")
	fs.String("rules", defaults.Rules, "Tone placement rules: basic|standard")
	fs.Bool("verbose", defaults.Verbose, "Verbose output")
}

// Load merges defaults, config file, JIANTIZI_* environment variables and
// flags, in increasing order of precedence.
func Load(opts LoadOptions) (Settings, error) {
	v := viper.New()

	v.SetDefault("data_dir", opts.Defaults.DataDir)
	v.SetDefault("database", opts.Defaults.Database)
	v.SetDefault("rules", opts.Defaults.Rules)
	v.SetDefault("verbose", opts.Defaults.Verbose)

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	v.SetEnvPrefix("JIANTIZI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(v.GetString("data_dir"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}

	if s.Database == "" {
		s.Database = filepath.Join(s.DataDir, "words.db")
	}
	if _, err := pinyin.RulesByName(s.Rules); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Encoder returns a tone mark encoder for the configured rule set.
func (s Settings) Encoder() (*pinyin.Encoder, error) {
	rules, err := pinyin.RulesByName(s.Rules)
	if err != nil {
		return nil, err
	}
	return pinyin.NewEncoder(rules), nil
}

// LoadWords loads a word list from a YAML file.
func LoadWords(path string) ([]vocab.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading words file: %w", err)
	}

	var words struct {
		Words []vocab.Word `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parsing words file: %w", err)
	}

	return words.Words, nil
}

// SaveWords saves a word list to a YAML file.
func SaveWords(path string, words []vocab.Word) error {
	data := struct {
		Words []vocab.Word `yaml:"words"`
	}{Words: words}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return fmt.Errorf("marshaling words: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing words file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "jiantizi"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
