package pipeline

import "github.com/cwacek/irtokens/filters"
import "github.com/ilyakaznacheev/cleanenv"

// Options selects the stages a Pipeline runs.
type Options struct {
	// Tokenizer names a tokenizer strategy: whitespace, ngram4, complex or
	// fancy.
	Tokenizer string
	// Stopping drops stopwords using the set given to New.
	Stopping bool
	// Stemmer names a stemmer: identity, suffix_s, porter or porter2.
	Stemmer string
	// SnapshotInterval fires the snapshot callback every that many observed
	// terms. Zero only fires the final snapshot.
	SnapshotInterval int

	CaseFold             bool
	ExpandHyphens        bool
	SqueezeAbbreviations bool
	// DropSymbols discards punctuation and symbol tokens.
	DropSymbols bool

	// Encoding names the text encoding of raw records. Empty means utf8.
	Encoding string
}

func DefaultOptions() Options {
	return Options{
		Tokenizer: "whitespace",
		Stemmer:   "identity",
		Encoding:  "utf8",
	}
}

/*
Config is the file and environment form of Options, plus the settings of
the surrounding run. Values come from an optional YAML file, then from
IRTOKENS_* environment variables, then from the defaults below.

A zero value in the file counts as unset and takes the default, so every
boolean here defaults to false.
*/
type Config struct {
	Tokenizer            string `yaml:"tokenizer" env:"IRTOKENS_TOKENIZER" env-default:"whitespace"`
	Stemmer              string `yaml:"stemmer" env:"IRTOKENS_STEMMER" env-default:"identity"`
	Stopping             bool   `yaml:"stopping" env:"IRTOKENS_STOPPING" env-default:"false"`
	StopwordFile         string `yaml:"stopword_file" env:"IRTOKENS_STOPWORD_FILE"`
	SnapshotInterval     int    `yaml:"snapshot_interval" env:"IRTOKENS_SNAPSHOT_INTERVAL" env-default:"10000"`
	PreserveCase         bool   `yaml:"preserve_case" env:"IRTOKENS_PRESERVE_CASE" env-default:"false"`
	ExpandHyphens        bool   `yaml:"expand_hyphens" env:"IRTOKENS_EXPAND_HYPHENS" env-default:"false"`
	SqueezeAbbreviations bool   `yaml:"squeeze_abbreviations" env:"IRTOKENS_SQUEEZE_ABBREVIATIONS" env-default:"false"`
	DropSymbols          bool   `yaml:"drop_symbols" env:"IRTOKENS_DROP_SYMBOLS" env-default:"false"`
	Encoding             string `yaml:"encoding" env:"IRTOKENS_ENCODING" env-default:"utf8"`
	Format               string `yaml:"format" env:"IRTOKENS_FORMAT" env-default:"auto"`
	Workers              int    `yaml:"workers" env:"IRTOKENS_WORKERS" env-default:"1"`
	LogLevel             string `yaml:"log_level" env:"IRTOKENS_LOG_LEVEL" env-default:"warn"`
}

// ReadConfig loads a Config from path, or from the environment alone when
// path is empty.
func ReadConfig(path string) (Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, &ConfigurationError{Field: "environment", Value: "IRTOKENS_*", Err: err}
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, &ConfigurationError{Field: "config file", Value: path, Err: err}
	}
	return cfg, nil
}

func (c Config) Options() Options {
	return Options{
		Tokenizer:            c.Tokenizer,
		Stopping:             c.Stopping,
		Stemmer:              c.Stemmer,
		SnapshotInterval:     c.SnapshotInterval,
		CaseFold:             !c.PreserveCase,
		ExpandHyphens:        c.ExpandHyphens,
		SqueezeAbbreviations: c.SqueezeAbbreviations,
		DropSymbols:          c.DropSymbols,
		Encoding:             c.Encoding,
	}
}

// Stopwords loads the configured stopword list: the named file, or the
// built in list when no file is set. It returns nil when stopping is off.
func (c Config) Stopwords() (*filters.StopwordSet, error) {
	if !c.Stopping {
		return nil, nil
	}
	if c.StopwordFile == "" {
		return filters.DefaultStopwords(), nil
	}

	set, err := filters.LoadStopwordsFile(c.StopwordFile)
	if err != nil {
		return nil, &ConfigurationError{Field: "stopword file", Value: c.StopwordFile, Err: err}
	}
	return set, nil
}

// Usage describes the environment variables Config reads.
func Usage() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}
