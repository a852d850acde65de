package actions

import "errors"
import "io/fs"
import "iter"
import "os"
import "path/filepath"
import "regexp"
import "github.com/cwacek/irtokens/filereader"
import "github.com/cwacek/irtokens/filters"
import "github.com/cwacek/irtokens/logging"
import "github.com/cwacek/irtokens/pipeline"
import log "github.com/cihub/seelog"

// Args are the flags every command shares. Flags given on the command
// line win over the configuration file and the environment.
type Args struct {
	Verbosity int    `short:"v" type:"counter" help:"Be verbose (repeat up to 4 times)."`
	Config    string `short:"c" type:"existingfile" env:"IRTOKENS_CONFIG" help:"YAML configuration file."`

	Tokenizer string `short:"t" placeholder:"NAME" help:"Tokenizer: whitespace, ngram4, complex or fancy."`
	Stemmer   string `short:"s" placeholder:"NAME" help:"Stemmer: identity, suffix_s, porter or porter2."`
	Stop      bool   `help:"Remove stopwords."`
	Stopwords string `type:"existingfile" placeholder:"FILE" help:"Stopword list to use instead of the built in one. Implies --stop."`
	Encoding  string `placeholder:"NAME" help:"Encoding of the input: utf8, utf8-replace, latin1 or cp1252."`
	Format    string `short:"f" placeholder:"FORMAT" help:"Input format: auto, lines or trec."`
	Workers   int    `short:"w" help:"Number of workers. Zero keeps the configured value."`
}

// Setup reads the configuration, applies command line overrides to it and
// configures logging.
func (a *Args) Setup() (pipeline.Config, error) {
	cfg, err := pipeline.ReadConfig(a.Config)
	if err != nil {
		return cfg, err
	}

	if a.Tokenizer != "" {
		cfg.Tokenizer = a.Tokenizer
	}
	if a.Stemmer != "" {
		cfg.Stemmer = a.Stemmer
	}
	if a.Stop {
		cfg.Stopping = true
	}
	if a.Stopwords != "" {
		cfg.Stopping = true
		cfg.StopwordFile = a.Stopwords
	}
	if a.Encoding != "" {
		cfg.Encoding = a.Encoding
	}
	if a.Format != "" {
		cfg.Format = a.Format
	}
	if a.Workers > 0 {
		cfg.Workers = a.Workers
	}

	if a.Verbosity > 0 {
		err = logging.SetupLogging(a.Verbosity)
	} else {
		err = logging.SetupLevel(cfg.LogLevel)
	}
	if err != nil {
		return cfg, &pipeline.ConfigurationError{Field: "log level", Value: cfg.LogLevel, Err: err}
	}

	log.Debugf("Running with %+v", cfg)
	return cfg, nil
}

// Build makes the pipeline cfg describes.
func Build(cfg pipeline.Config) (*pipeline.Pipeline, error) {
	set, err := cfg.Stopwords()
	if err != nil {
		return nil, err
	}
	return pipeline.New(cfg.Options(), set)
}

// Inputs names the files to read. Directories are walked and the files
// in them whose base name matches Pattern are read in lexical order.
type Inputs struct {
	Paths   []string `arg:"" optional:"" help:"Files or directories to read. Reads standard input when none are given."`
	Pattern string   `default:"^[^.].+" help:"Regular expression matching the names of files to read from directories."`
}

// Walk lists the files to read, in order.
func (in *Inputs) Walk() ([]string, error) {
	pattern, err := regexp.Compile(in.Pattern)
	if err != nil {
		return nil, &pipeline.ConfigurationError{Field: "pattern", Value: in.Pattern, Err: err}
	}

	var files []string
	for _, root := range in.Paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if path != root && !pattern.MatchString(d.Name()) {
				log.Debugf("Skipping %s", path)
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	log.Infof("Reading %d files matching %s", len(files), in.Pattern)
	return files, nil
}

/*
Records reads every input in turn. A file that cannot be opened ends the
iteration with its error; malformed records are passed on for the
pipeline to skip.
*/
func (in *Inputs) Records(format string) iter.Seq2[filereader.Record, error] {
	return func(yield func(filereader.Record, error) bool) {
		if len(in.Paths) == 0 {
			readAll(stdinReader(format), yield)
			return
		}

		files, err := in.Walk()
		if err != nil {
			yield(filereader.Record{}, err)
			return
		}

		for _, path := range files {
			fr, err := filereader.Open(path, format)
			if err != nil {
				yield(filereader.Record{}, err)
				return
			}
			if !readAll(fr, yield) {
				return
			}
		}
	}
}

func stdinReader(format string) filereader.FileReader {
	if format == filereader.FormatTrec {
		return filereader.NewTrecFileReader(os.Stdin, "-")
	}
	return filereader.NewLineFileReader(os.Stdin, "-")
}

// readAll reports false when the consumer stopped iterating or the file
// could not be read to the end.
func readAll(fr filereader.FileReader, yield func(filereader.Record, error) bool) bool {
	defer fr.Close()

	for rec, err := range filereader.Records(fr) {
		if !yield(rec, err) {
			return false
		}
		var malformed *filereader.MalformedRecordError
		if err != nil && !errors.As(err, &malformed) {
			return false
		}
	}
	return true
}

// loadStopwords is the list the stopwords command shows: the configured
// one, or the built in list when stopping is off.
func loadStopwords(cfg pipeline.Config) (*filters.StopwordSet, error) {
	cfg.Stopping = true
	return cfg.Stopwords()
}
