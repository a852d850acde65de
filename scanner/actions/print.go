package actions

import "errors"
import "fmt"
import "io"
import "iter"
import "os"
import "strings"
import "github.com/cwacek/irtokens/filereader"
import "github.com/cwacek/irtokens/pipeline"
import log "github.com/cihub/seelog"

/*
PrintTokens shows what the pipeline makes of every source token, one source
token per line:

	"whitespace-Separated"  --->  "whitespac", "separ", "whitespacesepar"
	                tokens  --->  "token"

Source tokens that produce no terms are left out.
*/
type PrintTokens struct {
	Args
	Inputs
}

func (a *PrintTokens) Run() error {
	cfg, err := a.Setup()
	if err != nil {
		return err
	}

	p, err := Build(cfg)
	if err != nil {
		return err
	}

	decoder, err := filereader.NewDecoder(cfg.Encoding)
	if err != nil {
		return err
	}

	return printTokens(os.Stdout, p, decoder, a.Records(cfg.Format))
}

func printTokens(w io.Writer, p *pipeline.Pipeline, decoder *filereader.Decoder, records iter.Seq2[filereader.Record, error]) error {
	for rec, err := range records {
		if err != nil {
			var malformed *filereader.MalformedRecordError
			if errors.As(err, &malformed) {
				log.Warnf("Skipping record: %v", err)
				continue
			}
			return err
		}

		text, err := decoder.Decode(rec)
		if err != nil {
			log.Warnf("Skipping record: %v", err)
			continue
		}

		fmt.Fprintf(w, "Document %s\n", rec.Id)
		printRecord(w, p, text)
	}
	return nil
}

// A group collects the terms that share one source span.
type group struct {
	start, end int
	terms      []string
}

func printRecord(w io.Writer, p *pipeline.Pipeline, text string) {
	var groups []group

	for term := range p.Normalize(text) {
		n := len(groups)
		if n > 0 && groups[n-1].start == term.Start && groups[n-1].end == term.End {
			groups[n-1].terms = append(groups[n-1].terms, term.Text)
			continue
		}
		groups = append(groups, group{term.Start, term.End, []string{term.Text}})
	}

	width := 0
	for _, g := range groups {
		width = max(width, len(text[g.start:g.end]))
	}

	for _, g := range groups {
		quoted := make([]string, len(g.terms))
		for i, t := range g.terms {
			quoted[i] = fmt.Sprintf("%q", t)
		}
		fmt.Fprintf(w, "  %*s  --->  %s\n", width, text[g.start:g.end], strings.Join(quoted, ", "))
	}
}
