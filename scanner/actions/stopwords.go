package actions

import "fmt"
import "io"
import "os"

// ShowStopwords prints the effective stopword list, one word per line.
type ShowStopwords struct {
	Args
	Count bool `help:"Only print the number of stopwords."`
}

func (a *ShowStopwords) Run() error {
	cfg, err := a.Setup()
	if err != nil {
		return err
	}

	set, err := loadStopwords(cfg)
	if err != nil {
		return err
	}
	return a.print(os.Stdout, set.Words(), set.Len())
}

func (a *ShowStopwords) print(w io.Writer, words []string, n int) error {
	if a.Count {
		_, err := fmt.Fprintln(w, n)
		return err
	}
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}
