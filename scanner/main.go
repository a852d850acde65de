package main

import "github.com/alecthomas/kong"
import "github.com/cwacek/irtokens/scanner/actions"
import log "github.com/cihub/seelog"

type CLI struct {
	Tokens    actions.PrintTokens     `cmd:"" help:"Print the terms each source token normalizes to."`
	Stats     actions.CollectStats    `cmd:"" help:"Collect term statistics over a corpus."`
	Stopwords actions.ShowStopwords   `cmd:"" help:"Print the effective stopword list."`
	Env       actions.ShowEnvironment `cmd:"" help:"List the IRTOKENS_* environment variables."`
}

func main() {
	defer log.Flush()
	Run()
}

func Run() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("irtokens"),
		kong.Description("Tokenize, stop and stem text corpora."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	log.Flush()
	ctx.FatalIfErrorf(err)
}
