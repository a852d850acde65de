package actions

import "context"
import "encoding/json"
import "fmt"
import "io"
import "os"
import "os/signal"
import "github.com/cwacek/irtokens/pipeline"
import "github.com/cwacek/irtokens/stats"
import log "github.com/cihub/seelog"

// CollectStats runs the pipeline over the inputs and reports term
// statistics, with a progress line at every snapshot.
type CollectStats struct {
	Args
	Inputs

	Interval int  `short:"i" default:"-1" help:"Snapshot every that many terms. Negative keeps the configured value."`
	Top      int  `short:"n" default:"20" help:"Number of top ranked terms to report."`
	JSON     bool `short:"j" name:"json" help:"Write the report as JSON."`
}

type statsOutput struct {
	Snapshots []snapshotOutput `json:"snapshots"`
	Skipped   int              `json:"skipped"`
	Stopped   int              `json:"stopped"`
	Report    stats.Report     `json:"report"`
}

type snapshotOutput struct {
	Tokens int `json:"tokens"`
	Terms  int `json:"terms"`
}

func (a *CollectStats) Run() error {
	cfg, err := a.Setup()
	if err != nil {
		return err
	}
	if a.Interval >= 0 {
		cfg.SnapshotInterval = a.Interval
	}

	p, err := Build(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := a.collect(ctx, p, cfg)
	if err != nil {
		return err
	}
	return a.write(os.Stdout, out)
}

func (a *CollectStats) collect(ctx context.Context, p *pipeline.Pipeline, cfg pipeline.Config) (statsOutput, error) {
	var out statsOutput

	// Interval snapshots are deltas; progress reads the counters.
	acc := p.Stats()
	p.SetSnapshotKind(stats.Incremental)
	p.OnSnapshot(func(stats.Snapshot) {
		point := snapshotOutput{acc.Total(), acc.Distinct()}
		out.Snapshots = append(out.Snapshots, point)
		if !a.JSON {
			fmt.Fprintf(os.Stderr, "%d tokens, %d terms\n", point.Tokens, point.Terms)
		}
	})

	records := a.Records(cfg.Format)
	if cfg.Workers > 1 {
		if err := p.RunParallel(ctx, records, cfg.Workers); err != nil {
			return out, err
		}
	} else {
		for range p.Run(records) {
			if ctx.Err() != nil {
				log.Warnf("Interrupted, reporting what was read so far")
				break
			}
		}
		if err := p.Err(); err != nil {
			return out, err
		}
	}

	out.Skipped = p.Skipped()
	out.Stopped = p.Stopped()
	out.Report = stats.NewReport(acc.Snapshot(stats.Cumulative), acc.Growth(), a.Top)
	log.Infof("Skipped %d malformed records", out.Skipped)
	return out, nil
}

func (a *CollectStats) write(w io.Writer, out statsOutput) error {
	if a.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if out.Skipped > 0 {
		fmt.Fprintf(w, "Skipped %d malformed records\n", out.Skipped)
	}
	if out.Stopped > 0 {
		fmt.Fprintf(w, "Stopped %d tokens\n", out.Stopped)
	}
	return out.Report.Print(w)
}
