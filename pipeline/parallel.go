package pipeline

import "context"
import "errors"
import "iter"
import "strconv"
import "sync"
import "github.com/cwacek/irtokens/filereader"
import "github.com/cwacek/irtokens/stats"
import log "github.com/cihub/seelog"

func fromChannel(ch <-chan filereader.Record) iter.Seq2[filereader.Record, error] {
	return func(yield func(filereader.Record, error) bool) {
		for rec := range ch {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

/*
RunParallel normalizes records on several workers, each with its own
pipeline and accumulator. Terms are counted but not yielded.

Every SnapshotInterval terms a worker hands its incremental counts to p,
which adds them to its own accumulator and fires an interval snapshot
whenever another SnapshotInterval terms have been merged. Once every worker
has finished, their remaining counts are merged and the final snapshot
fires. Cancelling ctx stops pulling records; whatever was already handed to
the workers is still counted.

The snapshot and warning callbacks may be invoked from other goroutines,
one call at a time.
*/
func (p *Pipeline) RunParallel(ctx context.Context, records iter.Seq2[filereader.Record, error], workers int) error {
	if workers < 1 {
		return &ConfigurationError{
			Field: "workers",
			Value: strconv.Itoa(workers),
			Err:   errors.New("need at least one worker"),
		}
	}

	var mu sync.Mutex
	warn := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if p.onWarning != nil {
			p.onWarning(err)
		}
	}

	deltas := make(chan stats.Snapshot, workers)

	pool := make([]*Pipeline, workers)
	for i := range pool {
		w, err := New(p.opts, p.stopwords)
		if err != nil {
			return err
		}
		w.OnWarning(warn)
		w.SetSnapshotKind(stats.Incremental)
		w.OnSnapshot(func(snap stats.Snapshot) {
			// The final cumulative snapshot overlaps the deltas already sent.
			if snap.Kind == stats.Incremental {
				deltas <- snap
			}
		})
		pool[i] = w
	}

	merged := make(chan struct{})
	go func() {
		defer close(merged)
		for delta := range deltas {
			p.absorb(delta)
		}
	}()

	jobs := make(chan filereader.Record, 2*workers)
	var wg sync.WaitGroup

	for i, w := range pool {
		wg.Add(1)
		go func(id int, w *Pipeline) {
			defer wg.Done()
			for range w.Run(fromChannel(jobs)) {
			}
			log.Debugf("Worker %d done after %d terms", id, w.acc.Total())
		}(i, w)
	}

	var readErr error

feed:
	for rec, err := range records {
		if err != nil {
			var malformed *filereader.MalformedRecordError
			if errors.As(err, &malformed) {
				mu.Lock()
				p.skip(err)
				mu.Unlock()
				continue
			}
			readErr = err
			break
		}

		select {
		case jobs <- rec:
		case <-ctx.Done():
			log.Infof("Run cancelled: %v", ctx.Err())
			break feed
		}
	}

	close(jobs)
	wg.Wait()
	close(deltas)
	<-merged

	for _, w := range pool {
		p.acc.Add(w.acc.Snapshot(stats.Incremental).Frequencies)
		p.skipped += w.skipped
		p.stopped += w.Stopped()
	}
	p.finish()

	if readErr != nil {
		log.Errorf("Stopping run: %v", readErr)
		p.err = readErr
		return readErr
	}
	return ctx.Err()
}

// absorb merges one worker's interval counts.
func (p *Pipeline) absorb(delta stats.Snapshot) {
	p.acc.Add(delta.Frequencies)

	p.sinceSnap += delta.TotalTokens
	if p.opts.SnapshotInterval > 0 && p.sinceSnap >= p.opts.SnapshotInterval {
		p.checkpoint()
	}
}
