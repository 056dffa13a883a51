// Package pipeline runs payloads from a Source through the decoder registry
// and writes the resulting records to a Sink.
//
// The pipeline has three stages joined by channels: read, decode and write.
// A payload that fails to frame or decode becomes a failure record; it is
// logged and counted but never stops the run. Source and sink errors do.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/internal/sink"
	"github.com/lugondev/solcodec/internal/source"
	"github.com/lugondev/solcodec/pkg/borsh"
	"github.com/lugondev/solcodec/pkg/decoder"
)

const (
	DefaultWorkers   = 4
	DefaultBatchSize = 256
)

// Pipeline wires a Source, a Registry and a Sink.
type Pipeline struct {
	Source   source.Source
	Registry *decoder.Registry
	Sink     sink.Sink

	// Workers bounds concurrent decoding within a batch.
	Workers int

	// BatchSize is the number of payloads decoded and written together.
	BatchSize int

	// Strict rejects payloads with bytes left after the record.
	Strict bool

	Logger *slog.Logger
}

// Summary counts the outcome of a run.
type Summary struct {
	Decoded int `json:"decoded"`
	Failed  int `json:"failed"`
}

// Total returns the number of payloads seen.
func (s Summary) Total() int {
	return s.Decoded + s.Failed
}

type dispatchKey struct {
	program string
	ns      decoder.Namespace
}

type dispatchEntry struct {
	d   decoder.Dispatcher
	err error
}

// Run drains the source. It returns when the source reports io.EOF and
// every batch has been written, or on the first source or sink error.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	if p.Source == nil || p.Registry == nil || p.Sink == nil {
		return Summary{}, errors.New("pipeline requires a source, a registry and a sink")
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	batchSize := p.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var summary Summary
	batches := make(chan []source.Payload, 1)
	models := make(chan []*sink.RecordModel, 1)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(batches)
		return p.read(gctx, batchSize, batches)
	})

	g.Go(func() error {
		defer close(models)
		bd := decoder.NewBatchDecoder(decoder.BatchOptions{Workers: workers})
		cache := make(map[dispatchKey]dispatchEntry)
		for batch := range batches {
			out, err := p.decode(gctx, bd, cache, logger, batch, &summary)
			if err != nil {
				return err
			}
			select {
			case models <- out:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	g.Go(func() error {
		for batch := range models {
			if err := p.Sink.Write(gctx, batch); err != nil {
				return apperrors.SinkFailed("record", err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return summary, err
	}
	logger.Info("pipeline finished", "decoded", summary.Decoded, "failed", summary.Failed)
	return summary, nil
}

func (p *Pipeline) read(ctx context.Context, batchSize int, out chan<- []source.Payload) error {
	batch := make([]source.Payload, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		select {
		case out <- batch:
		case <-ctx.Done():
			return ctx.Err()
		}
		batch = make([]source.Payload, 0, batchSize)
		return nil
	}

	for {
		payload, err := p.Source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return flush()
		}
		if err != nil {
			return err
		}
		batch = append(batch, payload)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
}

func (p *Pipeline) dispatcher(cache map[dispatchKey]dispatchEntry, program string, ns decoder.Namespace) (decoder.Dispatcher, error) {
	key := dispatchKey{program: program, ns: ns}
	if e, ok := cache[key]; ok {
		return e.d, e.err
	}
	d, err := p.Registry.Dispatcher(program, ns, p.Strict)
	err = apperrors.FromRegistry(err)
	cache[key] = dispatchEntry{d: d, err: err}
	return d, err
}

// decode turns one batch into models, in payload order.
func (p *Pipeline) decode(
	ctx context.Context,
	bd *decoder.BatchDecoder,
	cache map[dispatchKey]dispatchEntry,
	logger *slog.Logger,
	batch []source.Payload,
	summary *Summary,
) ([]*sink.RecordModel, error) {
	out := make([]*sink.RecordModel, len(batch))
	failures := make([]error, len(batch))

	jobs := make([]decoder.Job, 0, len(batch))
	slots := make([]int, 0, len(batch))
	for i, payload := range batch {
		if payload.Err != nil {
			failures[i] = payload.Err
			continue
		}
		d, err := p.dispatcher(cache, payload.Program, payload.Namespace)
		if err != nil {
			failures[i] = err
			continue
		}
		jobs = append(jobs, decoder.Job{Dispatcher: d, Data: payload.Data})
		slots = append(slots, i)
	}

	results, err := bd.DecodeJobs(ctx, jobs)
	if err != nil {
		return nil, err
	}
	for j, res := range results {
		i := slots[j]
		if res.Err != nil {
			failures[i] = res.Err
			continue
		}
		m, err := sink.RecordToModel(res.Record, batch[i].Index, batch[i].Origin)
		if err != nil {
			failures[i] = err
			continue
		}
		out[i] = m
	}

	for i, payload := range batch {
		if failures[i] == nil {
			summary.Decoded++
			continue
		}
		summary.Failed++
		logFailure(logger, payload, failures[i])
		out[i] = sink.FailureToModel(payload.Program, payload.Namespace, payload.Index, payload.Origin, failures[i])
	}
	return out, nil
}

func logFailure(logger *slog.Logger, payload source.Payload, err error) {
	attrs := []any{
		"index", payload.Index,
		"program", payload.Program,
		"namespace", string(payload.Namespace),
		"origin", payload.Origin,
	}
	var de *borsh.DecodeError
	if errors.As(err, &de) {
		attrs = append(attrs,
			"shape", de.Shape,
			"kind", de.Kind.String(),
			"field", de.Field,
			"tag", fmt.Sprintf("%x", de.Tag))
	}
	attrs = append(attrs, "error", err)
	logger.Warn("decode failed", attrs...)
}
