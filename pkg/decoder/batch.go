package decoder

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNoDispatcher is reported for a job without a dispatcher.
var ErrNoDispatcher = errors.New("no dispatcher for payload")

type BatchOptions struct {
	// Workers is the number of goroutines. Zero means 4.
	Workers int
	// MinParallel is the batch size below which decoding stays on the caller's goroutine.
	MinParallel int
}

// Job pairs a payload with the dispatcher that decodes it.
type Job struct {
	Dispatcher Dispatcher
	Data       []byte
}

// Result is the outcome for the payload at Index.
type Result struct {
	Index  int
	Record *Record
	Err    error
}

// BatchDecoder decodes many payloads concurrently. Results keep input order.
type BatchDecoder struct {
	workers     int
	minParallel int
}

func NewBatchDecoder(opts BatchOptions) *BatchDecoder {
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	minParallel := opts.MinParallel
	if minParallel <= 0 {
		minParallel = 64
	}
	return &BatchDecoder{workers: workers, minParallel: minParallel}
}

// DecodeAll decodes every payload with d.
func (b *BatchDecoder) DecodeAll(ctx context.Context, d Dispatcher, payloads [][]byte) ([]Result, error) {
	jobs := make([]Job, len(payloads))
	for i, data := range payloads {
		jobs[i] = Job{Dispatcher: d, Data: data}
	}
	return b.DecodeJobs(ctx, jobs)
}

// DecodeJobs decodes each job with its own dispatcher. A failed payload only
// fails its own Result. The returned error is non-nil only when ctx is done
// before every job has run.
func (b *BatchDecoder) DecodeJobs(ctx context.Context, jobs []Job) ([]Result, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	results := make([]Result, len(jobs))

	if len(jobs) < b.minParallel || b.workers == 1 {
		if !decodeChunk(ctx, jobs, results, 0) {
			return nil, ctx.Err()
		}
		return results, nil
	}

	workers := min(b.workers, len(jobs))
	chunkSize := (len(jobs) + workers - 1) / workers

	var (
		wg         sync.WaitGroup
		incomplete atomic.Bool
	)
	for start := 0; start < len(jobs); start += chunkSize {
		end := min(start+chunkSize, len(jobs))

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			if !decodeChunk(ctx, jobs[start:end], results[start:end], start) {
				incomplete.Store(true)
			}
		}(start, end)
	}
	wg.Wait()

	if incomplete.Load() {
		return nil, ctx.Err()
	}
	return results, nil
}

// decodeChunk fills out for jobs and reports false if ctx ended first.
func decodeChunk(ctx context.Context, jobs []Job, out []Result, offset int) bool {
	for i, job := range jobs {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		out[i].Index = offset + i
		if job.Dispatcher == nil {
			out[i].Err = ErrNoDispatcher
			continue
		}
		out[i].Record, out[i].Err = job.Dispatcher.Dispatch(job.Data)
	}
	return true
}

// Records returns the successfully decoded records in input order.
func Records(results []Result) []*Record {
	out := make([]*Record, 0, len(results))
	for _, r := range results {
		if r.Err == nil && r.Record != nil {
			out = append(out, r.Record)
		}
	}
	return out
}
