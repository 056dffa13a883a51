package decoder

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lugondev/solcodec/pkg/borsh"
)

func createTestPayloads(t testing.TB, table *Table, count int) [][]byte {
	payloads := make([][]byte, count)
	for i := range payloads {
		data, err := table.Encode(ping{Seq: uint64(i), Note: fmt.Sprintf("event-%d", i)})
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		payloads[i] = data
	}
	return payloads
}

func TestBatchDecoderKeepsOrder(t *testing.T) {
	table := testEvents()

	for _, workers := range []int{1, 3, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			payloads := createTestPayloads(t, table, 200)
			payloads[17] = []byte{1, 2, 3}
			payloads[101] = EventDiscriminator("Missing").Bytes()

			batch := NewBatchDecoder(BatchOptions{Workers: workers, MinParallel: 1})
			results, err := batch.DecodeAll(context.Background(), table, payloads)
			if err != nil {
				t.Fatalf("decode all: %v", err)
			}
			if len(results) != len(payloads) {
				t.Fatalf("expected %d results, got %d", len(payloads), len(results))
			}

			for i, res := range results {
				if res.Index != i {
					t.Fatalf("result %d has index %d", i, res.Index)
				}
				switch i {
				case 17:
					if !errors.Is(res.Err, borsh.ErrTruncated) {
						t.Errorf("index 17: expected truncated, got %v", res.Err)
					}
				case 101:
					if !errors.Is(res.Err, borsh.ErrUnknownDiscriminator) {
						t.Errorf("index 101: expected unknown discriminator, got %v", res.Err)
					}
				default:
					if res.Err != nil {
						t.Fatalf("index %d: %v", i, res.Err)
					}
					if got := res.Record.Value.(*ping).Seq; got != uint64(i) {
						t.Errorf("index %d: got seq %d", i, got)
					}
				}
			}

			if got := len(Records(results)); got != len(payloads)-2 {
				t.Errorf("expected %d records, got %d", len(payloads)-2, got)
			}
		})
	}
}

func TestBatchDecoderJobs(t *testing.T) {
	program := testProgram()
	account := mustEncode(t, program.Accounts, counter{Count: 1})
	event := mustEncode(t, program.Events, pong{Ok: true})

	jobs := []Job{
		{Dispatcher: program.Accounts, Data: account},
		{Dispatcher: program.Events, Data: event},
		{Data: event},
	}
	results, err := NewBatchDecoder(BatchOptions{}).DecodeJobs(context.Background(), jobs)
	if err != nil {
		t.Fatalf("decode jobs: %v", err)
	}
	if results[0].Record.Shape != "Counter" || results[1].Record.Shape != "Pong" {
		t.Errorf("unexpected shapes %s, %s", results[0].Record.Shape, results[1].Record.Shape)
	}
	if !errors.Is(results[2].Err, ErrNoDispatcher) {
		t.Errorf("expected ErrNoDispatcher, got %v", results[2].Err)
	}
}

func TestBatchDecoderCancelled(t *testing.T) {
	table := testEvents()
	payloads := createTestPayloads(t, table, 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, minParallel := range []int{1, 1000} {
		batch := NewBatchDecoder(BatchOptions{Workers: 4, MinParallel: minParallel})
		if _, err := batch.DecodeAll(ctx, table, payloads); !errors.Is(err, context.Canceled) {
			t.Errorf("minParallel=%d: expected context.Canceled, got %v", minParallel, err)
		}
	}
}

func TestBatchDecoderEmpty(t *testing.T) {
	results, err := NewBatchDecoder(BatchOptions{}).DecodeAll(context.Background(), testEvents(), nil)
	if err != nil || results != nil {
		t.Errorf("expected nil results, got %v, %v", results, err)
	}
}

func BenchmarkBatchDecoding(b *testing.B) {
	table := testEvents()
	payloads := createTestPayloads(b, table, 1000)

	for _, workers := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			batch := NewBatchDecoder(BatchOptions{Workers: workers, MinParallel: 1})
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := batch.DecodeAll(context.Background(), table, payloads); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
