package solana

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// rpcServer answers JSON-RPC calls through handle, which returns the result
// value for a request.
type rpcServer struct {
	mu     sync.Mutex
	calls  []rpcRequest
	handle func(req rpcRequest) any
}

func (s *rpcServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      req.ID,
		"result":  s.handle(req),
	})
}

func newTestClient(t *testing.T, handle func(req rpcRequest) any) (*Client, *rpcServer) {
	t.Helper()
	srv := &rpcServer{handle: handle}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, 5*time.Second), srv
}

func accountJSON(owner solana.PublicKey, data []byte) map[string]any {
	return map[string]any{
		"data":       []string{base64.StdEncoding.EncodeToString(data), "base64"},
		"executable": false,
		"lamports":   1000,
		"owner":      owner.String(),
		"rentEpoch":  0,
		"space":      len(data),
	}
}

func testKeys(n int) []solana.PublicKey {
	keys := make([]solana.PublicKey, n)
	for i := range keys {
		keys[i][0] = byte(i)
		keys[i][1] = byte(i >> 8)
		keys[i][31] = 1
	}
	return keys
}

// requestedKeys decodes the key list of a getMultipleAccounts call.
func requestedKeys(req rpcRequest) []string {
	var keys []string
	if len(req.Params) > 0 {
		_ = json.Unmarshal(req.Params[0], &keys)
	}
	return keys
}

func TestGetMultipleAccountsChunks(t *testing.T) {
	owner := solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")

	tests := []struct {
		name      string
		keys      int
		wantCalls []int
	}{
		{"empty", 0, nil},
		{"single", 1, []int{1}},
		{"exactly one chunk", MaxAccountsPerRequest, []int{MaxAccountsPerRequest}},
		{"one past the chunk", MaxAccountsPerRequest + 1, []int{MaxAccountsPerRequest, 1}},
		{"several chunks", 2*MaxAccountsPerRequest + 50, []int{MaxAccountsPerRequest, MaxAccountsPerRequest, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(t, func(req rpcRequest) any {
				keys := requestedKeys(req)
				values := make([]any, len(keys))
				for i, k := range keys {
					// every third account of a chunk is missing
					if i%3 == 2 {
						values[i] = nil
						continue
					}
					pk := solana.MustPublicKeyFromBase58(k)
					values[i] = accountJSON(owner, pk[:2])
				}
				return map[string]any{"context": map[string]any{"slot": 1}, "value": values}
			})

			keys := testKeys(tt.keys)
			accounts, err := client.GetMultipleAccounts(context.Background(), keys)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(accounts) != len(keys) {
				t.Fatalf("expected %d accounts, got %d", len(keys), len(accounts))
			}

			if len(srv.calls) != len(tt.wantCalls) {
				t.Fatalf("expected %d calls, got %d", len(tt.wantCalls), len(srv.calls))
			}
			for i, want := range tt.wantCalls {
				if srv.calls[i].Method != "getMultipleAccounts" {
					t.Errorf("call %d: unexpected method %s", i, srv.calls[i].Method)
				}
				if got := len(requestedKeys(srv.calls[i])); got != want {
					t.Errorf("call %d: expected %d keys, got %d", i, want, got)
				}
			}

			for i, acc := range accounts {
				pos := i % MaxAccountsPerRequest
				if pos%3 == 2 {
					if acc != nil {
						t.Errorf("account %d: expected nil for missing account", i)
					}
					continue
				}
				if acc == nil {
					t.Fatalf("account %d: unexpected nil", i)
				}
				if !acc.Owner.Equals(owner) {
					t.Errorf("account %d: unexpected owner %s", i, acc.Owner)
				}
				data := acc.Data.GetBinary()
				if len(data) != 2 || data[0] != keys[i][0] || data[1] != keys[i][1] {
					t.Errorf("account %d: data %x does not match key order", i, data)
				}
			}
		})
	}
}

func TestGetMultipleAccountsLengthMismatch(t *testing.T) {
	owner := solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")
	client, _ := newTestClient(t, func(req rpcRequest) any {
		return map[string]any{
			"context": map[string]any{"slot": 1},
			"value":   []any{accountJSON(owner, []byte{1})},
		}
	})

	_, err := client.GetMultipleAccounts(context.Background(), testKeys(3))
	if err == nil {
		t.Fatal("expected an error for a short response")
	}
	if !strings.Contains(err.Error(), "expected 3 entries, got 1") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetTransactionLogs(t *testing.T) {
	logs := []string{
		"Program CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C invoke [1]",
		"Program data: AQID",
		"Program CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C success",
	}
	client, srv := newTestClient(t, func(req rpcRequest) any {
		return map[string]any{
			"slot":      7,
			"blockTime": nil,
			"meta": map[string]any{
				"err":          nil,
				"fee":          5000,
				"preBalances":  []uint64{},
				"postBalances": []uint64{},
				"logMessages":  logs,
			},
		}
	})

	var sig solana.Signature
	sig[0] = 1
	got, err := client.GetTransactionLogs(context.Background(), sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(logs) || got[1] != logs[1] {
		t.Errorf("expected %v, got %v", logs, got)
	}
	if len(srv.calls) != 1 || srv.calls[0].Method != "getTransaction" {
		t.Fatalf("unexpected calls %+v", srv.calls)
	}
	if !strings.Contains(string(srv.calls[0].Params[1]), `"maxSupportedTransactionVersion":0`) {
		t.Errorf("expected max supported version in %s", srv.calls[0].Params[1])
	}
}

func TestGetTransactionLogsNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(req rpcRequest) any {
		return nil
	})
	if _, err := client.GetTransactionLogs(context.Background(), solana.Signature{}); err == nil {
		t.Error("expected an error for a missing transaction")
	}
}
