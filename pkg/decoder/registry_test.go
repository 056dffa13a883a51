package decoder

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/solcodec/pkg/borsh"
)

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(testProgram()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, ok := registry.Lookup("test"); !ok {
		t.Error("expected lookup by name to succeed")
	}
	if p, ok := registry.LookupID(testProgramID); !ok || p.Name != "test" {
		t.Error("expected lookup by id to succeed")
	}
	for _, key := range []string{"test", testProgramID.String()} {
		if _, err := registry.Resolve(key); err != nil {
			t.Errorf("resolve %s: %v", key, err)
		}
	}
	if _, err := registry.Resolve("missing"); !errors.Is(err, ErrUnknownProgram) {
		t.Errorf("expected ErrUnknownProgram, got %v", err)
	}
}

func TestRegistryRegisterErrors(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(testProgram()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := registry.Register(testProgram()); err == nil {
		t.Error("expected duplicate name to fail")
	}

	other := testProgram()
	other.Name = "other"
	if err := registry.Register(other); err == nil {
		t.Error("expected duplicate program id to fail")
	}

	if err := registry.Register(&Program{}); err == nil {
		t.Error("expected empty name to fail")
	}

	registry.Freeze()
	late := &Program{Name: "late", ID: solana.SystemProgramID}
	if err := registry.Register(late); !errors.Is(err, ErrRegistryFrozen) {
		t.Errorf("expected ErrRegistryFrozen, got %v", err)
	}
}

func TestRegistryLogsCollisions(t *testing.T) {
	var buf bytes.Buffer
	registry := NewRegistry()
	registry.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	tag := EventDiscriminator("Ping")
	err := registry.Register(&Program{
		Name:   "dup",
		Events: NewTable("dup", Events, NewShape[ping]("First", tag), NewShape[pong]("Second", tag)),
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"duplicate discriminator", "kept=First", "dropped=Second"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %q, got %s", want, out)
		}
	}
}

func TestRegistryDispatch(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(testProgram()); err != nil {
		t.Fatalf("register: %v", err)
	}
	program, _ := registry.Lookup("test")

	account := mustEncode(t, program.Accounts, counter{Authority: testProgramID, Count: 9})
	rec, err := registry.Dispatch("test", Accounts, account)
	if err != nil {
		t.Fatalf("dispatch account: %v", err)
	}
	if rec.Shape != "Counter" || rec.Value.(*counter).Count != 9 {
		t.Errorf("unexpected record %+v", rec)
	}

	// account tags are not event tags
	if _, err := registry.Dispatch("test", Events, account); err == nil {
		t.Error("expected account payload to fail in events namespace")
	}

	if _, err := registry.Dispatch("test", Namespace("instructions"), account); !errors.Is(err, ErrUnknownNamespace) {
		t.Errorf("expected ErrUnknownNamespace, got %v", err)
	}
	if _, err := registry.Dispatch("nope", Events, account); !errors.Is(err, ErrUnknownProgram) {
		t.Errorf("expected ErrUnknownProgram, got %v", err)
	}
}

func TestRegistryMissingTable(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&Program{Name: "events-only", Events: testEvents()}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := registry.Table("events-only", Accounts); !errors.Is(err, ErrUnknownNamespace) {
		t.Errorf("expected ErrUnknownNamespace, got %v", err)
	}
}

func TestDispatchEventCPI(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(testProgram()); err != nil {
		t.Fatalf("register: %v", err)
	}
	program, _ := registry.Lookup("test")
	logged := mustEncode(t, program.Events, ping{Seq: 5, Note: "cpi"})
	wrapped := append(EventIxTag.Bytes(), logged...)

	for name, data := range map[string][]byte{"log": logged, "cpi": wrapped} {
		t.Run(name, func(t *testing.T) {
			rec, err := registry.DispatchEvent("test", data)
			if err != nil {
				t.Fatalf("dispatch: %v", err)
			}
			if rec.Value.(*ping).Seq != 5 {
				t.Errorf("unexpected value %+v", rec.Value)
			}

			d, err := registry.Dispatcher("test", Events, true)
			if err != nil {
				t.Fatalf("dispatcher: %v", err)
			}
			if _, err := d.Dispatch(data); err != nil {
				t.Errorf("strict dispatcher: %v", err)
			}
		})
	}
}

func TestDispatchEventCPITruncated(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(testProgram()); err != nil {
		t.Fatalf("register: %v", err)
	}
	program, _ := registry.Lookup("test")
	logged := mustEncode(t, program.Events, ping{Seq: 5, Note: "cpi"})
	wrapped := append(EventIxTag.Bytes(), logged...)

	for n := DiscriminatorSize; n < len(wrapped); n++ {
		_, err := registry.DispatchEvent("test", wrapped[:n])
		if !errors.Is(err, borsh.ErrTruncated) {
			t.Fatalf("length %d: expected truncated, got %v", n, err)
		}
		var de *borsh.DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("length %d: expected DecodeError, got %T", n, err)
		}
		if n < 2*DiscriminatorSize {
			if de.Field != "discriminator" || de.Have != n-DiscriminatorSize {
				t.Errorf("length %d: unexpected error %+v", n, de)
			}
		}
	}
}

func TestUnwrapEventCPI(t *testing.T) {
	inner := EventDiscriminator("Ping").Bytes()

	tests := []struct {
		name      string
		in        []byte
		want      []byte
		unwrapped bool
	}{
		{"plain event", inner, inner, false},
		{"wrapped", append(EventIxTag.Bytes(), inner...), inner, true},
		{"tag only", EventIxTag.Bytes(), []byte{}, true},
		{"partial event tag", append(EventIxTag.Bytes(), inner[:3]...), inner[:3], true},
		{"short", []byte{0xe4, 0x45}, []byte{0xe4, 0x45}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := UnwrapEventCPI(tt.in)
			if ok != tt.unwrapped {
				t.Errorf("expected unwrapped=%v, got %v", tt.unwrapped, ok)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("expected %x, got %x", tt.want, got)
			}
		})
	}
}

func TestRegistryPrograms(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := registry.Register(&Program{Name: name, Events: testEvents()}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	var names []string
	for _, p := range registry.Programs() {
		names = append(names, p.Name)
	}
	if strings.Join(names, ",") != "alpha,mid,zeta" {
		t.Errorf("unexpected order %v", names)
	}
}
