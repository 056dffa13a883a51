package programs

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/decoder"
	"github.com/lugondev/solcodec/pkg/programs/meteoradlmm"
	"github.com/lugondev/solcodec/pkg/programs/meteorapools"
	"github.com/lugondev/solcodec/pkg/programs/pumpfun"
	"github.com/lugondev/solcodec/pkg/programs/raydiumclmm"
)

func TestDefaultRegistry(t *testing.T) {
	registry := Default()

	programs := registry.Programs()
	if len(programs) != 10 {
		t.Fatalf("expected 10 programs, got %d", len(programs))
	}
	for i := 1; i < len(programs); i++ {
		if programs[i-1].Name >= programs[i].Name {
			t.Errorf("programs not sorted: %s before %s", programs[i-1].Name, programs[i].Name)
		}
	}

	for _, p := range All() {
		got, err := registry.Resolve(p.ID.String())
		if err != nil {
			t.Errorf("resolve %s: %v", p.Name, err)
			continue
		}
		if got.Name != p.Name {
			t.Errorf("expected %s, got %s", p.Name, got.Name)
		}
		for _, table := range []*decoder.Table{p.Accounts, p.Events} {
			if table == nil {
				continue
			}
			if err := table.Validate(); err != nil {
				t.Errorf("%s: %v", p.Name, err)
			}
		}
	}
}

func TestDefaultRegistryFrozen(t *testing.T) {
	err := Default().Register(&decoder.Program{Name: "extra", ID: solana.SystemProgramID})
	if !errors.Is(err, decoder.ErrRegistryFrozen) {
		t.Errorf("expected ErrRegistryFrozen, got %v", err)
	}
}

func TestNewRegistryExtensible(t *testing.T) {
	registry, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if err := registry.Register(&decoder.Program{Name: "extra", ID: solana.SystemProgramID}); err != nil {
		t.Errorf("register: %v", err)
	}
	if err := registry.Register(pumpfun.Program()); err == nil {
		t.Error("expected duplicate program to be rejected")
	}
}

func TestDefaultDispatch(t *testing.T) {
	in := raydiumclmm.PoolCreatedEvent{TickSpacing: 10, Tick: -7}
	data, err := raydiumclmm.Events().Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	rec, err := Default().Dispatch(raydiumclmm.ProgramID.String(), decoder.Events, data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if rec.Program != raydiumclmm.Name || rec.Shape != "PoolCreatedEvent" {
		t.Errorf("unexpected record %s/%s", rec.Program, rec.Shape)
	}
}

func TestMissingNamespace(t *testing.T) {
	tests := []struct {
		program string
		ns      decoder.Namespace
	}{
		{meteoradlmm.Name, decoder.Events},
		{meteorapools.Name, decoder.Accounts},
	}

	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			_, err := Default().Dispatch(tt.program, tt.ns, make([]byte, 16))
			if !errors.Is(err, decoder.ErrUnknownNamespace) {
				t.Errorf("expected ErrUnknownNamespace, got %v", err)
			}
		})
	}
}
