// Package programs bundles the built-in protocol schemas into a registry.
package programs

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/lugondev/solcodec/pkg/decoder"
	"github.com/lugondev/solcodec/pkg/programs/meteoradammv2"
	"github.com/lugondev/solcodec/pkg/programs/meteoradbc"
	"github.com/lugondev/solcodec/pkg/programs/meteoradlmm"
	"github.com/lugondev/solcodec/pkg/programs/meteorapools"
	"github.com/lugondev/solcodec/pkg/programs/orcawhirlpool"
	"github.com/lugondev/solcodec/pkg/programs/pumpfun"
	"github.com/lugondev/solcodec/pkg/programs/pumpswap"
	"github.com/lugondev/solcodec/pkg/programs/raydiumclmm"
	"github.com/lugondev/solcodec/pkg/programs/raydiumcpmm"
	"github.com/lugondev/solcodec/pkg/programs/raydiumlaunchpad"
)

// All returns every built-in program.
func All() []*decoder.Program {
	return []*decoder.Program{
		orcawhirlpool.Program(),
		pumpfun.Program(),
		pumpswap.Program(),
		raydiumclmm.Program(),
		raydiumcpmm.Program(),
		raydiumlaunchpad.Program(),
		meteoradammv2.Program(),
		meteoradbc.Program(),
		meteoradlmm.Program(),
		meteorapools.Program(),
	}
}

// NewRegistry returns an unfrozen registry holding All. Callers may register
// further programs before freezing it.
func NewRegistry(logger *slog.Logger) (*decoder.Registry, error) {
	r := decoder.NewRegistry()
	if logger != nil {
		r.SetLogger(logger)
	}
	for _, p := range All() {
		if err := r.Register(p); err != nil {
			return nil, fmt.Errorf("register %s: %w", p.Name, err)
		}
	}
	return r, nil
}

// Default is the frozen registry of built-in programs.
var Default = sync.OnceValue(func() *decoder.Registry {
	r, err := NewRegistry(nil)
	if err != nil {
		panic(err)
	}
	r.Freeze()
	return r
})
