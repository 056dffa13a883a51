package decoder

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrUnknownProgram   = errors.New("unknown program")
	ErrUnknownNamespace = errors.New("unknown namespace")
	ErrRegistryFrozen   = errors.New("registry is frozen")
)

// Program bundles the account and event tables of one on-chain program.
type Program struct {
	Name     string
	ID       solana.PublicKey
	Accounts *Table
	Events   *Table
}

// Table returns the table for ns.
func (p *Program) Table(ns Namespace) (*Table, error) {
	var t *Table
	switch ns {
	case Accounts:
		t = p.Accounts
	case Events:
		t = p.Events
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNamespace, ns)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: %s has no %s", ErrUnknownNamespace, p.Name, ns)
	}
	return t, nil
}

// Registry indexes programs by name and by program id.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Program
	byID   map[solana.PublicKey]*Program
	frozen bool
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Program),
		byID:   make(map[solana.PublicKey]*Program),
	}
}

// SetLogger sets the logger used to report table collisions on Register.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register adds a program. Names and ids must be unique.
func (r *Registry) Register(p *Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}
	if p.Name == "" {
		return errors.New("program name is required")
	}
	if _, exists := r.byName[p.Name]; exists {
		return fmt.Errorf("program %s already registered", p.Name)
	}
	if !p.ID.IsZero() {
		if other, exists := r.byID[p.ID]; exists {
			return fmt.Errorf("program id %s already registered by %s", p.ID, other.Name)
		}
		r.byID[p.ID] = p
	}
	r.byName[p.Name] = p

	if r.logger != nil {
		for _, t := range []*Table{p.Accounts, p.Events} {
			if t == nil {
				continue
			}
			for _, c := range t.collisions {
				r.logger.Warn("duplicate discriminator",
					"program", p.Name,
					"namespace", t.namespace,
					"tag", c.Discriminator.String(),
					"kept", c.Kept,
					"dropped", c.Dropped)
			}
		}
	}
	return nil
}

// Freeze rejects further registrations.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Lookup finds a program by name.
func (r *Registry) Lookup(name string) (*Program, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[name]
	return p, ok
}

// LookupID finds a program by its on-chain id.
func (r *Registry) LookupID(id solana.PublicKey) (*Program, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	return p, ok
}

// Resolve accepts a program name or a base58 program id.
func (r *Registry) Resolve(nameOrID string) (*Program, error) {
	if p, ok := r.Lookup(nameOrID); ok {
		return p, nil
	}
	if id, err := solana.PublicKeyFromBase58(nameOrID); err == nil {
		if p, ok := r.LookupID(id); ok {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProgram, nameOrID)
}

// Programs returns the registered programs sorted by name.
func (r *Registry) Programs() []*Program {
	r.mu.RLock()
	defer r.mu.RUnlock()

	programs := make([]*Program, 0, len(r.byName))
	for _, p := range r.byName {
		programs = append(programs, p)
	}
	sort.Slice(programs, func(i, j int) bool {
		return programs[i].Name < programs[j].Name
	})
	return programs
}

// Table resolves a program and returns its table for ns.
func (r *Registry) Table(program string, ns Namespace) (*Table, error) {
	p, err := r.Resolve(program)
	if err != nil {
		return nil, err
	}
	return p.Table(ns)
}

// Dispatch decodes data with the ns table of program.
func (r *Registry) Dispatch(program string, ns Namespace, data []byte) (*Record, error) {
	if ns == Events {
		return r.DispatchEvent(program, data)
	}
	t, err := r.Table(program, ns)
	if err != nil {
		return nil, err
	}
	return t.Dispatch(data)
}

// DispatchEvent decodes an event emitted either through the program log or
// through a self-CPI.
func (r *Registry) DispatchEvent(program string, data []byte) (*Record, error) {
	t, err := r.Table(program, Events)
	if err != nil {
		return nil, err
	}
	return EventDispatcher(t).Dispatch(data)
}

// Dispatcher returns the dispatcher used for program and ns. Event dispatchers
// unwrap self-CPI payloads first.
func (r *Registry) Dispatcher(program string, ns Namespace, strict bool) (Dispatcher, error) {
	t, err := r.Table(program, ns)
	if err != nil {
		return nil, err
	}
	var d Dispatcher = t
	if strict {
		d = t.Strict()
	}
	if ns == Events {
		d = EventDispatcher(d)
	}
	return d, nil
}
