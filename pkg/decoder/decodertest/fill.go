// Package decodertest provides property checks for decoder tables: sample
// construction plus round-trip, discriminator fidelity, truncation and
// unknown-tag assertions.
package decodertest

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
)

// Mode selects how Fill populates a value.
type Mode int

const (
	// Zero leaves scalars at zero, options absent and sequences empty.
	Zero Mode = iota
	// Max sets scalars to their maximum, every option present and sequences to MaxLen elements.
	Max
	// Seeded draws every value from a seeded source.
	Seeded
)

func (m Mode) String() string {
	switch m {
	case Zero:
		return "zero"
	case Max:
		return "max"
	case Seeded:
		return "seeded"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// MaxLen is the sequence length used in Max mode.
const MaxLen = 3

const seededMaxLen = 4

var sampleRunes = []rune("abcxyz019 é✓")

// Enum is implemented by one-byte enum types so Fill only produces valid variants.
type Enum interface {
	EnumVariants() uint8
}

var enumType = reflect.TypeFor[Enum]()

// Filler populates values by reflection.
type Filler struct {
	mode      Mode
	rng       *rand.Rand
	overrides map[reflect.Type]func(f *Filler) any
}

// NewFiller returns a Filler. seed only matters in Seeded mode.
func NewFiller(mode Mode, seed int64) *Filler {
	return &Filler{
		mode:      mode,
		rng:       rand.New(rand.NewSource(seed)),
		overrides: make(map[reflect.Type]func(f *Filler) any),
	}
}

func (f *Filler) Mode() Mode {
	return f.mode
}

// Intn returns n-1 in Max mode, 0 in Zero mode and a random value below n otherwise.
func (f *Filler) Intn(n int) int {
	switch f.mode {
	case Zero:
		return 0
	case Max:
		return n - 1
	}
	return f.rng.Intn(n)
}

// Override makes Fill call fn for every value of type T. Use it for types
// whose Go form can hold states the wire format cannot, such as data-carrying enums.
func Override[T any](f *Filler, fn func(f *Filler) T) {
	f.overrides[reflect.TypeFor[T]()] = func(f *Filler) any { return fn(f) }
}

// Fill populates the value ptr points to.
func (f *Filler) Fill(ptr any) error {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("fill: expected non-nil pointer, got %T", ptr)
	}
	return f.fill(v.Elem(), v.Elem().Type().String())
}

func (f *Filler) fill(v reflect.Value, path string) error {
	t := v.Type()
	if fn, ok := f.overrides[t]; ok {
		v.Set(reflect.ValueOf(fn(f)))
		return nil
	}
	if t.Implements(enumType) && t.Kind() == reflect.Uint8 {
		n := v.Interface().(Enum).EnumVariants()
		v.SetUint(uint64(f.Intn(int(n))))
		return nil
	}

	switch t.Kind() {
	case reflect.Bool:
		switch f.mode {
		case Max:
			v.SetBool(true)
		case Seeded:
			v.SetBool(f.rng.Intn(2) == 1)
		}
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		bits := t.Bits()
		mask := uint64(1)<<bits - 1
		if bits == 64 {
			mask = ^uint64(0)
		}
		switch f.mode {
		case Max:
			v.SetUint(mask)
		case Seeded:
			v.SetUint(f.rng.Uint64() & mask)
		}
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := t.Bits()
		switch f.mode {
		case Max:
			v.SetInt(int64(uint64(1)<<(bits-1) - 1))
		case Seeded:
			v.SetInt(int64(f.rng.Uint64()) >> (64 - bits))
		}
	case reflect.Float64:
		switch f.mode {
		case Max:
			v.SetFloat(math.MaxFloat64)
		case Seeded:
			v.SetFloat(f.rng.NormFloat64() * 1e6)
		}
	case reflect.String:
		v.SetString(f.sampleString())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := f.fill(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Slice:
		n := f.length()
		s := reflect.MakeSlice(t, n, n)
		for i := 0; i < n; i++ {
			if err := f.fill(s.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		v.Set(s)
	case reflect.Pointer:
		if !f.present() {
			v.Set(reflect.Zero(t))
			return nil
		}
		p := reflect.New(t.Elem())
		if err := f.fill(p.Elem(), path); err != nil {
			return err
		}
		v.Set(p)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			if err := f.fill(v.Field(i), path+"."+field.Name); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("fill %s: unsupported kind %s; register an Override", path, t.Kind())
	}
	return nil
}

func (f *Filler) sampleString() string {
	var n int
	switch f.mode {
	case Zero:
		return ""
	case Max:
		n = len(sampleRunes)
	default:
		n = f.rng.Intn(len(sampleRunes) + 1)
	}
	out := make([]rune, n)
	for i := range out {
		if f.mode == Max {
			out[i] = sampleRunes[i]
		} else {
			out[i] = sampleRunes[f.rng.Intn(len(sampleRunes))]
		}
	}
	return string(out)
}

func (f *Filler) length() int {
	switch f.mode {
	case Zero:
		return 0
	case Max:
		return MaxLen
	}
	return f.rng.Intn(seededMaxLen + 1)
}

func (f *Filler) present() bool {
	switch f.mode {
	case Zero:
		return false
	case Max:
		return true
	}
	return f.rng.Intn(2) == 1
}
