package decoder

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/lugondev/solcodec/pkg/borsh"
	"github.com/lugondev/solcodec/pkg/view"
)

// Collision records a shape that was not registered because an earlier shape
// already owned its tag.
type Collision struct {
	Discriminator Discriminator
	Kept          string
	Dropped       string
}

// DuplicateDiscriminatorError lists the collisions found while building a table.
type DuplicateDiscriminatorError struct {
	Program    string
	Namespace  Namespace
	Collisions []Collision
}

func (e *DuplicateDiscriminatorError) Error() string {
	parts := make([]string, 0, len(e.Collisions))
	for _, c := range e.Collisions {
		parts = append(parts, fmt.Sprintf("%s shadows %s (%s)", c.Kept, c.Dropped, c.Discriminator))
	}
	return fmt.Sprintf("%s %s: duplicate discriminators: %s", e.Program, e.Namespace, strings.Join(parts, "; "))
}

// Dispatcher decodes a tagged record.
type Dispatcher interface {
	Dispatch(data []byte) (*Record, error)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(data []byte) (*Record, error)

func (f DispatcherFunc) Dispatch(data []byte) (*Record, error) {
	return f(data)
}

// Table maps the tags of one namespace of one program to shapes.
// It is immutable once NewTable returns.
type Table struct {
	program    string
	namespace  Namespace
	shapes     []*Shape
	byTag      map[Discriminator]*Shape
	byName     map[string]*Shape
	byType     map[reflect.Type]*Shape
	collisions []Collision
}

// NewTable builds a table from shapes in order. When two shapes share a tag the
// first one is kept and the collision is recorded; see Collisions and Validate.
func NewTable(program string, namespace Namespace, shapes ...*Shape) *Table {
	t := &Table{
		program:   program,
		namespace: namespace,
		shapes:    make([]*Shape, 0, len(shapes)),
		byTag:     make(map[Discriminator]*Shape, len(shapes)),
		byName:    make(map[string]*Shape, len(shapes)),
		byType:    make(map[reflect.Type]*Shape, len(shapes)),
	}
	for _, s := range shapes {
		if kept, ok := t.byTag[s.tag]; ok {
			t.collisions = append(t.collisions, Collision{
				Discriminator: s.tag,
				Kept:          kept.name,
				Dropped:       s.name,
			})
			continue
		}
		t.byTag[s.tag] = s
		t.shapes = append(t.shapes, s)
		if _, ok := t.byName[s.name]; !ok {
			t.byName[s.name] = s
		}
		if _, ok := t.byType[s.typ]; !ok {
			t.byType[s.typ] = s
		}
	}
	return t
}

// MustTable is NewTable for compiled-in schemas. It panics on any collision.
func MustTable(program string, namespace Namespace, shapes ...*Shape) *Table {
	t := NewTable(program, namespace, shapes...)
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Program() string {
	return t.program
}

func (t *Table) Namespace() Namespace {
	return t.namespace
}

// Collisions returns the shapes dropped during construction.
func (t *Table) Collisions() []Collision {
	return append([]Collision(nil), t.collisions...)
}

// Validate returns a *DuplicateDiscriminatorError if construction dropped any shape.
func (t *Table) Validate() error {
	if len(t.collisions) == 0 {
		return nil
	}
	return &DuplicateDiscriminatorError{
		Program:    t.program,
		Namespace:  t.namespace,
		Collisions: t.Collisions(),
	}
}

// Len returns the number of registered shapes.
func (t *Table) Len() int {
	return len(t.shapes)
}

// Shapes returns the registered shapes in registration order.
func (t *Table) Shapes() []*Shape {
	return append([]*Shape(nil), t.shapes...)
}

// Lookup finds the shape for tag.
func (t *Table) Lookup(tag Discriminator) (*Shape, bool) {
	s, ok := t.byTag[tag]
	return s, ok
}

// ShapeByName finds a shape by record name.
func (t *Table) ShapeByName(name string) (*Shape, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// Dispatch reads the tag, selects the shape and decodes the rest of data.
// Bytes after the last field are ignored.
func (t *Table) Dispatch(data []byte) (*Record, error) {
	return t.dispatch(data, false)
}

// DispatchStrict is Dispatch but rejects trailing bytes.
func (t *Table) DispatchStrict(data []byte) (*Record, error) {
	return t.dispatch(data, true)
}

// Strict returns a Dispatcher that uses DispatchStrict.
func (t *Table) Strict() Dispatcher {
	return DispatcherFunc(t.DispatchStrict)
}

func (t *Table) dispatch(data []byte, strict bool) (*Record, error) {
	rv, err := view.NewRecordView(data)
	if err != nil {
		return nil, &borsh.DecodeError{
			Kind:  borsh.KindTruncated,
			Field: "discriminator",
			Need:  DiscriminatorSize,
			Have:  len(data),
		}
	}
	tag := Discriminator(rv.Tag())
	shape, ok := t.byTag[tag]
	if !ok {
		return nil, &borsh.DecodeError{
			Kind: borsh.KindUnknownDiscriminator,
			Tag:  tag.Bytes(),
		}
	}
	v, err := shape.decodeBody(rv.Body(), strict)
	if err != nil {
		return nil, err
	}
	return &Record{
		Program:       t.program,
		Namespace:     t.namespace,
		Shape:         shape.name,
		Discriminator: tag,
		Value:         v,
	}, nil
}

// Encode writes the tag and body of v, choosing the shape from v's dynamic type.
func (t *Table) Encode(v any) ([]byte, error) {
	shape, ok := t.shapeFor(v)
	if !ok {
		return nil, &borsh.EncodeError{Reason: fmt.Sprintf("%T is not registered in %s %s", v, t.program, t.namespace)}
	}
	return shape.Encode(v)
}

// EncodeRecord re-encodes a decoded record.
func (t *Table) EncodeRecord(rec *Record) ([]byte, error) {
	shape, ok := t.byName[rec.Shape]
	if !ok {
		return nil, &borsh.EncodeError{Reason: fmt.Sprintf("shape %s is not registered in %s %s", rec.Shape, t.program, t.namespace)}
	}
	return shape.Encode(rec.Value)
}

func (t *Table) shapeFor(v any) (*Shape, bool) {
	typ := reflect.TypeOf(v)
	if typ == nil {
		return nil, false
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	s, ok := t.byType[typ]
	return s, ok
}
