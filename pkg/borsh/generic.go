package borsh

import "strconv"

// maxPrealloc caps the capacity reserved from an untrusted length prefix.
const maxPrealloc = 1024

func indexField(field string, i int) string {
	return field + "[" + strconv.Itoa(i) + "]"
}

// ReadArray fills dst element by element. elem is usually a Reader method
// expression such as (*Reader).U64.
func ReadArray[T any](r *Reader, field string, dst []T, elem func(*Reader, string) T) {
	for i := range dst {
		if r.err != nil {
			return
		}
		dst[i] = elem(r, indexField(field, i))
	}
}

// ReadVec reads a u32 count followed by that many elements.
func ReadVec[T any](r *Reader, field string, elem func(*Reader, string) T) []T {
	n := r.Len(field)
	if r.err != nil {
		return nil
	}
	out := make([]T, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		v := elem(r, indexField(field, i))
		if r.err != nil {
			return nil
		}
		out = append(out, v)
	}
	return out
}

// ReadOption reads a presence flag and, when set, one element.
func ReadOption[T any](r *Reader, field string, elem func(*Reader, string) T) *T {
	if !r.Option(field) {
		return nil
	}
	v := elem(r, field)
	if r.err != nil {
		return nil
	}
	return &v
}

// ReadStructArray decodes a fixed array of nested records in place.
func ReadStructArray[T any, PT interface {
	*T
	Unmarshaler
}](r *Reader, field string, dst []T) {
	for i := range dst {
		r.Struct(indexField(field, i), PT(&dst[i]))
	}
}

// ReadStructVec decodes a length-prefixed sequence of nested records.
func ReadStructVec[T any, PT interface {
	*T
	Unmarshaler
}](r *Reader, field string) []T {
	n := r.Len(field)
	if r.err != nil {
		return nil
	}
	out := make([]T, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		var v T
		r.Struct(indexField(field, i), PT(&v))
		if r.err != nil {
			return nil
		}
		out = append(out, v)
	}
	return out
}

// ReadStructOption decodes an optional nested record.
func ReadStructOption[T any, PT interface {
	*T
	Unmarshaler
}](r *Reader, field string) *T {
	if !r.Option(field) {
		return nil
	}
	v := new(T)
	r.Struct(field, PT(v))
	if r.err != nil {
		return nil
	}
	return v
}

// WriteArray writes every element of src without a count.
func WriteArray[T any](w *Writer, src []T, elem func(*Writer, T)) {
	for _, v := range src {
		elem(w, v)
	}
}

// WriteVec writes a u32 count followed by the elements.
func WriteVec[T any](w *Writer, field string, src []T, elem func(*Writer, T)) {
	w.Len(field, len(src))
	WriteArray(w, src, elem)
}

// WriteOption writes a presence flag and the value when v is non-nil.
func WriteOption[T any](w *Writer, v *T, elem func(*Writer, T)) {
	w.Option(v != nil)
	if v != nil {
		elem(w, *v)
	}
}

// WriteStructArray encodes a fixed array of nested records.
func WriteStructArray[T any, PT interface {
	*T
	Marshaler
}](w *Writer, src []T) {
	for i := range src {
		w.Struct(PT(&src[i]))
	}
}

// WriteStructVec encodes a length-prefixed sequence of nested records.
func WriteStructVec[T any, PT interface {
	*T
	Marshaler
}](w *Writer, field string, src []T) {
	w.Len(field, len(src))
	WriteStructArray[T, PT](w, src)
}

// WriteStructOption encodes an optional nested record.
func WriteStructOption[T any, PT interface {
	*T
	Marshaler
}](w *Writer, v *T) {
	w.Option(v != nil)
	if v != nil {
		w.Struct(PT(v))
	}
}
