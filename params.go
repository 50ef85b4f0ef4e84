package parameterx

import (
	"iter"
	"maps"
	"reflect"
	"slices"
)

// Params is a map from string keys to values of arbitrary types.
//
// Each key holds at most one value. The stored value keeps its concrete Go
// type, which Get checks exactly on retrieval. The zero value is an empty
// store ready for use. Params is not safe for concurrent mutation.
type Params struct {
	entries map[string]any
}

// New creates an empty Params.
func New() *Params {
	return &Params{entries: make(map[string]any)}
}

// Insert stores value under key, replacing any previous value regardless of
// its type.
func (p *Params) Insert(key string, value any) {
	if p.entries == nil {
		p.entries = make(map[string]any)
	}
	p.entries[key] = value
}

// With inserts value under key and returns p for chaining.
//
// Example:
//
//	p := parameterx.New().With("name", "Dave").With("age", 35)
func (p *Params) With(key string, value any) *Params {
	p.Insert(key, value)
	return p
}

// lookup returns the raw stored value. Safe on a nil Params.
func (p *Params) lookup(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.entries[key]
	return v, ok
}

// Get returns the value stored under key if its concrete type is exactly T.
// A missing key and a value of any other type both yield (zero, false).
//
// Interface types never match: Get[fmt.Stringer] is always absent because
// stored values carry their concrete type.
func Get[T any](p *Params, key string) (T, bool) {
	var zero T
	v, ok := p.lookup(key)
	if !ok || reflect.TypeOf(v) != reflect.TypeFor[T]() {
		return zero, false
	}
	return v.(T), true
}

// GetString renders the value stored under key as text.
//
// Any type with a string conversion is accepted (see render), so GetString
// does not depend on the requested type. It yields ("", false) for a missing
// key or a value that has no string conversion.
func (p *Params) GetString(key string) (string, bool) {
	v, ok := p.lookup(key)
	if !ok {
		return "", false
	}
	return render(v)
}

// Required is Get with an error describing why the value is absent.
// The error is a *Error with code KEY_NOT_FOUND or TYPE_MISMATCH.
func Required[T any](p *Params, key string) (T, error) {
	var zero T
	v, ok := p.lookup(key)
	if !ok {
		return zero, newNotFoundError(key)
	}
	if reflect.TypeOf(v) != reflect.TypeFor[T]() {
		return zero, newTypeMismatchError(key, typeNameOf[T](), typeName(v))
	}
	return v.(T), nil
}

// Parse renders the value stored under key as text and converts it with
// parse. It accepts values of any type, as GetString does.
//
// Example:
//
//	port, err := parameterx.Parse(p, "port", strconv.Atoi)
func Parse[T any](p *Params, key string, parse func(string) (T, error)) (T, error) {
	var zero T
	v, ok := p.lookup(key)
	if !ok {
		return zero, newNotFoundError(key)
	}
	s, ok := render(v)
	if !ok {
		return zero, newConversionError(key, &unrenderableError{typ: typeName(v)})
	}
	out, err := parse(s)
	if err != nil {
		return zero, newConversionError(key, err)
	}
	return out, nil
}

type unrenderableError struct {
	typ string
}

func (e *unrenderableError) Error() string {
	return "no string conversion for " + e.typ
}

// Has reports whether key is present, whatever the stored type.
func (p *Params) Has(key string) bool {
	_, ok := p.lookup(key)
	return ok
}

// Is reports whether key is present with concrete type exactly T.
func Is[T any](p *Params, key string) bool {
	_, ok := Get[T](p, key)
	return ok
}

// TypeName returns the Go type name of the value stored under key.
func (p *Params) TypeName(key string) (string, bool) {
	v, ok := p.lookup(key)
	if !ok {
		return "", false
	}
	return typeName(v), true
}

// Len returns the number of entries.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Keys returns the keys in ascending byte order.
func (p *Params) Keys() iter.Seq[string] {
	return slices.Values(p.sortedKeys())
}

// All returns every entry in key order.
func (p *Params) All() iter.Seq2[string, any] {
	keys := p.sortedKeys()
	return func(yield func(string, any) bool) {
		for _, k := range keys {
			if !yield(k, p.entries[k]) {
				return
			}
		}
	}
}

func (p *Params) sortedKeys() []string {
	if p == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(p.entries))
}

// Merge copies every entry of other into p. Entries in other win.
func (p *Params) Merge(other *Params) {
	for k, v := range other.All() {
		p.Insert(k, v)
	}
}

// Clone returns a Params with its own entry map. Values are copied as Go
// values, so pointers, slices and maps are shared with p.
func (p *Params) Clone() *Params {
	if p == nil || p.entries == nil {
		return New()
	}
	return &Params{entries: maps.Clone(p.entries)}
}
