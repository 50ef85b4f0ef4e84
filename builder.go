package parameterx

// entry is one pending (key, value) pair in a Builder.
type entry struct {
	key   string
	value any
}

// Builder accumulates entries and commits them to a new Params in one step.
//
// Add never validates or deduplicates; duplicates resolve at Build time in
// insertion order, so the last one wins. A Builder produces exactly one
// Params: once built it is consumed.
//
// Example:
//
//	p, err := parameterx.NewBuilder().
//	    Add("name", "Bob").
//	    Add("scores", parameterx.NewIntVec(85, 92, 78)).
//	    Build()
type Builder struct {
	pending []entry
	built   bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends key and value to the pending entries and returns b.
// Calls on a consumed builder are ignored; Build reports the misuse.
func (b *Builder) Add(key string, value any) *Builder {
	if b.built {
		return b
	}
	b.pending = append(b.pending, entry{key: key, value: value})
	return b
}

// Merge appends every entry of other, in key order, and returns b.
func (b *Builder) Merge(other *Params) *Builder {
	for k, v := range other.All() {
		b.Add(k, v)
	}
	return b
}

// Build consumes the builder and returns a Params holding every pending
// entry applied in order. It returns ErrBuilderConsumed if called again.
func (b *Builder) Build() (*Params, error) {
	if b.built {
		return nil, ErrBuilderConsumed
	}
	b.built = true

	p := New()
	for _, e := range b.pending {
		p.Insert(e.key, e.value)
	}
	b.pending = nil
	return p, nil
}

// MustBuild is Build, panicking on a consumed builder.
func (b *Builder) MustBuild() *Params {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
