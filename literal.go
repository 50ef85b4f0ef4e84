package parameterx

import "iter"

// TextKey is the key FromText stores its text under.
const TextKey = "text"

// Pair is a key and a text value for literal construction.
type Pair struct {
	Key   string
	Value string
}

// P is a shorthand for Pair.
// Example: parameterx.Of(parameterx.P("name", "Charlie"), parameterx.P("age", "25"))
func P(key, value string) Pair {
	return Pair{Key: key, Value: value}
}

// Of creates a Params from pairs, inserting each value as a string in order.
// Later duplicate keys win.
func Of(pairs ...Pair) *Params {
	p := New()
	for _, pair := range pairs {
		p.Insert(pair.Key, pair.Value)
	}
	return p
}

// FromText creates a Params holding text under TextKey.
func FromText(text string) *Params {
	return New().With(TextKey, text)
}

// Collect creates a Params from a sequence of key/text pairs in order.
func Collect(seq iter.Seq2[string, string]) *Params {
	p := New()
	for k, v := range seq {
		p.Insert(k, v)
	}
	return p
}

// FromMap creates a Params holding every entry of m as a string.
func FromMap(m map[string]string) *Params {
	p := &Params{entries: make(map[string]any, len(m))}
	for k, v := range m {
		p.entries[k] = v
	}
	return p
}
