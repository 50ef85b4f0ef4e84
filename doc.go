// Package parameterx provides a typed, heterogeneous parameter container.
//
// A Params maps string keys to values of arbitrary, possibly distinct, types.
// Values are retrieved either with an exact type check (Get) or rendered as
// text (GetString). Three construction styles are supported:
//
//	p := parameterx.New()
//	p.Insert("name", "Alice")
//	p.Insert("age", 30)
//
//	p, err := parameterx.NewBuilder().
//	    Add("name", "Bob").
//	    Add("scores", parameterx.NewIntVec(85, 92, 78)).
//	    Build()
//
//	p := parameterx.Of(parameterx.P("name", "Charlie"), parameterx.P("age", "25"))
//
// Key design constraints:
//   - A missing key and a type mismatch are the same outcome: absence
//   - Inserting an existing key replaces the value, whatever its type
//   - Get matches the stored concrete type exactly, never an interface
//   - Params is single-owner; callers sharing one across goroutines must lock
package parameterx
