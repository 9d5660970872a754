package query

import "github.com/indigo-web/iter"

// Value is either a single value or an ordered sequence of them. A key met once in the
// query holds a single value, a key met more than once holds all of its values in the
// order of appearance.
type Value struct {
	single string
	multi  []string
}

// IsMultiple tells whether the key appeared more than once.
func (v Value) IsMultiple() bool {
	return v.multi != nil
}

// Single returns the value of a key that appeared once. It is empty for multiple values.
func (v Value) Single() string {
	return v.single
}

// Multiple returns all the values of a key that appeared more than once. It is nil
// for a single value.
func (v Value) Multiple() []string {
	return v.multi
}

// First returns the earliest value regardless of the shape.
func (v Value) First() string {
	if v.IsMultiple() {
		return v.multi[0]
	}

	return v.single
}

func (v Value) add(value string) Value {
	if !v.IsMultiple() {
		return Value{multi: []string{v.single, value}}
	}

	v.multi = append(v.multi, value)
	return v
}

// Pair is a unique key together with all of its values.
type Pair struct {
	Key   string
	Value Value
}

// Query is a lazy structure for accessing URI parameters. Its laziness is defined
// by the fact that parameters won't be parsed until requested.
//
// Keys and values are never decoded: percent-encoded sequences and pluses are returned
// exactly as they are presented in the request. They also aren't copied, so by that
// they are valid as long as the buffer the raw query was taken from is.
type Query struct {
	parsed  bool
	raw     string
	pairs   []Pair
}

func New(raw string) *Query {
	return &Query{
		raw: raw,
	}
}

// Get returns the value by the key (case-sensitive) and whether the key is presented.
// A parameter without the equal sign is presented with an empty value.
func (q *Query) Get(key string) (Value, bool) {
	q.parse()

	if i := q.index(key); i != -1 {
		return q.pairs[i].Value, true
	}

	return Value{}, false
}

// Has indicates, whether there's an entry of the key
func (q *Query) Has(key string) bool {
	_, found := q.Get(key)
	return found
}

// Keys returns all the unique keys in order of their first appearance.
func (q *Query) Keys() []string {
	q.parse()

	keys := make([]string, len(q.pairs))
	for i, pair := range q.pairs {
		keys[i] = pair.Key
	}

	return keys
}

// Iter returns an iterator over the pairs in order of their keys' first appearance.
func (q *Query) Iter() iter.Iterator[Pair] {
	q.parse()
	return iter.Slice(q.pairs)
}

// Len returns the number of unique keys.
func (q *Query) Len() int {
	q.parse()
	return len(q.pairs)
}

// Raw just returns a raw value of query as it is
func (q *Query) Raw() string {
	return q.raw
}

func (q *Query) parse() {
	if q.parsed {
		return
	}

	q.parsed = true
	data := q.raw

	for {
		fragment := data
		last := true

		for i := 0; i < len(data); i++ {
			if data[i] == '&' {
				fragment, data = data[:i], data[i+1:]
				last = false
				break
			}
		}

		q.insert(splitPair(fragment))

		if last {
			return
		}
	}
}

func (q *Query) insert(key, value string) {
	if i := q.index(key); i != -1 {
		q.pairs[i].Value = q.pairs[i].Value.add(value)
		return
	}

	q.pairs = append(q.pairs, Pair{
		Key:   key,
		Value: Value{single: value},
	})
}

func (q *Query) index(key string) int {
	for i, pair := range q.pairs {
		if pair.Key == key {
			return i
		}
	}

	return -1
}

// splitPair splits the fragment by the first equal sign. Fragment without one is a key
// with an empty value.
func splitPair(fragment string) (key, value string) {
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == '=' {
			return fragment[:i], fragment[i+1:]
		}
	}

	return fragment, ""
}
