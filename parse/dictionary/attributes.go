package dictionary

import "encoding/json"

// Attributes is an ordered multimap of raw section attributes.
//
// Keys are kept in the order they were first seen. Appending a key that is
// already present does not move it; the value is added to the end of that
// key's list instead of replacing it.
type Attributes struct {
	keys   []string
	values map[string][]string
}

// NewAttributes returns an empty multimap.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string][]string)}
}

// Append adds value under key.
func (a *Attributes) Append(key, value string) {
	if a.values == nil {
		a.values = make(map[string][]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = append(a.values[key], value)
}

// AppendAll adds every value under key, preserving their order.
func (a *Attributes) AppendAll(key string, values []string) {
	for _, v := range values {
		a.Append(key, v)
	}
}

// Keys returns the distinct keys in first-seen order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Values returns all raw values of key in encounter order.
func (a *Attributes) Values(key string) []string {
	if a == nil {
		return nil
	}
	return a.values[key]
}

// First returns the first raw value of key.
func (a *Attributes) First(key string) (string, bool) {
	vs := a.Values(key)
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func (a *Attributes) Has(key string) bool {
	if a == nil {
		return false
	}
	_, ok := a.values[key]
	return ok
}

// Len reports the number of distinct keys.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Map flattens the multimap for encoders. Ordering is lost.
func (a *Attributes) Map() map[string][]string {
	out := make(map[string][]string, a.Len())
	for _, k := range a.Keys() {
		out[k] = append([]string(nil), a.values[k]...)
	}
	return out
}

// MarshalYAML and MarshalJSON render the flattened form so trees can be dumped.
func (a *Attributes) MarshalYAML() (any, error) {
	return a.Map(), nil
}

func (a *Attributes) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Map())
}
