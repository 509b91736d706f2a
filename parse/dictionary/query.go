package dictionary

import (
	"math"
	"strconv"
	"strings"
)

// =========================
// Queries
// =========================

// ColumnLabel pairs an item name with its label.
type ColumnLabel struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
}

// ColumnLabels keeps item order.
type ColumnLabels []ColumnLabel

// Map drops the ordering. A repeated name keeps its last label.
func (c ColumnLabels) Map() map[string]string {
	out := make(map[string]string, len(c))
	for _, l := range c {
		out[l.Name] = l.Label
	}
	return out
}

// ValueLabels maps an item name to its coded values. A code is an int, a
// float64, or a string, depending on the item (see Cast).
type ValueLabels map[string]map[any]string

// Levels returns the levels of the dictionary.
func (t *Tree) Levels() []*Level {
	if t == nil || t.Dictionary == nil {
		return nil
	}
	return t.Dictionary.Levels
}

// Record finds the first record called name in the last Level.
func (t *Tree) Record(name string) (*Record, bool) {
	levels := t.Levels()
	if len(levels) == 0 {
		return nil, false
	}
	for _, r := range levels[len(levels)-1].Records {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// ColumnLabels returns the label of every item of the named record. The
// boolean is false when there is no tree or no such record.
func (t *Tree) ColumnLabels(record string) (ColumnLabels, bool) {
	r, ok := t.Record(record)
	if !ok {
		return nil, false
	}
	out := make(ColumnLabels, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, ColumnLabel{Name: it.Name, Label: it.Label})
	}
	return out, true
}

// ValueLabels decodes the first value set of every item of the named record.
// A nil columns slice selects every item; otherwise only the named items
// are read. Range specs ("low:high;label") are left out. Items without a
// value set do not appear.
func (t *Tree) ValueLabels(record string, columns []string) (ValueLabels, bool) {
	r, ok := t.Record(record)
	if !ok {
		return nil, false
	}
	var want map[string]struct{}
	if columns != nil {
		want = make(map[string]struct{}, len(columns))
		for _, c := range columns {
			want[c] = struct{}{}
		}
	}

	out := make(ValueLabels)
	for _, it := range r.Items {
		if want != nil {
			if _, ok := want[it.Name]; !ok {
				continue
			}
		}
		if len(it.ValueSets) == 0 {
			continue
		}
		labels := make(map[any]string)
		for _, spec := range it.ValueSets[0].Value {
			code, label, ok := decodeValueSpec(spec, it)
			if !ok {
				continue
			}
			labels[code] = label
		}
		out[it.Name] = labels
	}
	return out, true
}

// decodeValueSpec reads "code;label". Bare strings and ranges are rejected.
func decodeValueSpec(spec string, it *Item) (any, string, bool) {
	code, label, found := strings.Cut(spec, ";")
	if !found || strings.Contains(code, ":") {
		return nil, "", false
	}
	v := Cast(code, it)
	// NaN never equals itself and would be an unreachable key
	if f, isFloat := v.(float64); isFloat && math.IsNaN(f) {
		return nil, "", false
	}
	return v, label, true
}

// Cast converts a raw code for a Numeric item to an int, or to a float64 when
// the item has decimals. A code that does not parse is returned unchanged.
// Codes of other items are returned as text.
func Cast(raw string, it *Item) any {
	if it.DataType != DataTypeNumeric || raw == "" {
		return raw
	}
	s := strings.TrimSpace(raw)
	if it.Decimal != 0 {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return raw
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return raw
}
