package dictionary

import (
	"strconv"
	"strings"
)

// =========================
// Tree Definitions
// =========================

// Dictionary is the root of a parsed definition.
type Dictionary struct {
	Name            string        `json:"name" yaml:"name"`
	Label           string        `json:"label" yaml:"label"`
	Note            string        `json:"note" yaml:"note"`
	Version         string        `json:"version" yaml:"version"`
	RecordTypeStart int           `json:"record_type_start" yaml:"record_type_start"`
	RecordTypeLen   int           `json:"record_type_len" yaml:"record_type_len"`
	Positions       string        `json:"positions" yaml:"positions"`
	ZeroFill        bool          `json:"zero_fill" yaml:"zero_fill"`
	DecimalChar     bool          `json:"decimal_char" yaml:"decimal_char"`
	Languages       *Attributes   `json:"languages" yaml:"languages"`
	Relations       []*Attributes `json:"relations" yaml:"relations"`
	Levels          []*Level      `json:"levels" yaml:"levels"`
	Extra           *Attributes   `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Level is one hierarchical unit, such as household or person.
type Level struct {
	Name    string      `json:"name" yaml:"name"`
	Label   string      `json:"label" yaml:"label"`
	Note    string      `json:"note" yaml:"note"`
	IdItems []*Item     `json:"id_items" yaml:"id_items"`
	Records []*Record   `json:"records" yaml:"records"`
	Extra   *Attributes `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Record is one physical record type within a Level.
type Record struct {
	Name            string      `json:"name" yaml:"name"`
	Label           string      `json:"label" yaml:"label"`
	Note            string      `json:"note" yaml:"note"`
	RecordTypeValue string      `json:"record_type_value" yaml:"record_type_value"`
	Required        bool        `json:"required" yaml:"required"`
	MaxRecords      int         `json:"max_records" yaml:"max_records"`
	RecordLen       int         `json:"record_len" yaml:"record_len"`
	OccurrenceLabel []string    `json:"occurrence_label" yaml:"occurrence_label"`
	Items           []*Item     `json:"items" yaml:"items"`
	Extra           *Attributes `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Item is a data field. It serves both as a Level id item and as a Record
// item; only Record items carry SubItems.
type Item struct {
	Name            string      `json:"name" yaml:"name"`
	Label           string      `json:"label" yaml:"label"`
	Note            string      `json:"note" yaml:"note"`
	Start           int         `json:"start" yaml:"start"`
	Len             int         `json:"len" yaml:"len"`
	ItemType        string      `json:"item_type" yaml:"item_type"`
	DataType        string      `json:"data_type" yaml:"data_type"`
	Occurrences     int         `json:"occurrences" yaml:"occurrences"`
	Decimal         int         `json:"decimal" yaml:"decimal"`
	DecimalChar     bool        `json:"decimal_char" yaml:"decimal_char"`
	ZeroFill        bool        `json:"zero_fill" yaml:"zero_fill"`
	OccurrenceLabel []string    `json:"occurrence_label" yaml:"occurrence_label"`
	ValueSets       []*ValueSet `json:"value_sets,omitempty" yaml:"value_sets,omitempty"`
	SubItems        []*Item     `json:"sub_items,omitempty" yaml:"sub_items,omitempty"`
	Extra           *Attributes `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// ValueSet holds raw value specs such as "1;Male" or "0:9;Range".
type ValueSet struct {
	Name  string      `json:"name" yaml:"name"`
	Label string      `json:"label" yaml:"label"`
	Note  string      `json:"note" yaml:"note"`
	Value []string    `json:"value" yaml:"value"`
	Extra *Attributes `json:"extra,omitempty" yaml:"extra,omitempty"`
}

const (
	ItemTypeItem    = "Item"
	ItemTypeSubItem = "SubItem"
	DataTypeNumeric = "Numeric"
)

// IsSubItem reports whether the item nests under its preceding sibling.
func (it *Item) IsSubItem() bool {
	return it.ItemType == ItemTypeSubItem
}

// =========================
// Defaults
// =========================

func newDictionary() *Dictionary {
	return &Dictionary{
		RecordTypeStart: 1,
		Positions:       "Relative",
		ZeroFill:        true,
		Languages:       NewAttributes(),
	}
}

func newLevel() *Level {
	return &Level{}
}

func newRecord() *Record {
	return &Record{
		MaxRecords:      1,
		OccurrenceLabel: []string{},
	}
}

func newItem() *Item {
	return &Item{
		ItemType:        ItemTypeItem,
		DataType:        DataTypeNumeric,
		Occurrences:     1,
		OccurrenceLabel: []string{},
	}
}

func newValueSet() *ValueSet {
	return &ValueSet{Value: []string{}}
}

// =========================
// Overlay
// =========================

// Each apply method overlays cast attributes on a defaulted record. A key the
// record does not know, or a known scalar key that arrived with several
// values, is kept in Extra.

func (d *Dictionary) apply(values []Value) {
	for _, v := range values {
		var ok bool
		switch v.Key {
		case "Name":
			ok = setString(&d.Name, v)
		case "Label":
			ok = setString(&d.Label, v)
		case "Note":
			ok = setString(&d.Note, v)
		case "Version":
			ok = setString(&d.Version, v)
		case "RecordTypeStart":
			ok = setInt(&d.RecordTypeStart, v)
		case "RecordTypeLen":
			ok = setInt(&d.RecordTypeLen, v)
		case "Positions":
			ok = setString(&d.Positions, v)
		case "ZeroFill":
			ok = setBool(&d.ZeroFill, v)
		case "DecimalChar":
			ok = setBool(&d.DecimalChar, v)
		}
		if !ok {
			d.Extra = keepExtra(d.Extra, v)
		}
	}
}

func (l *Level) apply(values []Value) {
	for _, v := range values {
		var ok bool
		switch v.Key {
		case "Name":
			ok = setString(&l.Name, v)
		case "Label":
			ok = setString(&l.Label, v)
		case "Note":
			ok = setString(&l.Note, v)
		}
		if !ok {
			l.Extra = keepExtra(l.Extra, v)
		}
	}
}

func (r *Record) apply(values []Value) {
	for _, v := range values {
		ok := true
		switch v.Key {
		case "Name":
			ok = setString(&r.Name, v)
		case "Label":
			ok = setString(&r.Label, v)
		case "Note":
			ok = setString(&r.Note, v)
		case "RecordTypeValue":
			ok = setString(&r.RecordTypeValue, v)
		case "Required":
			ok = setBool(&r.Required, v)
		case "MaxRecords":
			ok = setInt(&r.MaxRecords, v)
		case "RecordLen":
			ok = setInt(&r.RecordLen, v)
		case "OccurrenceLabel":
			r.OccurrenceLabel = append([]string(nil), v.Raw...)
		default:
			ok = false
		}
		if !ok {
			r.Extra = keepExtra(r.Extra, v)
		}
	}
}

func (it *Item) apply(values []Value) {
	for _, v := range values {
		ok := true
		switch v.Key {
		case "Name":
			ok = setString(&it.Name, v)
		case "Label":
			ok = setString(&it.Label, v)
		case "Note":
			ok = setString(&it.Note, v)
		case "Start":
			ok = setInt(&it.Start, v)
		case "Len":
			ok = setInt(&it.Len, v)
		case "ItemType":
			ok = setString(&it.ItemType, v)
		case "DataType":
			ok = setString(&it.DataType, v)
		case "Occurrences":
			ok = setInt(&it.Occurrences, v)
		case "Decimal":
			ok = setDecimal(&it.Decimal, v)
		case "DecimalChar":
			ok = setBool(&it.DecimalChar, v)
		case "ZeroFill":
			ok = setBool(&it.ZeroFill, v)
		case "OccurrenceLabel":
			it.OccurrenceLabel = append([]string(nil), v.Raw...)
		default:
			ok = false
		}
		if !ok {
			it.Extra = keepExtra(it.Extra, v)
		}
	}
}

func (vs *ValueSet) apply(values []Value) {
	for _, v := range values {
		ok := true
		switch v.Key {
		case "Name":
			ok = setString(&vs.Name, v)
		case "Label":
			ok = setString(&vs.Label, v)
		case "Note":
			ok = setString(&vs.Note, v)
		case listKey:
			vs.Value = append([]string(nil), v.Raw...)
		default:
			ok = false
		}
		if !ok {
			vs.Extra = keepExtra(vs.Extra, v)
		}
	}
}

func setString(dst *string, v Value) bool {
	s, ok := v.V.(string)
	if ok {
		*dst = s
	}
	return ok
}

func setInt(dst *int, v Value) bool {
	n, ok := v.V.(int)
	if ok {
		*dst = n
	}
	return ok
}

func setBool(dst *bool, v Value) bool {
	b, ok := v.V.(bool)
	if ok {
		*dst = b
	}
	return ok
}

// Decimal is not in the integer cast table, so a malformed value is kept
// as an extra attribute instead of failing the parse.
func setDecimal(dst *int, v Value) bool {
	s, ok := v.V.(string)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(stripQuotes(s)))
	if err != nil {
		return false
	}
	*dst = n
	return true
}

func keepExtra(extra *Attributes, v Value) *Attributes {
	if extra == nil {
		extra = NewAttributes()
	}
	extra.AppendAll(v.Key, v.Raw)
	return extra
}
