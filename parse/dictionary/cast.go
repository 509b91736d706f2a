package dictionary

import (
	"strconv"
	"strings"
)

// =========================
// Attribute Casting
// =========================

type CastKind string

var castKinds = struct {
	Int         CastKind
	String      CastKind
	Bool        CastKind
	Passthrough CastKind
}{
	Int:         "int",
	String:      "string",
	Bool:        "bool",
	Passthrough: "passthrough",
}

// castTable maps an attribute key to its casting strategy. Keys that are
// not listed pass through untouched.
var castTable = map[string]CastKind{
	"Start":           castKinds.Int,
	"Len":             castKinds.Int,
	"RecordTypeStart": castKinds.Int,
	"RecordTypeLen":   castKinds.Int,
	"MaxRecords":      castKinds.Int,
	"RecordLen":       castKinds.Int,
	"Occurrences":     castKinds.Int,

	"Name":            castKinds.String,
	"Label":           castKinds.String,
	"Note":            castKinds.String,
	"Version":         castKinds.String,
	"Positions":       castKinds.String,
	"RecordTypeValue": castKinds.String,
	"ItemType":        castKinds.String,
	"DataType":        castKinds.String,

	"ZeroFill":    castKinds.Bool,
	"DecimalChar": castKinds.Bool,
	"Required":    castKinds.Bool,
}

// listKey is always kept as a list, however many values it has.
const listKey = "Value"

// KindOf reports the casting strategy for key.
func KindOf(key string) CastKind {
	if k, ok := castTable[key]; ok {
		return k
	}
	return castKinds.Passthrough
}

// Value is one attribute after casting. V holds an int, string or bool when a
// single raw value was cast, the raw string for a single passthrough value,
// and the raw list otherwise.
type Value struct {
	Key  string
	Kind CastKind
	Raw  []string
	V    any
}

// Scalar reports whether the attribute was reduced to a single value.
func (v Value) Scalar() bool {
	_, isList := v.V.([]string)
	return !isList
}

// CastAttributes casts every attribute of a decoded section in key order.
func CastAttributes(attrs *Attributes) ([]Value, error) {
	out := make([]Value, 0, attrs.Len())
	for _, key := range attrs.Keys() {
		raw := attrs.Values(key)
		v := Value{Key: key, Kind: KindOf(key), Raw: raw}
		if len(raw) != 1 || key == listKey {
			v.V = append([]string(nil), raw...)
			out = append(out, v)
			continue
		}
		cast, err := castScalar(v.Kind, raw[0])
		if err != nil {
			return nil, &ParseError{Kind: ErrAttributeCast, Key: key, Err: err}
		}
		v.V = cast
		out = append(out, v)
	}
	return out, nil
}

func castScalar(kind CastKind, raw string) (any, error) {
	switch kind {
	case castKinds.Int:
		return toInt(raw)
	case castKinds.String:
		return stripQuotes(raw), nil
	case castKinds.Bool:
		return wordToBool(raw), nil
	default:
		return raw, nil
	}
}

func toInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func stripQuotes(s string) string {
	return strings.Trim(s, "'")
}

// wordToBool is true only for the literal Yes. Surrounding single quotes are
// ignored so that 'Yes' and Yes agree.
func wordToBool(s string) bool {
	return stripQuotes(s) == "Yes"
}
