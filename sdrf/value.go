package sdrf

import "strconv"

// Kind discriminates the scalar type of an annotation-table cell.
type Kind byte

const (
	Empty Kind = iota
	Number
	String
)

// Value is a single annotation-table cell. The raw text is retained so
// that values can be re-emitted without loss; Kind records what the text
// parses as. An empty cell is an explicit Empty value, distinct from a
// column being absent altogether.
type Value struct {
	raw  string
	kind Kind
}

// ParseValue classifies a raw cell.
func ParseValue(raw string) Value {
	if raw == "" {
		return Value{kind: Empty}
	}

	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return Value{raw: raw, kind: Number}
	}

	return Value{raw: raw, kind: String}
}

func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the cell was present but blank.
func (v Value) IsEmpty() bool { return v.kind == Empty }

// Number returns the parsed numeric value when Kind is Number.
func (v Value) Number() (float64, bool) {
	if v.kind != Number {
		return 0, false
	}

	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// String returns the cell text exactly as it appeared in the table.
func (v Value) String() string { return v.raw }
