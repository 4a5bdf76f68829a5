// Package sdrf parses SDRF annotation tables: tab-delimited files with
// one row per sample and structured column headers such as
// "characteristics[organism]" or "comment[data file]". Parsed rows can
// be rendered as mzML samples, with known fields mapped onto
// controlled-vocabulary terms.
package sdrf

import "strings"

// FieldClass tags the structural class of an SDRF column.
type FieldClass byte

const (
	Innate FieldClass = iota
	Characteristic
	Comment
	Factor
)

func (c FieldClass) String() string {
	switch c {
	case Characteristic:
		return "characteristic"
	case Comment:
		return "comment"
	case Factor:
		return "factor value"
	}

	return "innate"
}

// Field is one parsed cell paired with its column header. Name holds the
// header text as written in the table (after whitespace normalization);
// for structured classes, the name used for vocabulary lookup comes from
// CanonicalName.
type Field struct {
	Name  string
	Class FieldClass
	Value Value
}

// Classify maps a column header onto its field class. Headers matching no
// SDRF structural prefix are innate columns whose header is the field
// name verbatim. The "source name" column is handled by the table reader
// and never becomes a Field.
func Classify(header string) FieldClass {
	switch {
	case strings.HasPrefix(header, "characteristics[") || strings.HasPrefix(header, "characteristic["):
		return Characteristic
	case strings.HasPrefix(header, "comment["):
		return Comment
	case strings.HasPrefix(header, "factor value["):
		return Factor
	}

	return Innate
}

// CanonicalName strips the class prefix and enclosing brackets from the
// field's header, yielding the name used for controlled-vocabulary
// lookup. Innate fields use their header verbatim. A structured header
// with no closing bracket is user input, not an invariant, so it
// surfaces as a *FormatError rather than a panic.
func (f Field) CanonicalName() (string, error) {
	if f.Class == Innate {
		return f.Name, nil
	}

	return canonicalName(f.Name)
}

func canonicalName(header string) (string, error) {
	_, inner, found := strings.Cut(header, "[")
	if !found {
		return "", &FormatError{Header: header}
	}

	end := strings.LastIndex(inner, "]")
	if end < 0 {
		return "", &FormatError{Header: header}
	}

	return strings.TrimSpace(inner[:end]), nil
}
