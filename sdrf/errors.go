package sdrf

import "fmt"

// FormatError reports a structured column header with no closing bracket.
type FormatError struct {
	Header string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("sdrf: malformed column header %q: missing closing bracket", e.Header)
}

// RowError reports a data row that could not be parsed. Row is the
// 0-based index of the row within the table body.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sdrf: row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// MissingDataFileError reports a row with no comment[data file] field,
// which leaves the row impossible to associate with any data file.
type MissingDataFileError struct {
	Row  int
	Name string
}

func (e *MissingDataFileError) Error() string {
	return fmt.Sprintf("sdrf: row %d (%q) has no comment[data file] field", e.Row, e.Name)
}
