package sdrf

import (
	"strings"

	"github.com/carbocation/proteomisc/mzml"
)

// Sample is one annotation-table row. Rows are immutable once parsed. No
// attempt is made to aggregate replicate rows that describe the same
// biological entity; each row stands alone.
type Sample struct {
	Name            string
	Fields          []Field // innate columns, in table order
	Characteristics []Field
	Comments        []Field
	Factors         []Field
}

// DataFile returns the value of the comment[data file] field, which ties
// the row to the data file its metadata describes.
func (s Sample) DataFile() (string, bool) {
	for _, f := range s.Comments {
		name, err := f.CanonicalName()
		if err != nil {
			// Comment headers are validated when the table is read.
			continue
		}
		if name == "data file" {
			return f.Value.String(), true
		}
	}

	return "", false
}

// ExportSample renders the row as an mzML sample, mapping each field in
// innate, characteristic, comment, factor order. The data file and
// instrument fields steer processing and are never emitted as metadata.
// The sample ID is the row name lowercased with spaces replaced by
// underscores; the display name is the row name verbatim.
func (s Sample) ExportSample() (mzml.Sample, error) {
	out := mzml.Sample{
		ID:   strings.ToLower(strings.ReplaceAll(s.Name, " ", "_")),
		Name: s.Name,
	}

	for _, fields := range [][]Field{s.Fields, s.Characteristics, s.Comments, s.Factors} {
		for _, f := range fields {
			name, err := f.CanonicalName()
			if err != nil {
				return mzml.Sample{}, err
			}
			if name == "data file" || name == "instrument" {
				continue
			}

			p, err := f.Param()
			if err != nil {
				return mzml.Sample{}, err
			}
			switch p := p.(type) {
			case mzml.CVParam:
				out.CvParams = append(out.CvParams, p)
			case mzml.UserParam:
				out.UserParams = append(out.UserParams, p)
			}
		}
	}

	return out, nil
}

// GroupByDataFile indexes rows by their data-file association, preserving
// row order within each group. Every row must carry a comment[data file]
// field; a row without one cannot be attached to any output, and that is
// a hard error rather than a silent drop.
func GroupByDataFile(samples []Sample) (map[string][]Sample, error) {
	index := make(map[string][]Sample)
	for i, s := range samples {
		df, ok := s.DataFile()
		if !ok {
			return nil, &MissingDataFileError{Row: i, Name: s.Name}
		}
		index[df] = append(index[df], s)
	}

	return index, nil
}
