package sdrf

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/carbocation/proteomisc"
)

// ReadFile parses the annotation table at path into one Sample per row.
// The file may be gzip/zip/xz/bzip2 compressed. The delimiter is
// sniffed, with tab (the SDRF standard) as the fallback, so that
// comma-exported tables still parse.
func ReadFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r, err := proteomisc.MaybeDecompressReader(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// The delimiter detector consumes its input and annotation tables
	// are small, so buffer the table and scan it twice.
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// Only a comma may override the SDRF default: any other candidate
	// the detector proposes is far more likely to be cell content.
	delim := proteomisc.DetermineDelimiter(bytes.NewReader(raw))
	if delim != ',' {
		delim = '\t'
	}

	return Read(bytes.NewReader(raw), delim)
}

// Read parses an annotation table from r using the given delimiter. The
// first row is the mandatory header row; each following row is zipped
// against the headers positionally and becomes one Sample.
func Read(r io.Reader, delim rune) ([]Sample, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.LazyQuotes = true

	rawHeaders, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("sdrf: table has no header row")
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	// Normalize stray whitespace before the closing bracket, so that
	// "characteristics[ organism ]" and "characteristics[organism]" name
	// the same field. Structured headers are validated here, before any
	// rows are parsed.
	headers := make([]string, len(rawHeaders))
	classes := make([]FieldClass, len(rawHeaders))
	for i, h := range rawHeaders {
		h = strings.ReplaceAll(h, " ]", "]")
		headers[i] = h
		classes[i] = Classify(h)
		if classes[i] != Innate {
			if _, err := canonicalName(h); err != nil {
				return nil, err
			}
		}
	}

	var samples []Sample
	for i := 0; ; i++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			// Includes rows whose cell count disagrees with the header
			// row; those are never padded or truncated.
			return nil, &RowError{Row: i, Err: err}
		}
		if len(row) != len(headers) {
			return nil, &RowError{Row: i, Err: fmt.Errorf("%d cells against %d headers", len(row), len(headers))}
		}

		var sample Sample
		for j, cell := range row {
			if headers[j] == "source name" {
				sample.Name = cell
				continue
			}

			f := Field{Name: headers[j], Class: classes[j], Value: ParseValue(cell)}
			switch classes[j] {
			case Characteristic:
				sample.Characteristics = append(sample.Characteristics, f)
			case Comment:
				sample.Comments = append(sample.Comments, f)
			case Factor:
				sample.Factors = append(sample.Factors, f)
			default:
				sample.Fields = append(sample.Fields, f)
			}
		}

		samples = append(samples, sample)
	}

	return samples, nil
}
