package proteomisc

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a delimited text file. Falls back to
// tab, the delimiter of the SDRF format, when detection is inconclusive.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}
