package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/carbocation/pfx"
	"github.com/carbocation/proteomisc/mzml"
	"github.com/carbocation/proteomisc/sdrf"
)

// ErrNoSourceFile means the mzML input declares no source file, leaving
// nothing to match annotation rows against.
var ErrNoSourceFile = errors.New("mzml input declares no source file")

// NoSamplesError reports an mzML source file with no matching rows in
// the annotation table.
type NoSamplesError struct {
	SourceFile string
}

func (e *NoSamplesError) Error() string {
	return fmt.Sprintf("no annotation rows for source file %q", e.SourceFile)
}

// Patcher replaces the sample list of an mzML stream with samples built
// from annotation rows grouped by data file, passing all other content
// through unchanged. The zero value is not usable without Groups.
type Patcher struct {
	// Groups maps each data-file name onto its annotation rows, as
	// produced by sdrf.GroupByDataFile.
	Groups map[string][]sdrf.Sample

	// Log receives progress and diagnostics. Defaults to log.Default().
	Log *log.Logger

	// Every is the number of spectrum groups between progress lines.
	// Defaults to 500.
	Every int
}

// Patch rewrites the stream from r to w in one pass. The mzML file's
// first declared source file selects the sample group; both the source
// file and its group must exist before any output is produced, so a
// mismatched table never yields a partially written document.
func (p *Patcher) Patch(r *mzml.Reader, w *mzml.Writer) error {
	lg := p.Log
	if lg == nil {
		lg = log.Default()
	}
	every := p.Every
	if every <= 0 {
		every = 500
	}

	sourceFiles := r.SourceFiles()
	if len(sourceFiles) == 0 {
		return ErrNoSourceFile
	}

	// Multiple declared source files are possible; like the upstream
	// tooling, only the first is consulted.
	src := sourceFiles[0].Name
	lg.Println("Extracting samples associated with", src)

	rows, ok := p.Groups[src]
	if !ok {
		return &NoSamplesError{SourceFile: src}
	}
	lg.Printf("Found %d samples", len(rows))

	samples := make([]mzml.Sample, 0, len(rows))
	for _, row := range rows {
		s, err := row.ExportSample()
		if err != nil {
			return err
		}
		samples = append(samples, s)
	}
	r.SetSamples(samples)
	lg.Println("Updated sample list metadata")

	if err := w.CopyMetadata(r); err != nil {
		return pfx.Err(err)
	}

	written := 0
	for i := 0; ; i++ {
		g, err := r.NextGroup()
		if err == io.EOF {
			break
		} else if err != nil {
			return pfx.Err(err)
		}

		if i%every == 0 && i > 0 {
			lg.Printf("Writing group %d, %d spectra written", i, written)
		}
		written += g.Size()

		if err := w.WriteGroup(g); err != nil {
			return pfx.Err(err)
		}
	}

	if err := w.Close(); err != nil {
		return pfx.Err(err)
	}
	lg.Printf("Wrote %d spectra", written)

	return nil
}
