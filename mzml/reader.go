package mzml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html/charset"
)

// ErrNotMzML means the input's document element is neither mzML nor
// indexedmzML.
var ErrNotMzML = errors.New("mzml: document element is not mzML or indexedmzML")

// Reader consumes an mzML document in a single forward pass. NewReader
// parses everything ahead of the spectra; NextSpectrum / NextGroup then
// stream the run content one unit at a time.
type Reader struct {
	d *xml.Decoder

	version     string
	sourceFiles []SourceFile
	samples     []Sample

	// Raw header sections in schema order, split around the sampleList
	// position so a replaced sample list lands where the schema wants it.
	preSample  []*section
	postSample []*section

	runAttrs          []xml.Attr
	spectrumListAttrs []xml.Attr
	declaredSpectra   int
	hasRun            bool
	hasSpectrumList   bool

	// Run content after the last spectrum (typically the
	// chromatogramList), captured for the writer's trailer.
	trailer []*section

	pending *Spectrum
	done    bool
}

// NewReader reads the document header through the opening of the
// spectrum list, leaving the decoder positioned at the first spectrum.
// Documents wrapped in indexedmzML are unwrapped; the index holds byte
// offsets that rewriting invalidates, so it is dropped rather than
// carried over.
func NewReader(r io.Reader) (*Reader, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	rd := &Reader{d: d}
	if err := rd.readHeader(); err != nil {
		return nil, err
	}

	return rd, nil
}

// Version returns the mzML schema version declared by the input.
func (r *Reader) Version() string {
	if r.version == "" {
		return "1.1.0"
	}

	return r.version
}

// SourceFiles returns the source files declared in the fileDescription,
// in declaration order.
func (r *Reader) SourceFiles() []SourceFile { return r.sourceFiles }

// Samples returns the current sample list.
func (r *Reader) Samples() []Sample { return r.samples }

// SetSamples replaces the sample list wholesale. Any samples declared by
// the input are discarded, not merged.
func (r *Reader) SetSamples(samples []Sample) { r.samples = samples }

// DeclaredSpectra returns the spectrum count declared by the input's
// spectrumList element.
func (r *Reader) DeclaredSpectra() int { return r.declaredSpectra }

func (r *Reader) readHeader() error {
	if err := r.findDocumentElement(); err != nil {
		return err
	}

	for {
		tok, err := r.d.Token()
		if err != nil {
			return fmt.Errorf("mzml: reading header: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "run" {
				r.runAttrs = t.Attr
				r.hasRun = true
				return r.openSpectrumList()
			}
			if err := r.readHeaderSection(t); err != nil {
				return err
			}
		case xml.EndElement:
			// </mzML> before any run: a header-only document.
			r.done = true
			return nil
		}
	}
}

func (r *Reader) findDocumentElement() error {
	for {
		tok, err := r.d.Token()
		if err != nil {
			return fmt.Errorf("mzml: reading document element: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "indexedmzML":
			// Unwrap and keep looking for the mzML element inside.
		case "mzML":
			for _, a := range se.Attr {
				if a.Name.Local == "version" {
					r.version = a.Value
				}
			}
			return nil
		default:
			return ErrNotMzML
		}
	}
}

func (r *Reader) readHeaderSection(se xml.StartElement) error {
	switch se.Name.Local {
	case "fileDescription":
		var fd fileDescription
		if err := r.d.DecodeElement(&fd, &se); err != nil {
			return fmt.Errorf("mzml: parsing fileDescription: %w", err)
		}
		r.sourceFiles = fd.SourceFileList.SourceFiles
		r.preSample = append(r.preSample, &section{XMLName: se.Name, Attrs: fd.Attrs, Inner: fd.Inner})
	case "sampleList":
		var sl sampleList
		if err := r.d.DecodeElement(&sl, &se); err != nil {
			return fmt.Errorf("mzml: parsing sampleList: %w", err)
		}
		r.samples = sl.Samples
	case "cvList", "referenceableParamGroupList":
		sec := &section{}
		if err := r.d.DecodeElement(sec, &se); err != nil {
			return fmt.Errorf("mzml: parsing %s: %w", se.Name.Local, err)
		}
		r.preSample = append(r.preSample, sec)
	default:
		// softwareList, scanSettingsList, instrumentConfigurationList,
		// dataProcessingList, and anything a newer schema adds.
		sec := &section{}
		if err := r.d.DecodeElement(sec, &se); err != nil {
			return fmt.Errorf("mzml: parsing %s: %w", se.Name.Local, err)
		}
		r.postSample = append(r.postSample, sec)
	}

	return nil
}

func (r *Reader) openSpectrumList() error {
	for {
		tok, err := r.d.Token()
		if err != nil {
			return fmt.Errorf("mzml: reading run: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "spectrumList" {
				r.spectrumListAttrs = t.Attr
				r.hasSpectrumList = true
				for _, a := range t.Attr {
					if a.Name.Local == "count" {
						if n, err := strconv.Atoi(a.Value); err == nil {
							r.declaredSpectra = n
						}
					}
				}
				return nil
			}

			// Run content ahead of any spectrum list, e.g. a
			// chromatogram-only run.
			sec := &section{}
			if err := r.d.DecodeElement(sec, &t); err != nil {
				return fmt.Errorf("mzml: parsing %s: %w", t.Name.Local, err)
			}
			r.trailer = append(r.trailer, sec)
		case xml.EndElement:
			if t.Name.Local == "run" {
				r.done = true
				return nil
			}
		}
	}
}

// NextSpectrum returns the next spectrum in run order, or io.EOF after
// the last one. Once io.EOF is returned, the trailing run content has
// been captured and the writer may be closed.
func (r *Reader) NextSpectrum() (*Spectrum, error) {
	if r.done {
		return nil, io.EOF
	}

	for {
		tok, err := r.d.Token()
		if err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "spectrum" {
				// The schema allows only spectrum children here; keep
				// anything else for the trailer rather than dropping it.
				sec := &section{}
				if err := r.d.DecodeElement(sec, &t); err != nil {
					return nil, fmt.Errorf("mzml: parsing %s: %w", t.Name.Local, err)
				}
				r.trailer = append(r.trailer, sec)
				continue
			}

			sp := &Spectrum{}
			if err := r.d.DecodeElement(sp, &t); err != nil {
				return nil, fmt.Errorf("mzml: parsing spectrum: %w", err)
			}
			return sp, nil
		case xml.EndElement:
			switch t.Name.Local {
			case "spectrumList":
				return nil, r.drainRun()
			case "run":
				r.done = true
				return nil, io.EOF
			}
		}
	}
}

// drainRun consumes the remainder of the run, capturing the
// chromatogramList and any sibling content for the writer. It returns
// io.EOF on success so NextSpectrum can surface it directly.
func (r *Reader) drainRun() error {
	for {
		tok, err := r.d.Token()
		if err != nil {
			if err == io.EOF {
				r.done = true
				return io.EOF
			}
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			sec := &section{}
			if err := r.d.DecodeElement(sec, &t); err != nil {
				return fmt.Errorf("mzml: parsing %s: %w", t.Name.Local, err)
			}
			r.trailer = append(r.trailer, sec)
		case xml.EndElement:
			if t.Name.Local == "run" {
				r.done = true
				return io.EOF
			}
		}
	}
}

// NextGroup assembles the next precursor group: a survey (MS1) spectrum
// and the product spectra that follow it, up to the next survey
// spectrum. Product spectra ahead of any survey spectrum form the first
// group on their own. Returns io.EOF after the last group.
func (r *Reader) NextGroup() (*SpectrumGroup, error) {
	g := &SpectrumGroup{}
	if r.pending != nil {
		g.Spectra = append(g.Spectra, r.pending)
		r.pending = nil
	}

	for {
		sp, err := r.NextSpectrum()
		if err == io.EOF {
			if len(g.Spectra) == 0 {
				return nil, io.EOF
			}
			return g, nil
		} else if err != nil {
			return nil, err
		}

		if sp.MSLevel() <= 1 && len(g.Spectra) > 0 {
			r.pending = sp
			return g, nil
		}
		g.Spectra = append(g.Spectra, sp)
	}
}
