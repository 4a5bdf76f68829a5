package mzml

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

const (
	xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"
	mzMLNamespace  = "http://psi.hupo.org/ms/mzml"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = "http://psi.hupo.org/ms/mzml http://psidev.info/files/ms/mzML/xsd/mzML1.1.0.xsd"
)

// Writer emits an mzML document in the same single pass the Reader
// consumes one. The document element and its namespaces are written
// fresh (the encoding/xml attribute model does not round-trip namespace
// declarations); every other header section, and every spectrum body,
// is re-emitted from the reader's captured bytes.
type Writer struct {
	w      *bufio.Writer
	src    *Reader
	opened bool
	closed bool
}

// NewWriter returns a Writer emitting to w. Output is buffered; nothing
// is valid until Close returns nil.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 1<<16)}
}

// CopyMetadata writes the document header from the reader's metadata,
// including its (possibly replaced) sample list, and opens the run and
// spectrum list. It must be called exactly once, before any spectra are
// written.
func (w *Writer) CopyMetadata(r *Reader) error {
	if w.opened {
		return errors.New("mzml: CopyMetadata called twice")
	}
	w.opened = true
	w.src = r

	io.WriteString(w.w, xmlDeclaration)
	fmt.Fprintf(w.w, `<mzML xmlns=%q xmlns:xsi=%q xsi:schemaLocation=%q version=%q>`,
		mzMLNamespace, xsiNamespace, schemaLocation, r.Version())
	w.w.WriteByte('\n')

	for _, sec := range r.preSample {
		w.writeSection(sec)
	}

	if len(r.samples) > 0 {
		enc := xml.NewEncoder(w.w)
		if err := enc.Encode(sampleList{Count: len(r.samples), Samples: r.samples}); err != nil {
			return fmt.Errorf("mzml: writing sampleList: %w", err)
		}
	}

	for _, sec := range r.postSample {
		w.writeSection(sec)
	}

	if !r.hasRun {
		return w.flushErr()
	}

	w.w.WriteString("<run")
	w.writeAttrs(r.runAttrs)
	w.w.WriteByte('>')

	if r.hasSpectrumList {
		w.w.WriteString("<spectrumList")
		w.writeAttrs(r.spectrumListAttrs)
		w.w.WriteByte('>')
	}

	return w.flushErr()
}

// WriteSpectrum re-emits one spectrum verbatim.
func (w *Writer) WriteSpectrum(sp *Spectrum) error {
	if !w.opened {
		return errors.New("mzml: WriteSpectrum before CopyMetadata")
	}

	w.w.WriteString("<spectrum")
	w.writeAttrs(sp.Attrs)
	w.w.WriteByte('>')
	w.w.Write(sp.Inner)
	w.w.WriteString("</spectrum>")

	return w.flushErr()
}

// WriteGroup writes each spectrum of the group in order.
func (w *Writer) WriteGroup(g *SpectrumGroup) error {
	for _, sp := range g.Spectra {
		if err := w.WriteSpectrum(sp); err != nil {
			return err
		}
	}

	return nil
}

// Close writes the trailing run content captured by the reader, the
// closing tags, and flushes. It must be called after the reader has
// been fully drained.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if !w.opened {
		return errors.New("mzml: Close before CopyMetadata")
	}
	w.closed = true

	if w.src.hasSpectrumList {
		w.w.WriteString("</spectrumList>")
	}
	for _, sec := range w.src.trailer {
		w.writeSection(sec)
	}
	if w.src.hasRun {
		w.w.WriteString("</run>")
	}
	w.w.WriteString("</mzML>\n")

	return w.w.Flush()
}

func (w *Writer) writeSection(sec *section) {
	w.w.WriteByte('<')
	w.w.WriteString(sec.XMLName.Local)
	w.writeAttrs(sec.Attrs)

	if len(sec.Inner) == 0 {
		w.w.WriteString("/>")
		return
	}

	w.w.WriteByte('>')
	w.w.Write(sec.Inner)
	w.w.WriteString("</")
	w.w.WriteString(sec.XMLName.Local)
	w.w.WriteByte('>')
}

func (w *Writer) writeAttrs(attrs []xml.Attr) {
	for _, a := range attrs {
		w.w.WriteByte(' ')
		w.w.WriteString(a.Name.Local)
		w.w.WriteString(`="`)
		xml.EscapeText(w.w, []byte(a.Value))
		w.w.WriteByte('"')
	}
}

// flushErr surfaces the first write error the buffered writer latched.
func (w *Writer) flushErr() error {
	return w.w.Flush()
}
