// Package mzml reads and writes mzML, the PSI XML container format for
// mass spectrometry runs (http://www.peptideatlas.org/tmp/mzML1.1.0.html).
//
// The reader is single-pass and streaming: the header metadata ahead of
// the run is parsed up front, and spectra are then surfaced one at a
// time. Header sections and spectrum bodies keep their raw XML, so
// content the caller does not touch round-trips verbatim while the
// sample list remains fully structured and replaceable.
package mzml

import (
	"encoding/xml"
	"strconv"
)

// CVParam holds the values and attributes of an mzML controlled
// vocabulary parameter.
type CVParam struct {
	CvRef         string `xml:"cvRef,attr,omitempty"`
	Accession     string `xml:"accession,attr,omitempty"`
	Name          string `xml:"name,attr,omitempty"`
	Value         string `xml:"value,attr,omitempty"`
	UnitCvRef     string `xml:"unitCvRef,attr,omitempty"`
	UnitAccession string `xml:"unitAccession,attr,omitempty"`
	UnitName      string `xml:"unitName,attr,omitempty"`
}

// UserParam holds a free-form name/value parameter with no controlled
// vocabulary backing.
type UserParam struct {
	Name  string `xml:"name,attr,omitempty"`
	Value string `xml:"value,attr,omitempty"`
	Type  string `xml:"type,attr,omitempty"`
}

// Param is either a CVParam or a UserParam.
type Param interface {
	isParam()
}

func (CVParam) isParam()   {}
func (UserParam) isParam() {}

// Sample is one entry of the mzML sampleList.
type Sample struct {
	XMLName    xml.Name    `xml:"sample"`
	ID         string      `xml:"id,attr"`
	Name       string      `xml:"name,attr,omitempty"`
	CvParams   []CVParam   `xml:"cvParam"`
	UserParams []UserParam `xml:"userParam"`
}

type sampleList struct {
	XMLName xml.Name `xml:"sampleList"`
	Count   int      `xml:"count,attr"`
	Samples []Sample `xml:"sample"`
}

// SourceFile is one entry of the fileDescription's sourceFileList.
type SourceFile struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	Location string `xml:"location,attr"`
}

// section is one direct child of the mzML (or run) element that passes
// through without interpretation: its name, its attributes, and its raw
// inner XML.
type section struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   []byte     `xml:",innerxml"`
}

// fileDescription keeps the raw section bytes for passthrough while also
// surfacing the declared source files.
type fileDescription struct {
	Attrs          []xml.Attr `xml:",any,attr"`
	Inner          []byte     `xml:",innerxml"`
	SourceFileList struct {
		SourceFiles []SourceFile `xml:"sourceFile"`
	} `xml:"sourceFileList"`
}

// cvMSLevel is the accession of the "ms level" term.
const cvMSLevel = "MS:1000511"

// Spectrum is one spectrum element: its attributes, its immediate
// cvParams, and its raw inner XML. Only one spectrum (or one group) is
// held in memory at a time during streaming.
type Spectrum struct {
	Attrs    []xml.Attr `xml:",any,attr"`
	CvParams []CVParam  `xml:"cvParam"`
	Inner    []byte     `xml:",innerxml"`
}

// ID returns the spectrum's native ID attribute.
func (s *Spectrum) ID() string {
	for _, a := range s.Attrs {
		if a.Name.Local == "id" {
			return a.Value
		}
	}

	return ""
}

// MSLevel returns the spectrum's ms level, or 0 when it declares none.
func (s *Spectrum) MSLevel() int {
	for _, cv := range s.CvParams {
		if cv.Accession == cvMSLevel {
			if n, err := strconv.Atoi(cv.Value); err == nil {
				return n
			}
		}
	}

	return 0
}

// SpectrumGroup is a precursor spectrum together with the product
// spectra that follow it: the logical streaming unit.
type SpectrumGroup struct {
	Spectra []*Spectrum
}

// Size is the number of spectra in the group.
func (g *SpectrumGroup) Size() int { return len(g.Spectra) }
